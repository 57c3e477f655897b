package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/export"
	"github.com/san-kum/odelab/internal/odes"
	"github.com/san-kum/odelab/internal/rk4"
	"github.com/san-kum/odelab/internal/storage"
	"github.com/san-kum/odelab/internal/tui"
	"github.com/san-kum/odelab/internal/viz"
)

var (
	dataDir string
	t0      float64
	y0      float64
	u0      float64
	v0      float64
	tEnd    float64
	h       float64

	configFile string
	preset     string
	noSave     bool
	showPlot   bool
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo}),
	))

	rootCmd := &cobra.Command{
		Use:   "odelab",
		Short: "fixed-step RK4 integration lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odelab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [problem]",
		Short: "integrate a problem and store the trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runProblem,
	}
	runCmd.Flags().Float64Var(&t0, "t0", 0.0, "initial t")
	runCmd.Flags().Float64Var(&y0, "y0", 0.0, "initial y (scalar problems)")
	runCmd.Flags().Float64Var(&u0, "u0", 0.0, "initial u (coupled problems)")
	runCmd.Flags().Float64Var(&v0, "v0", 0.0, "initial v (coupled problems)")
	runCmd.Flags().Float64Var(&tEnd, "tend", 0.0, "integration upper bound (exclusive)")
	runCmd.Flags().Float64Var(&h, "h", config.DefaultH, "step size")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip writing the run to the data directory")
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "plot the trajectory after the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live [problem]",
		Short: "watch the trajectory accumulate live",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	problemsCmd := &cobra.Command{
		Use:   "problems",
		Short: "list catalog problems",
		RunE:  listProblems,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, liveCmd, problemsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves preset, config file, and CLI flags (in that order of
// increasing precedence) into one run description.
func buildConfig(cmd *cobra.Command, reg *odes.Registry, problem string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Problem = problem
	if reg.IsCoupled(problem) {
		cfg.Kind = "coupled"
		cp, err := reg.Coupled(problem)
		if err != nil {
			return nil, err
		}
		cfg.T0, cfg.TEnd, cfg.H = cp.T0, cp.TEnd, cp.H
		cfg.Init.U, cfg.Init.V = cp.U0, cp.V0
	} else {
		cfg.Kind = "scalar"
		sp, err := reg.Scalar(problem)
		if err != nil {
			return nil, err
		}
		cfg.T0, cfg.TEnd, cfg.H = sp.T0, sp.TEnd, sp.H
		cfg.Init.Y = sp.Y0
	}

	if preset != "" {
		p := config.GetPreset(problem, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(problem))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
		cfg.Problem = problem
	}

	if cmd.Flags().Changed("t0") {
		cfg.T0 = t0
	}
	if cmd.Flags().Changed("tend") {
		cfg.TEnd = tEnd
	}
	if cmd.Flags().Changed("h") {
		cfg.H = h
	}
	if cmd.Flags().Changed("y0") {
		cfg.Init.Y = y0
	}
	if cmd.Flags().Changed("u0") {
		cfg.Init.U = u0
	}
	if cmd.Flags().Changed("v0") {
		cfg.Init.V = v0
	}

	// the registry, not the config file, decides the solver form
	if reg.IsCoupled(problem) {
		cfg.Kind = "coupled"
	} else {
		cfg.Kind = "scalar"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runProblem(cmd *cobra.Command, args []string) error {
	reg := odes.NewRegistry()

	cfg, err := buildConfig(cmd, reg, args[0])
	if err != nil {
		return err
	}

	meta := storage.RunMetadata{
		Problem: cfg.Problem,
		Kind:    cfg.Kind,
		T0:      cfg.T0,
		TEnd:    cfg.TEnd,
		H:       cfg.H,
	}
	var traj storage.Trajectory

	if cfg.Kind == "coupled" {
		cp, err := reg.Coupled(cfg.Problem)
		if err != nil {
			return err
		}
		solver := rk4.NewCoupled(cp.F, cp.G)
		u, v, err := solver.Solve(cfg.T0, cfg.Init.U, cfg.Init.V, cfg.TEnd, cfg.H)
		if err != nil {
			return err
		}

		ts, us, vs := solver.Trajectory()
		meta.Final = []float64{u, v}
		traj = storage.Trajectory{Times: ts, Values: [][]float64{us, vs}}

		fmt.Printf("u = %.10f\nv = %.10f\n", u, v)
		if cp.ExactU != nil && len(ts) > 0 {
			tf := ts[len(ts)-1]
			fmt.Printf("exact u = %.10f, v = %.10f\n", cp.ExactU(tf), cp.ExactV(tf))
		}
		if showPlot {
			fmt.Println(viz.PlotCoupled(ts, us, vs, cfg.Problem))
		}
	} else {
		sp, err := reg.Scalar(cfg.Problem)
		if err != nil {
			return err
		}
		solver := rk4.NewScalar(sp.F)
		y, err := solver.Solve(cfg.T0, cfg.Init.Y, cfg.TEnd, cfg.H)
		if err != nil {
			return err
		}

		ts, ys := solver.Trajectory()
		meta.Final = []float64{y}
		traj = storage.Trajectory{Times: ts, Values: [][]float64{ys}}

		fmt.Printf("y = %.10f\n", y)
		if sp.Exact != nil && len(ts) > 0 {
			fmt.Printf("exact y = %.10f\n", sp.Exact(ts[len(ts)-1]))
		}
		if showPlot {
			fmt.Println(viz.PlotScalar(ts, ys, cfg.Problem))
		}
	}

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(meta, traj)
	if err != nil {
		return err
	}
	slog.Info("run saved", "id", runID, "steps", len(traj.Times))

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROBLEM\tKIND\tTIME\tT0\tT_END\tH\tSTEPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.3f\t%.3f\t%.4f\t%d\n",
			run.ID,
			run.Problem,
			run.Kind,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.T0,
			run.TEnd,
			run.H,
			run.Steps,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if len(traj.Times) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\nproblem: %s\nsamples: %d\n\n", meta.ID, meta.Problem, len(traj.Times))

	if meta.Kind == "coupled" && len(traj.Values) == 2 {
		fmt.Println(viz.PlotCoupled(traj.Times, traj.Values[0], traj.Values[1], meta.Problem))
	} else {
		fmt.Println(viz.PlotScalar(traj.Times, traj.Values[0], meta.Problem))
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	if meta.Kind == "coupled" && len(traj.Values) == 2 {
		return export.WriteJSON(os.Stdout,
			export.Coupled(meta.Problem, meta.T0, meta.TEnd, meta.H, traj.Times, traj.Values[0], traj.Values[1]))
	}
	if len(traj.Values) == 1 {
		return export.WriteJSON(os.Stdout,
			export.Scalar(meta.Problem, meta.T0, meta.TEnd, meta.H, traj.Times, traj.Values[0]))
	}

	// Fall back to raw metadata when the trajectory is missing or malformed.
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func runLive(cmd *cobra.Command, args []string) error {
	reg := odes.NewRegistry()
	name := args[0]

	if reg.IsCoupled(name) {
		cp, err := reg.Coupled(name)
		if err != nil {
			return err
		}
		if p := config.GetPreset(name, preset); preset != "" && p != nil {
			cp.T0, cp.U0, cp.V0, cp.TEnd, cp.H = p.T0, p.Init.U, p.Init.V, p.TEnd, p.H
		}
		return tui.RunCoupled(cp)
	}

	sp, err := reg.Scalar(name)
	if err != nil {
		return err
	}
	if p := config.GetPreset(name, preset); preset != "" && p != nil {
		sp.T0, sp.Y0, sp.TEnd, sp.H = p.T0, p.Init.Y, p.TEnd, p.H
	}
	return tui.RunScalar(sp)
}

func listProblems(cmd *cobra.Command, args []string) error {
	reg := odes.NewRegistry()

	fmt.Println(viz.Title.Render("scalar (dy/dt = f(t, y))"))
	for _, name := range reg.ListScalar() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println(viz.Title.Render("coupled (du/dt = f(v), dv/dt = g(v, u, t))"))
	for _, name := range reg.ListCoupled() {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
