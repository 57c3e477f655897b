// Package viz renders accumulated trajectories in the terminal. It consumes
// the solvers' Trajectory output and holds no integration logic.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

const (
	plotHeight = 10
	plotWidth  = 80
)

// PlotScalar renders y(t) for a first-order run.
func PlotScalar(ts, ys []float64, problem string) string {
	if len(ys) == 0 {
		return Caption.Render("no data to plot")
	}

	var b strings.Builder
	b.WriteString(Title.Render(fmt.Sprintf("%s: y(t)", problem)))
	b.WriteString("\n")
	b.WriteString(asciigraph.Plot(ys,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(timeCaption(ts)),
	))
	b.WriteString("\n")
	return b.String()
}

// PlotCoupled renders u(t) and v(t) for a second-order run.
func PlotCoupled(ts, us, vs []float64, problem string) string {
	if len(us) == 0 {
		return Caption.Render("no data to plot")
	}

	var b strings.Builder
	b.WriteString(Title.Render(fmt.Sprintf("%s: u(t)", problem)))
	b.WriteString("\n")
	b.WriteString(asciigraph.Plot(us,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(timeCaption(ts)),
	))
	b.WriteString("\n\n")
	b.WriteString(Title.Render(fmt.Sprintf("%s: v(t)", problem)))
	b.WriteString("\n")
	b.WriteString(asciigraph.Plot(vs,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(timeCaption(ts)),
	))
	b.WriteString("\n")
	return b.String()
}

func timeCaption(ts []float64) string {
	if len(ts) == 0 {
		return ""
	}
	return fmt.Sprintf("t in [%.3f, %.3f], %d steps", ts[0], ts[len(ts)-1], len(ts))
}
