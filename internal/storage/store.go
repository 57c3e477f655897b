package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Store persists integration runs, one directory per run with a
// metadata.json and a trajectory.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Problem   string    `json:"problem"`
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
	T0        float64   `json:"t0"`
	TEnd      float64   `json:"t_end"`
	H         float64   `json:"h"`
	Steps     int       `json:"steps"`
	Final     []float64 `json:"final"`
}

// Trajectory is the columnar form the store reads and writes. Values holds
// one column for scalar runs (y) and two for coupled runs (u, v).
type Trajectory struct {
	Times  []float64
	Values [][]float64
}

// Save writes one run. The columns of traj.Values must all have the same
// length as traj.Times.
func (s *Store) Save(meta RunMetadata, traj Trajectory) (string, error) {
	for _, col := range traj.Values {
		if len(col) != len(traj.Times) {
			return "", fmt.Errorf("column length %d does not match %d times", len(col), len(traj.Times))
		}
	}

	runID := fmt.Sprintf("%s_%d", meta.Problem, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Steps = len(traj.Times)

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "trajectory.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time"}
	switch len(traj.Values) {
	case 1:
		header = append(header, "y")
	case 2:
		header = append(header, "u", "v")
	default:
		for i := range traj.Values {
			header = append(header, fmt.Sprintf("x%d", i))
		}
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range traj.Times {
		row := []string{strconv.FormatFloat(traj.Times[i], 'g', -1, 64)}
		for _, col := range traj.Values {
			row = append(row, strconv.FormatFloat(col[i], 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTrajectory(runID string) (Trajectory, error) {
	csvPath := filepath.Join(s.baseDir, runID, "trajectory.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return Trajectory{}, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return Trajectory{}, err
	}

	if len(records) < 2 {
		return Trajectory{}, nil
	}

	numCols := len(records[0]) - 1
	traj := Trajectory{
		Times:  make([]float64, 0, len(records)-1),
		Values: make([][]float64, numCols),
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) != numCols+1 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		vals := make([]float64, numCols)
		ok := true
		for j := 0; j < numCols; j++ {
			v, err := strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}

		traj.Times = append(traj.Times, t)
		for j := 0; j < numCols; j++ {
			traj.Values[j] = append(traj.Values[j], vals[j])
		}
	}

	return traj, nil
}
