// Package export writes integration results as JSON for downstream
// plotting tools.
package export

import (
	"encoding/json"
	"io"
	"os"
)

// Data is the exported document. U and V are nil for scalar runs; Y is nil
// for coupled runs.
type Data struct {
	Problem string    `json:"problem"`
	Kind    string    `json:"kind"`
	T0      float64   `json:"t0"`
	TEnd    float64   `json:"t_end"`
	H       float64   `json:"h"`
	Steps   int       `json:"steps"`
	Times   []float64 `json:"times"`
	Y       []float64 `json:"y,omitempty"`
	U       []float64 `json:"u,omitempty"`
	V       []float64 `json:"v,omitempty"`
}

// Scalar builds the export document for a first-order run.
func Scalar(problem string, t0, tEnd, h float64, ts, ys []float64) Data {
	return Data{
		Problem: problem,
		Kind:    "scalar",
		T0:      t0,
		TEnd:    tEnd,
		H:       h,
		Steps:   len(ts),
		Times:   ts,
		Y:       ys,
	}
}

// Coupled builds the export document for a second-order run.
func Coupled(problem string, t0, tEnd, h float64, ts, us, vs []float64) Data {
	return Data{
		Problem: problem,
		Kind:    "coupled",
		T0:      t0,
		TEnd:    tEnd,
		H:       h,
		Steps:   len(ts),
		Times:   ts,
		U:       us,
		V:       vs,
	}
}

// WriteJSON writes the document indented to w.
func WriteJSON(w io.Writer, data Data) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteJSONFile writes the document to a new file at path.
func WriteJSONFile(path string, data Data) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, data)
}
