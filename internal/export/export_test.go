package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteJSONScalar(t *testing.T) {
	data := Scalar("linear", 1.0, 1.5, 0.1, []float64{1.1, 1.2}, []float64{4.0, 3.2})

	var buf bytes.Buffer
	if err := WriteJSON(&buf, data); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if decoded["kind"] != "scalar" {
		t.Errorf("expected kind scalar, got %v", decoded["kind"])
	}
	if decoded["steps"] != float64(2) {
		t.Errorf("expected 2 steps, got %v", decoded["steps"])
	}
	if _, ok := decoded["u"]; ok {
		t.Error("scalar export should omit u")
	}
}

func TestWriteJSONFileCoupled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	data := Coupled("forced", 0, 0.2, 0.1,
		[]float64{0.1, 0.2}, []float64{1.0, 1.1}, []float64{-1.0, -0.9})

	if err := WriteJSONFile(path, data); err != nil {
		t.Fatalf("WriteJSONFile: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	var decoded Data
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Kind != "coupled" || len(decoded.U) != 2 || len(decoded.V) != 2 {
		t.Errorf("round trip lost fields: %+v", decoded)
	}
	if decoded.Y != nil {
		t.Error("coupled export should omit y")
	}
}
