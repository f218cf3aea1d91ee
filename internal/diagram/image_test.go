package diagram

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExportCurveDiagram(t *testing.T) {
	out := filepath.Join(t.TempDir(), "curve.png")
	if err := ExportCurveDiagram(referenceData(), out); err != nil {
		t.Fatalf("ExportCurveDiagram: %v", err)
	}
	if fi, err := os.Stat(out); err != nil || fi.Size() == 0 {
		t.Fatalf("expected non-empty chart at %s: %v", out, err)
	}
}

func TestExportMohrDiagram(t *testing.T) {
	dir := t.TempDir()

	out := filepath.Join(dir, "mohr.svg")
	if err := ExportMohrDiagram(referenceData(), out); err != nil {
		t.Fatalf("ExportMohrDiagram: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected chart at %s: %v", out, err)
	}

	// Unknown extension falls back to PNG.
	plain := filepath.Join(dir, "plain")
	if err := ExportMohrDiagram(referenceData(), plain); err != nil {
		t.Fatalf("ExportMohrDiagram without extension: %v", err)
	}
	if _, err := os.Stat(plain + ".png"); err != nil {
		t.Fatalf("expected fallback %s.png: %v", plain, err)
	}
}
