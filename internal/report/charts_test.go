package report

import (
	"os"
	"path/filepath"
	"testing"

	"connectivity-report/internal/models"
)

func TestGenerateCharts(t *testing.T) {
	results, summary, _ := sampleResults()
	dir := t.TempDir()
	latencyPath := filepath.Join(dir, "latency.png")
	successPath := filepath.Join(dir, "success.png")

	if err := GenerateCharts(latencyPath, successPath, results, summary); err != nil {
		t.Fatalf("GenerateCharts failed: %v", err)
	}

	for _, path := range []string{latencyPath, successPath} {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("missing chart %s: %v", path, err)
		}
		if info.Size() == 0 {
			t.Errorf("chart %s is empty", path)
		}
	}
}

func TestGenerateChartsEmptyRun(t *testing.T) {
	dir := t.TempDir()
	latencyPath := filepath.Join(dir, "latency.png")
	successPath := filepath.Join(dir, "success.png")

	// Nothing to draw; should be a quiet no-op, not an error
	if err := GenerateCharts(latencyPath, successPath, nil, models.RunSummary{}); err != nil {
		t.Fatalf("GenerateCharts failed on empty run: %v", err)
	}

	if _, err := os.Stat(latencyPath); !os.IsNotExist(err) {
		t.Errorf("expected no latency chart for empty run")
	}
}
