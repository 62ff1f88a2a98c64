package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectivity-report/internal/models"
)

func sampleResults() ([]models.TargetResult, models.RunSummary, []int) {
	ports := []int{80, 443, 53}

	reachable := models.TargetResult{
		Timestamp: time.Now(),
		Target:    "8.8.8.8",
		Resolved:  true,
		Address:   "8.8.8.8",
		Ping: models.PingStats{
			Sent: 4, Received: 4, PacketLoss: 0,
			MinMs: 10.1, AvgMs: 12.4, MaxMs: 15.9, HasRTT: true,
		},
		Ports: map[int]models.PortCheck{
			80:  {},
			443: {},
			53:  {Open: true, LatencyMs: 8.2},
		},
	}

	unresolved := models.TargetResult{
		Timestamp: time.Now(),
		Target:    "nonexistent.invalid",
		Ping:      models.PingStats{PacketLoss: 100},
		Ports: map[int]models.PortCheck{
			80:  {},
			443: {},
			53:  {},
		},
	}

	summary := models.RunSummary{
		TotalTargets:    2,
		SuccessfulPings: 1,
		DNSSuccesses:    1,
		OpenPortCount:   1,
	}

	return []models.TargetResult{reachable, unresolved}, summary, ports
}

func TestGenerateWritesReport(t *testing.T) {
	results, summary, ports := sampleResults()
	path := filepath.Join(t.TempDir(), "connectivity_report.html")

	if err := NewHTML().Generate(path, results, summary, ports); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	html := string(raw)

	for _, want := range []string{
		"8.8.8.8",
		"nonexistent.invalid",
		"responseTimeChart",
		"successRateChart",
		"cdnjs.cloudflare.com/ajax/libs/Chart.js",
		`"labels":["8.8.8.8","nonexistent.invalid"]`,
		`"avgTimes":[12.4,0]`,
		`"success":1`,
		"12.4 ms",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestGeneratePlaceholders(t *testing.T) {
	results, summary, ports := sampleResults()
	path := filepath.Join(t.TempDir(), "report.html")

	if err := NewHTML().Generate(path, results, summary, ports); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	raw, _ := os.ReadFile(path)
	html := string(raw)

	// Absent latency and address degrade to placeholders, never errors
	if !strings.Contains(html, "N/A") {
		t.Errorf("expected N/A placeholder for missing latency")
	}
	if !strings.Contains(html, "unresolved") {
		t.Errorf("expected unresolved placeholder for missing address")
	}
	if !strings.Contains(html, "OFFLINE") {
		t.Errorf("expected OFFLINE badge for unreachable target")
	}
}

func TestGenerateWriteFailure(t *testing.T) {
	results, summary, ports := sampleResults()
	path := filepath.Join(t.TempDir(), "missing", "nested", "report.html")

	if err := NewHTML().Generate(path, results, summary, ports); err == nil {
		t.Fatalf("expected error when the report directory does not exist")
	}
}

func TestGenerateEmptyRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")

	if err := NewHTML().Generate(path, nil, models.RunSummary{}, []int{80}); err != nil {
		t.Fatalf("Generate failed on empty run: %v", err)
	}
}
