package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleOutput(t *testing.T) {
	results, summary, ports := sampleResults()

	var buf bytes.Buffer
	console := NewConsole(&buf)

	console.PrintHeader()
	for _, result := range results {
		console.PrintTarget(result, ports)
	}
	console.PrintSummary(summary, "connectivity_report.html")

	out := buf.String()
	for _, want := range []string{
		"PING & CONNECTIVITY TESTER",
		"Testing connectivity to: 8.8.8.8",
		"Testing connectivity to: nonexistent.invalid",
		"unresolved",
		"skipped",
		"port 53 (DNS)",
		"Targets tested:   2",
		"Successful pings: 1",
		"Open ports:       1",
		"connectivity_report.html",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q", want)
		}
	}

	// Port lines follow the configured order
	idx80 := strings.Index(out, "port 80")
	idx53 := strings.Index(out, "port 53")
	if idx80 == -1 || idx53 == -1 || idx80 > idx53 {
		t.Errorf("ports not printed in configured order")
	}
}
