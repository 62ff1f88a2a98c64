package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"connectivity-report/internal/models"
	"connectivity-report/internal/probe"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Console prints per-target progress and the final summary to a
// writer, normally stdout. Targets are printed incrementally as each
// pass finishes.
type Console struct {
	w io.Writer
}

// NewConsole creates a new console renderer
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// PrintHeader prints the run banner
func (c *Console) PrintHeader() {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(c.w, headerStyle.Render(line))
	fmt.Fprintln(c.w, headerStyle.Render("  PING & CONNECTIVITY TESTER"))
	fmt.Fprintln(c.w, headerStyle.Render(line))
}

// PrintTarget renders one target block. The ports slice fixes the
// display order, since the result map has none.
func (c *Console) PrintTarget(result models.TargetResult, ports []int) {
	fmt.Fprintf(c.w, "\n%s\n", headerStyle.Render("Testing connectivity to: "+result.Target))

	if result.Resolved {
		fmt.Fprintf(c.w, "  DNS:   %s %s\n", successStyle.Render("resolved"), dimStyle.Render("("+result.Address+")"))
	} else {
		fmt.Fprintf(c.w, "  DNS:   %s\n", failStyle.Render("unresolved"))
		fmt.Fprintf(c.w, "  Ping:  %s\n", failStyle.Render("skipped"))
	}

	if result.Resolved {
		ping := result.Ping
		if result.Reachable() {
			fmt.Fprintf(c.w, "  Ping:  %s  sent=%d received=%d loss=%.0f%%\n",
				successStyle.Render("ok"), ping.Sent, ping.Received, ping.PacketLoss)
			if ping.HasRTT {
				fmt.Fprintf(c.w, "  RTT:   min=%.1fms avg=%.1fms max=%.1fms\n",
					ping.MinMs, ping.AvgMs, ping.MaxMs)
			}
		} else {
			fmt.Fprintf(c.w, "  Ping:  %s  loss=%.0f%%\n", failStyle.Render("failed"), ping.PacketLoss)
		}
	}

	for _, port := range ports {
		check := result.Ports[port]
		label := fmt.Sprintf("port %d (%s)", port, probe.ServiceName(port))
		if check.Open {
			fmt.Fprintf(c.w, "  %s %s %s\n", successStyle.Render("[open]  "), label,
				dimStyle.Render(fmt.Sprintf("%.1fms", check.LatencyMs)))
		} else {
			fmt.Fprintf(c.w, "  %s %s\n", failStyle.Render("[closed]"), label)
		}
	}
}

// PrintSummary prints the run totals and the report location
func (c *Console) PrintSummary(summary models.RunSummary, reportPath string) {
	line := strings.Repeat("=", 60)
	fmt.Fprintf(c.w, "\n%s\n", headerStyle.Render(line))
	fmt.Fprintln(c.w, headerStyle.Render("  TESTING COMPLETE"))
	fmt.Fprintln(c.w, headerStyle.Render(line))
	fmt.Fprintf(c.w, "  Targets tested:   %d\n", summary.TotalTargets)
	fmt.Fprintf(c.w, "  Successful pings: %d\n", summary.SuccessfulPings)
	fmt.Fprintf(c.w, "  DNS resolutions:  %d\n", summary.DNSSuccesses)
	fmt.Fprintf(c.w, "  Open ports:       %d\n", summary.OpenPortCount)
	fmt.Fprintf(c.w, "  HTML report:      %s\n", reportPath)
}
