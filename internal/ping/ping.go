package ping

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"connectivity-report/internal/models"
)

// platform pairs a ping argv shape with the matching output parser.
// The set is closed: windows or posix, chosen once from runtime.GOOS.
type platform struct {
	name  string
	args  func(target string, count int, timeout time.Duration) []string
	parse func(output string) models.PingStats
}

var windowsPlatform = platform{
	name: "windows",
	args: func(target string, count int, timeout time.Duration) []string {
		return []string{"-n", strconv.Itoa(count), "-w", strconv.Itoa(int(timeout.Milliseconds())), target}
	},
	parse: parseWindowsOutput,
}

var posixPlatform = platform{
	name: "posix",
	args: func(target string, count int, _ time.Duration) []string {
		return []string{"-c", strconv.Itoa(count), target}
	},
	parse: parsePosixOutput,
}

func hostPlatform() platform {
	if runtime.GOOS == "windows" {
		return windowsPlatform
	}
	return posixPlatform
}

// ExecPinger shells out to the system ping utility
type ExecPinger struct {
	plat    platform
	count   int
	timeout time.Duration
}

// NewExec creates a pinger backed by the platform ping binary
func NewExec(count int, timeout time.Duration) *ExecPinger {
	return &ExecPinger{
		plat:    hostPlatform(),
		count:   count,
		timeout: timeout,
	}
}

// New returns the exec-based pinger when the system ping utility is
// available, falling back to direct ICMP otherwise.
func New(count int, timeout time.Duration) models.Pinger {
	if _, err := exec.LookPath("ping"); err != nil {
		log.Printf("[ping] no ping binary on PATH, using ICMP fallback")
		return NewICMP(count, timeout)
	}
	return NewExec(count, timeout)
}

// Ping runs one ping pass against the target and parses its summary.
// ping exits non-zero on partial loss, so output is parsed regardless
// of the exit status; a timeout or unparseable output degrades to
// 100% loss rather than an abort.
func (p *ExecPinger) Ping(ctx context.Context, target string) (models.PingStats, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ping", p.plat.args(target, p.count, p.timeout)...)
	output, runErr := cmd.CombinedOutput()

	stats := p.plat.parse(string(output))
	if stats.Sent == 0 && !stats.HasRTT && len(output) > 0 {
		log.Printf("[ping] unrecognized %s ping output for %s (%d bytes)", p.plat.name, target, len(output))
	}

	if runErr != nil && stats.Received == 0 {
		return stats, fmt.Errorf("ping %s: %w", target, runErr)
	}
	return stats, nil
}
