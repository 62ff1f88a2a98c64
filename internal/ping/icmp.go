package ping

import (
	"context"
	"fmt"
	"runtime"
	"time"

	probing "github.com/prometheus-community/pro-bing"

	"connectivity-report/internal/models"
)

// ICMPPinger sends ICMP echoes directly, for hosts without a ping
// binary on PATH (minimal containers)
type ICMPPinger struct {
	count   int
	timeout time.Duration
}

// NewICMP creates a pinger that speaks ICMP itself
func NewICMP(count int, timeout time.Duration) *ICMPPinger {
	return &ICMPPinger{count: count, timeout: timeout}
}

// Ping sends the configured number of echoes and aggregates replies
// into the same stats shape the exec pinger produces
func (p *ICMPPinger) Ping(ctx context.Context, target string) (models.PingStats, error) {
	pinger, err := probing.NewPinger(target)
	if err != nil {
		return models.PingStats{PacketLoss: 100}, fmt.Errorf("icmp pinger for %s: %w", target, err)
	}
	pinger.Count = p.count
	pinger.Timeout = p.timeout
	pinger.SetPrivileged(runtime.GOOS == "windows")

	if err := pinger.RunWithContext(ctx); err != nil {
		return models.PingStats{PacketLoss: 100}, fmt.Errorf("icmp ping %s: %w", target, err)
	}

	st := pinger.Statistics()
	stats := models.PingStats{
		Sent:       st.PacketsSent,
		Received:   st.PacketsRecv,
		PacketLoss: st.PacketLoss,
	}
	if st.PacketsRecv > 0 {
		stats.MinMs = float64(st.MinRtt) / float64(time.Millisecond)
		stats.AvgMs = float64(st.AvgRtt) / float64(time.Millisecond)
		stats.MaxMs = float64(st.MaxRtt) / float64(time.Millisecond)
		stats.HasRTT = true
	}
	return stats, nil
}
