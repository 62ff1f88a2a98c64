package probe

import (
	"context"
	"net"
	"strconv"
	"time"

	"connectivity-report/internal/models"
)

// Prober checks TCP reachability with short-timeout connect attempts
type Prober struct {
	timeout time.Duration
}

// New creates a new Prober
func New(timeout time.Duration) *Prober {
	return &Prober{timeout: timeout}
}

// Probe dials each port once and reports open/closed. Refusal,
// timeout and host-unreachable all normalize to closed; only a
// completed handshake counts as open. No retries.
func (p *Prober) Probe(ctx context.Context, address string, ports []int) map[int]models.PortCheck {
	checks := make(map[int]models.PortCheck, len(ports))
	for _, port := range ports {
		checks[port] = p.probeOne(ctx, address, port)
	}
	return checks
}

func (p *Prober) probeOne(ctx context.Context, address string, port int) models.PortCheck {
	dialer := net.Dialer{Timeout: p.timeout}

	start := time.Now()
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(address, strconv.Itoa(port)))
	if err != nil {
		return models.PortCheck{}
	}
	elapsed := time.Since(start)
	conn.Close()

	return models.PortCheck{
		Open:      true,
		LatencyMs: float64(elapsed) / float64(time.Millisecond),
	}
}
