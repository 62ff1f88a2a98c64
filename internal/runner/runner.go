package runner

import (
	"context"
	"log"
	"time"

	"connectivity-report/internal/config"
	"connectivity-report/internal/models"
)

// Runner drives the resolve, ping and port-probe pipeline for each
// target. Targets are processed one at a time; nothing is shared
// across passes.
type Runner struct {
	cfg      config.Config
	resolver models.Resolver
	pinger   models.Pinger
	prober   models.Prober
}

// New creates a new Runner
func New(cfg config.Config, resolver models.Resolver, pinger models.Pinger, prober models.Prober) *Runner {
	return &Runner{
		cfg:      cfg,
		resolver: resolver,
		pinger:   pinger,
		prober:   prober,
	}
}

// Check runs the full probe pass for a single target. Every failure
// is recorded in the result; nothing here aborts the run.
func (r *Runner) Check(ctx context.Context, target string) models.TargetResult {
	result := models.TargetResult{
		Timestamp: time.Now(),
		Target:    target,
		Ping:      models.PingStats{PacketLoss: 100},
		Ports:     closedPorts(r.cfg.Ports),
	}

	address, err := r.resolver.Resolve(ctx, target)
	if err != nil {
		// Unresolved target: ping and probes are skipped, the seeded
		// closed-port map stands
		log.Printf("[runner] %v", err)
		return result
	}
	result.Resolved = true
	result.Address = address

	stats, err := r.pinger.Ping(ctx, target)
	if err != nil {
		log.Printf("[runner] %v", err)
	}
	result.Ping = stats

	result.Ports = r.prober.Probe(ctx, address, r.cfg.Ports)

	return result
}

// closedPorts seeds the port map so the configured set is always
// present as keys, even when probing never runs
func closedPorts(ports []int) map[int]models.PortCheck {
	checks := make(map[int]models.PortCheck, len(ports))
	for _, port := range ports {
		checks[port] = models.PortCheck{}
	}
	return checks
}

// Summarize folds a result sequence into run-level counts. A ping
// counts as successful when loss stayed under 100%.
func Summarize(results []models.TargetResult) models.RunSummary {
	summary := models.RunSummary{TotalTargets: len(results)}
	for _, result := range results {
		if result.Reachable() {
			summary.SuccessfulPings++
		}
		if result.Resolved {
			summary.DNSSuccesses++
		}
		summary.OpenPortCount += result.OpenPorts()
	}
	return summary
}
