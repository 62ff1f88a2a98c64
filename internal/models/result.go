package models

import "time"

// PingStats represents the parsed summary of one ping invocation
type PingStats struct {
	Sent       int     `json:"sent"`
	Received   int     `json:"received"`
	PacketLoss float64 `json:"packet_loss_pct"` // percentage, 0-100
	MinMs      float64 `json:"min_ms"`
	AvgMs      float64 `json:"avg_ms"`
	MaxMs      float64 `json:"max_ms"`
	HasRTT     bool    `json:"has_rtt"`
}

// PortCheck represents the outcome of one TCP connect attempt
type PortCheck struct {
	Open      bool    `json:"open"`
	LatencyMs float64 `json:"latency_ms"` // handshake time, open ports only
}

// TargetResult holds everything measured for a single target during
// its probe pass. It is built once and not modified afterwards.
type TargetResult struct {
	Timestamp time.Time         `json:"timestamp"`
	Target    string            `json:"target"`
	Resolved  bool              `json:"resolved"`
	Address   string            `json:"address"`
	Ping      PingStats         `json:"ping"`
	Ports     map[int]PortCheck `json:"ports"`
}

// Reachable reports whether at least one ping reply came back
func (r TargetResult) Reachable() bool {
	return r.Ping.PacketLoss < 100
}

// OpenPorts counts the ports that completed a TCP handshake
func (r TargetResult) OpenPorts() int {
	count := 0
	for _, check := range r.Ports {
		if check.Open {
			count++
		}
	}
	return count
}

// RunSummary represents run-level counts over all target results
type RunSummary struct {
	TotalTargets    int `json:"total_targets"`
	SuccessfulPings int `json:"successful_pings"`
	DNSSuccesses    int `json:"dns_successes"`
	OpenPortCount   int `json:"open_port_count"`
}
