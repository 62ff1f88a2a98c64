package models

import "context"

// Resolver interface defines name resolution operations
type Resolver interface {
	Resolve(ctx context.Context, target string) (string, error)
}

// Pinger interface defines ping execution operations
type Pinger interface {
	Ping(ctx context.Context, target string) (PingStats, error)
}

// Prober interface defines TCP port probing operations
type Prober interface {
	Probe(ctx context.Context, address string, ports []int) map[int]PortCheck
}
