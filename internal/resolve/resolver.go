package resolve

import (
	"context"
	"fmt"
	"net"
)

// Resolver performs name lookups with the runtime default resolver
type Resolver struct {
	resolver *net.Resolver
}

// New creates a new Resolver
func New() *Resolver {
	return &Resolver{resolver: net.DefaultResolver}
}

// Resolve returns a single address for the target. Literal IPs pass
// through untouched. When DNS returns several addresses the first
// IPv4 one wins, so the TCP probes stay meaningful on v4-only routes;
// otherwise the first address of any family is used.
func (r *Resolver) Resolve(ctx context.Context, target string) (string, error) {
	if ip := net.ParseIP(target); ip != nil {
		return target, nil
	}

	addrs, err := r.resolver.LookupHost(ctx, target)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", target, err)
	}
	if len(addrs) == 0 {
		return "", fmt.Errorf("resolving %s: empty answer", target)
	}

	for _, addr := range addrs {
		if ip := net.ParseIP(addr); ip != nil && ip.To4() != nil {
			return addr, nil
		}
	}
	return addrs[0], nil
}
