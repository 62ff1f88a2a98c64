package probe

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"
)

func TestProbeOpenAndClosed(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to open listener: %v", err)
	}
	defer listener.Close()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	openPort := listener.Addr().(*net.TCPAddr).Port

	// A second listener closed immediately gives a port that is very
	// likely refused rather than filtered.
	spare, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to open spare listener: %v", err)
	}
	closedPort := spare.Addr().(*net.TCPAddr).Port
	spare.Close()

	prober := New(2 * time.Second)
	ports := []int{openPort, closedPort}

	checks := prober.Probe(context.Background(), "127.0.0.1", ports)

	if len(checks) != len(ports) {
		t.Fatalf("expected %d entries, got %d", len(ports), len(checks))
	}
	for _, port := range ports {
		if _, ok := checks[port]; !ok {
			t.Errorf("missing entry for port %d", port)
		}
	}

	if !checks[openPort].Open {
		t.Errorf("expected port %d to be open", openPort)
	}
	if checks[openPort].LatencyMs < 0 {
		t.Errorf("negative latency for port %d", openPort)
	}
	if checks[closedPort].Open {
		t.Errorf("expected port %d to be closed", closedPort)
	}
}

func TestProbeUnreachableHost(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping timeout test in short mode")
	}

	// Reserved TEST-NET-1 address, should never complete a handshake
	prober := New(500 * time.Millisecond)
	checks := prober.Probe(context.Background(), "192.0.2.1", []int{80})

	if checks[80].Open {
		t.Errorf("expected TEST-NET-1 probe to be closed")
	}
}

func TestServiceName(t *testing.T) {
	tests := []struct {
		port     int
		expected string
	}{
		{80, "HTTP"},
		{443, "HTTPS"},
		{53, "DNS"},
		{12345, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.port), func(t *testing.T) {
			if got := ServiceName(tt.port); got != tt.expected {
				t.Errorf("ServiceName(%d) = %q, want %q", tt.port, got, tt.expected)
			}
		})
	}
}
