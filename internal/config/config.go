package config

import (
	"fmt"
	"time"
)

// Config holds all configuration for a connectivity run. The target
// and port lists are compiled-in defaults; edit Default to change the
// probe set.
type Config struct {
	Targets          []string
	Ports            []int
	PingCount        int
	PingTimeout      time.Duration
	PortTimeout      time.Duration
	ReportPath       string
	LatencyChartPath string
	SuccessChartPath string
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Targets: []string{
			"8.8.8.8",
			"1.1.1.1",
			"www.google.com",
			"www.github.com",
			"www.amazon.com",
		},
		Ports:            []int{80, 443, 53},
		PingCount:        4,
		PingTimeout:      10 * time.Second,
		PortTimeout:      2 * time.Second,
		ReportPath:       "connectivity_report.html",
		LatencyChartPath: "connectivity_latency.png",
		SuccessChartPath: "connectivity_success.png",
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return fmt.Errorf("at least one target must be specified")
	}
	if len(c.Ports) == 0 {
		return fmt.Errorf("at least one port must be specified")
	}
	for _, port := range c.Ports {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("port %d out of range", port)
		}
	}
	if c.PingCount <= 0 {
		return fmt.Errorf("ping count must be positive")
	}
	if c.PingTimeout <= 0 {
		return fmt.Errorf("ping timeout must be positive")
	}
	if c.PortTimeout <= 0 {
		return fmt.Errorf("port timeout must be positive")
	}
	if c.ReportPath == "" {
		return fmt.Errorf("report path cannot be empty")
	}
	return nil
}
