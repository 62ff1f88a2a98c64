package config

import "testing"

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default configuration should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"no targets", func(c *Config) { c.Targets = nil }},
		{"no ports", func(c *Config) { c.Ports = nil }},
		{"port out of range", func(c *Config) { c.Ports = []int{80, 70000} }},
		{"zero ping count", func(c *Config) { c.PingCount = 0 }},
		{"zero ping timeout", func(c *Config) { c.PingTimeout = 0 }},
		{"zero port timeout", func(c *Config) { c.PortTimeout = 0 }},
		{"empty report path", func(c *Config) { c.ReportPath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}
