package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"connectivity-report/internal/config"
	"connectivity-report/internal/models"
	"connectivity-report/internal/ping"
	"connectivity-report/internal/probe"
	"connectivity-report/internal/report"
	"connectivity-report/internal/resolve"
	"connectivity-report/internal/runner"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "connectivity",
		Short: "Check reachability of the built-in target list and render an HTML report",
		Long: `connectivity probes a compiled-in list of network targets with DNS
resolution, the platform ping utility and TCP port checks, prints
per-target status to the console and writes a standalone HTML report
with charts to the working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	r := runner.New(cfg,
		resolve.New(),
		ping.New(cfg.PingCount, cfg.PingTimeout),
		probe.New(cfg.PortTimeout),
	)

	console := report.NewConsole(os.Stdout)
	console.PrintHeader()

	results := make([]models.TargetResult, 0, len(cfg.Targets))
	for _, target := range cfg.Targets {
		result := r.Check(ctx, target)
		console.PrintTarget(result, cfg.Ports)
		results = append(results, result)
	}

	summary := runner.Summarize(results)

	// The HTML artifact is the one output whose failure ends the run
	// with a non-zero exit
	if err := report.NewHTML().Generate(cfg.ReportPath, results, summary, cfg.Ports); err != nil {
		return err
	}

	if err := report.GenerateCharts(cfg.LatencyChartPath, cfg.SuccessChartPath, results, summary); err != nil {
		log.Printf("Failed to generate PNG charts: %v", err)
	}

	console.PrintSummary(summary, cfg.ReportPath)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}
