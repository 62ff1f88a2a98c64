package report

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"connectivity-report/internal/models"
)

var (
	chartGreen = drawing.Color{R: 40, G: 167, B: 69, A: 255}
	chartRed   = drawing.Color{R: 220, G: 53, B: 69, A: 255}
)

// GenerateCharts renders the PNG companions to the HTML report. The
// caller treats failures here as diagnostics, not run errors.
func GenerateCharts(latencyPath, successPath string, results []models.TargetResult, summary models.RunSummary) error {
	if err := generateLatencyChart(latencyPath, results); err != nil {
		return fmt.Errorf("latency chart: %w", err)
	}
	if err := generateSuccessChart(successPath, summary); err != nil {
		return fmt.Errorf("success chart: %w", err)
	}
	return nil
}

func generateLatencyChart(path string, results []models.TargetResult) error {
	var bars []chart.Value
	maxAvg := 0.0
	for _, result := range results {
		value := 0.0
		color := chartRed
		if result.Ping.HasRTT {
			value = result.Ping.AvgMs
			color = chartGreen
		}
		if value > maxAvg {
			maxAvg = value
		}
		bars = append(bars, chart.Value{
			Label: result.Target,
			Value: value,
			Style: chart.Style{FillColor: color, StrokeColor: color},
		})
	}

	// go-chart cannot render an all-zero range
	if len(bars) == 0 || maxAvg == 0 {
		return nil
	}

	graph := chart.BarChart{
		Title: "Average Latency by Target",
		TitleStyle: chart.Style{
			FontSize: 14,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:    1200,
		Height:   400,
		Bars:     bars,
		BarWidth: 60,
		YAxis: chart.YAxis{
			Name: "Latency (ms)",
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: maxAvg * 1.2,
			},
		},
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

func generateSuccessChart(path string, summary models.RunSummary) error {
	if summary.TotalTargets == 0 {
		return nil
	}

	failures := summary.TotalTargets - summary.SuccessfulPings
	values := []chart.Value{
		{
			Label: fmt.Sprintf("Successful (%d)", summary.SuccessfulPings),
			Value: float64(summary.SuccessfulPings),
			Style: chart.Style{FillColor: chartGreen, StrokeColor: chartGreen},
		},
		{
			Label: fmt.Sprintf("Failed (%d)", failures),
			Value: float64(failures),
			Style: chart.Style{FillColor: chartRed, StrokeColor: chartRed},
		},
	}

	graph := chart.DonutChart{
		Title: "Ping Success vs Failure",
		TitleStyle: chart.Style{
			FontSize: 14,
		},
		Width:  600,
		Height: 600,
		Values: values,
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}
