package report

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"time"

	"connectivity-report/internal/models"
	"connectivity-report/internal/probe"
)

// HTML renders the standalone report artifact. Chart rendering is
// delegated to Chart.js loaded from a CDN; the data feeding it is
// inlined as JSON.
type HTML struct {
	tmpl *template.Template
}

// NewHTML creates a new HTML renderer
func NewHTML() *HTML {
	return &HTML{tmpl: template.Must(template.New("report").Parse(htmlTemplate))}
}

type portView struct {
	Port    int
	Service string
	Open    bool
	Latency string
}

type targetView struct {
	Target     string
	Online     bool
	Resolved   bool
	Address    string
	Ping       models.PingStats
	AvgDisplay string
	Ports      []portView
}

type chartData struct {
	Labels   []string  `json:"labels"`
	AvgTimes []float64 `json:"avgTimes"`
	Colors   []string  `json:"colors"`
	Success  int       `json:"success"`
	Failure  int       `json:"failure"`
}

type htmlData struct {
	Generated string
	Summary   models.RunSummary
	Targets   []targetView
	ChartData template.JS
}

// Generate writes the report to path. This is the only fatal failure
// path in a run.
func (h *HTML) Generate(path string, results []models.TargetResult, summary models.RunSummary, ports []int) error {
	data, err := buildHTMLData(results, summary, ports)
	if err != nil {
		return fmt.Errorf("building report data: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer file.Close()

	if err := h.tmpl.Execute(file, data); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}

func buildHTMLData(results []models.TargetResult, summary models.RunSummary, ports []int) (htmlData, error) {
	charts := chartData{
		Success: summary.SuccessfulPings,
		Failure: summary.TotalTargets - summary.SuccessfulPings,
	}

	targets := make([]targetView, 0, len(results))
	for _, result := range results {
		view := targetView{
			Target:   result.Target,
			Online:   result.Reachable(),
			Resolved: result.Resolved,
			Address:  result.Address,
			Ping:     result.Ping,
		}

		// Absent latency renders as a neutral placeholder, never an error
		view.AvgDisplay = "N/A"
		if result.Ping.HasRTT {
			view.AvgDisplay = fmt.Sprintf("%.1f ms", result.Ping.AvgMs)
		}

		for _, port := range ports {
			check := result.Ports[port]
			pv := portView{Port: port, Service: probe.ServiceName(port), Open: check.Open}
			if check.Open {
				pv.Latency = fmt.Sprintf("%.1f ms", check.LatencyMs)
			}
			view.Ports = append(view.Ports, pv)
		}
		targets = append(targets, view)

		charts.Labels = append(charts.Labels, result.Target)
		if result.Ping.HasRTT {
			charts.AvgTimes = append(charts.AvgTimes, result.Ping.AvgMs)
			charts.Colors = append(charts.Colors, "rgba(40, 167, 69, 0.8)")
		} else {
			charts.AvgTimes = append(charts.AvgTimes, 0)
			charts.Colors = append(charts.Colors, "rgba(220, 53, 69, 0.8)")
		}
	}

	encoded, err := json.Marshal(charts)
	if err != nil {
		return htmlData{}, err
	}

	return htmlData{
		Generated: time.Now().Format("January 2, 2006 at 15:04"),
		Summary:   summary,
		Targets:   targets,
		ChartData: template.JS(encoded),
	}, nil
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Network Connectivity Report</title>
<script src="https://cdnjs.cloudflare.com/ajax/libs/Chart.js/3.9.1/chart.min.js"></script>
<style>
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background: #f4f4f9; margin: 0; padding: 30px; }
.container { max-width: 1100px; margin: 0 auto; }
.header { background: linear-gradient(135deg, #1e3c72, #2a5298); color: white; padding: 25px; border-radius: 10px; margin-bottom: 25px; text-align: center; }
.header p { opacity: 0.85; margin: 5px 0 0; }
.summary { display: grid; grid-template-columns: repeat(auto-fit, minmax(180px, 1fr)); gap: 15px; margin-bottom: 25px; }
.card { background: white; padding: 20px; border-radius: 10px; text-align: center; box-shadow: 0 2px 6px rgba(0,0,0,0.08); }
.card h3 { margin: 0 0 8px; font-size: 1em; color: #555; }
.card .value { font-size: 2.2em; font-weight: bold; }
.success { color: #28a745; }
.danger { color: #dc3545; }
.warning { color: #ffc107; }
.target { background: white; border-radius: 10px; margin-bottom: 20px; overflow: hidden; box-shadow: 0 2px 6px rgba(0,0,0,0.08); }
.target-header { padding: 15px 25px; background: #28a745; color: white; display: flex; justify-content: space-between; align-items: center; }
.target-header.offline { background: #dc3545; }
.target-header h2 { margin: 0; font-size: 1.2em; }
.target-body { display: grid; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); gap: 20px; padding: 20px 25px; }
.panel { background: #f8f9fa; padding: 18px; border-radius: 8px; border-left: 4px solid #007bff; }
.panel h3 { margin: 0 0 12px; font-size: 1em; color: #333; }
.metric { display: flex; justify-content: space-between; padding: 5px 0; border-bottom: 1px solid #e9ecef; }
.metric:last-child { border-bottom: none; }
.metric .label { color: #666; }
.metric .val { font-weight: bold; }
.ports { display: grid; grid-template-columns: repeat(auto-fit, minmax(100px, 1fr)); gap: 10px; }
.port { text-align: center; padding: 12px; border-radius: 8px; font-weight: bold; }
.port.open { background: #d4edda; color: #155724; }
.port.closed { background: #f8d7da; color: #721c24; }
.port small { display: block; font-weight: normal; }
.chart { background: white; padding: 25px; border-radius: 10px; margin-bottom: 20px; box-shadow: 0 2px 6px rgba(0,0,0,0.08); }
.chart h3 { text-align: center; margin-top: 0; color: #333; }
</style>
</head>
<body>
<div class="container">
<div class="header">
<h1>Network Connectivity Report</h1>
<p>Generated on {{.Generated}}</p>
</div>

<div class="summary">
<div class="card"><h3>Targets Tested</h3><div class="value">{{.Summary.TotalTargets}}</div></div>
<div class="card"><h3>Successful Pings</h3><div class="value success">{{.Summary.SuccessfulPings}}</div></div>
<div class="card"><h3>DNS Resolutions</h3><div class="value success">{{.Summary.DNSSuccesses}}</div></div>
<div class="card"><h3>Open Ports</h3><div class="value warning">{{.Summary.OpenPortCount}}</div></div>
</div>

{{range .Targets}}
<div class="target">
<div class="target-header{{if not .Online}} offline{{end}}">
<h2>{{.Target}}</h2>
<span>{{if .Online}}ONLINE{{else}}OFFLINE{{end}}</span>
</div>
<div class="target-body">
<div class="panel">
<h3>DNS Resolution</h3>
<div class="metric"><span class="label">Status</span><span class="val {{if .Resolved}}success{{else}}danger{{end}}">{{if .Resolved}}Success{{else}}Failed{{end}}</span></div>
<div class="metric"><span class="label">Address</span><span class="val">{{if .Resolved}}{{.Address}}{{else}}unresolved{{end}}</span></div>
</div>
<div class="panel">
<h3>Ping Statistics</h3>
<div class="metric"><span class="label">Packets Sent</span><span class="val">{{.Ping.Sent}}</span></div>
<div class="metric"><span class="label">Packets Received</span><span class="val">{{.Ping.Received}}</span></div>
<div class="metric"><span class="label">Packet Loss</span><span class="val {{if .Online}}success{{else}}danger{{end}}">{{printf "%.0f" .Ping.PacketLoss}}%</span></div>
<div class="metric"><span class="label">Avg Response</span><span class="val">{{.AvgDisplay}}</span></div>
</div>
<div class="panel">
<h3>Port Connectivity</h3>
<div class="ports">
{{range .Ports}}
<div class="port {{if .Open}}open{{else}}closed{{end}}">{{.Port}}<small>{{.Service}}</small>{{if .Open}}<small>{{.Latency}}</small>{{end}}</div>
{{end}}
</div>
</div>
</div>
</div>
{{end}}

<div class="chart">
<h3>Response Time Analysis</h3>
<canvas id="responseTimeChart" width="400" height="180"></canvas>
</div>
<div class="chart">
<h3>Success Rate Overview</h3>
<canvas id="successRateChart" width="400" height="180"></canvas>
</div>
</div>

<script>
const data = {{.ChartData}};

new Chart(document.getElementById('responseTimeChart'), {
    type: 'bar',
    data: {
        labels: data.labels,
        datasets: [{
            label: 'Average Response Time (ms)',
            data: data.avgTimes,
            backgroundColor: data.colors,
            borderColor: data.colors,
            borderWidth: 2,
            borderRadius: 5
        }]
    },
    options: {
        responsive: true,
        plugins: { legend: { display: false } },
        scales: {
            y: {
                beginAtZero: true,
                title: { display: true, text: 'Response Time (ms)' }
            }
        }
    }
});

new Chart(document.getElementById('successRateChart'), {
    type: 'doughnut',
    data: {
        labels: ['Successful', 'Failed'],
        datasets: [{
            data: [data.success, data.failure],
            backgroundColor: ['rgba(40, 167, 69, 0.8)', 'rgba(220, 53, 69, 0.8)'],
            borderColor: ['rgba(40, 167, 69, 1)', 'rgba(220, 53, 69, 1)'],
            borderWidth: 2
        }]
    },
    options: {
        responsive: true,
        plugins: { legend: { position: 'bottom' } }
    }
});
</script>
</body>
</html>
`
