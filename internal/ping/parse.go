package ping

import (
	"regexp"
	"strconv"

	"connectivity-report/internal/models"
)

// POSIX summaries:
//   4 packets transmitted, 4 received, 0% packet loss, time 3004ms
//   4 packets transmitted, 4 packets received, 0.0% packet loss
//   round-trip min/avg/max/stddev = 13.2/14.0/15.1/0.7 ms
//   rtt min/avg/max/mdev = 12.3/13.4/14.5/0.5 ms
// Windows summaries:
//   Packets: Sent = 4, Received = 4, Lost = 0 (0% loss),
//   Minimum = 14ms, Maximum = 16ms, Average = 15ms
var (
	posixPacketsRe = regexp.MustCompile(`(\d+) packets transmitted, (\d+)(?: packets)? received`)
	posixLossRe    = regexp.MustCompile(`([\d.]+)% packet loss`)
	posixRTTRe     = regexp.MustCompile(`(?:round-trip|rtt) min/avg/max(?:/(?:stddev|mdev))? = ([\d.]+)/([\d.]+)/([\d.]+)`)

	windowsPacketsRe = regexp.MustCompile(`Sent = (\d+), Received = (\d+)`)
	windowsLossRe    = regexp.MustCompile(`\((\d+)% loss\)`)
	windowsRTTRe     = regexp.MustCompile(`Minimum = (\d+)ms, Maximum = (\d+)ms, Average = (\d+)ms`)
)

// clampLoss keeps a reported loss percentage inside [0, 100]
func clampLoss(loss float64) float64 {
	if loss < 0 {
		return 0
	}
	if loss > 100 {
		return 100
	}
	return loss
}

// parsePosixOutput extracts the summary of a POSIX ping run. Output
// matching no known pattern degrades to 100% loss with no timings.
func parsePosixOutput(output string) models.PingStats {
	stats := models.PingStats{PacketLoss: 100}

	if m := posixPacketsRe.FindStringSubmatch(output); m != nil {
		stats.Sent, _ = strconv.Atoi(m[1])
		stats.Received, _ = strconv.Atoi(m[2])
	}
	if m := posixLossRe.FindStringSubmatch(output); m != nil {
		if loss, err := strconv.ParseFloat(m[1], 64); err == nil {
			stats.PacketLoss = clampLoss(loss)
		}
	}
	if m := posixRTTRe.FindStringSubmatch(output); m != nil {
		minMs, errMin := strconv.ParseFloat(m[1], 64)
		avgMs, errAvg := strconv.ParseFloat(m[2], 64)
		maxMs, errMax := strconv.ParseFloat(m[3], 64)
		if errMin == nil && errAvg == nil && errMax == nil {
			stats.MinMs = minMs
			stats.AvgMs = avgMs
			stats.MaxMs = maxMs
			stats.HasRTT = true
		}
	}
	return stats
}

// parseWindowsOutput extracts the summary of a Windows ping run.
// Replies under a millisecond round to 0 in the Average line, which
// is kept as-is.
func parseWindowsOutput(output string) models.PingStats {
	stats := models.PingStats{PacketLoss: 100}

	if m := windowsPacketsRe.FindStringSubmatch(output); m != nil {
		stats.Sent, _ = strconv.Atoi(m[1])
		stats.Received, _ = strconv.Atoi(m[2])
	}
	if m := windowsLossRe.FindStringSubmatch(output); m != nil {
		if loss, err := strconv.Atoi(m[1]); err == nil {
			stats.PacketLoss = clampLoss(float64(loss))
		}
	}
	if m := windowsRTTRe.FindStringSubmatch(output); m != nil {
		minMs, errMin := strconv.Atoi(m[1])
		maxMs, errMax := strconv.Atoi(m[2])
		avgMs, errAvg := strconv.Atoi(m[3])
		if errMin == nil && errMax == nil && errAvg == nil {
			stats.MinMs = float64(minMs)
			stats.MaxMs = float64(maxMs)
			stats.AvgMs = float64(avgMs)
			stats.HasRTT = true
		}
	}
	return stats
}
