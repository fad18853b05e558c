package format

import (
	"fmt"
	"strings"

	"intervals-mcp/internal/schema"
)

// AthleteSummary renders the athlete profile.
func AthleteSummary(a schema.Athlete) string {
	return fmt.Sprintf(`Athlete: %s
ID: %s
Weight: %s kg
Resting HR: %s bpm
Location: %s
Timezone: %s
Status: %s`,
		str(a.Name, "N/A"),
		str(a.ID, "N/A"),
		floatval(a.Weight, "N/A"),
		intval(a.RestingHR, "N/A"),
		str(a.Location, "N/A"),
		str(a.Timezone, "N/A"),
		str(a.Status, "N/A"),
	)
}

// SportSettings renders thresholds and zones for one sport.
func SportSettings(s schema.SportSettings) string {
	lines := []string{
		"Sport: " + str(s.Type, "N/A"),
		"FTP: " + intval(s.FTP, "N/A"),
		"LTHR: " + intval(s.LTHR, "N/A"),
		"Max HR: " + intval(s.MaxHR, "N/A"),
	}
	if len(s.PaceZones) > 0 {
		lines = append(lines, fmt.Sprintf("Pace thresholds: %v", s.PaceZones))
	} else {
		lines = append(lines, "Pace thresholds: N/A")
	}
	lines = append(lines,
		"Warmup: "+intval(s.WarmupTime, "N/A")+" s",
		"Cooldown: "+intval(s.CooldownTime, "N/A")+" s",
	)
	if len(s.PowerZones) > 0 {
		lines = append(lines, fmt.Sprintf("Zones: %v", s.PowerZones))
	}
	if len(s.HRZones) > 0 {
		lines = append(lines, fmt.Sprintf("HR Zones: %v", s.HRZones))
	}
	return strings.Join(lines, "\n")
}
