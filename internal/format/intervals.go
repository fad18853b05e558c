package format

import (
	"fmt"
	"strings"

	"intervals-mcp/internal/schema"
)

// IntervalsAnalysis renders the full per-interval breakdown of an activity,
// followed by repeated-interval groups.
func IntervalsAnalysis(data schema.IntervalsData) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Intervals Analysis:

ID: %s
Analyzed: %s

`, str(data.ID, "N/A"), analyzedValue(data.Analyzed))

	if len(data.Intervals) > 0 {
		b.WriteString("Individual Intervals:\n\n")
		for i, iv := range data.Intervals {
			writeInterval(&b, i+1, iv)
		}
	}

	if len(data.Groups) > 0 {
		b.WriteString("Interval Groups:\n\n")
		for i, g := range data.Groups {
			writeGroup(&b, i+1, g)
		}
	}

	return b.String()
}

func analyzedValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "N/A"
	case bool:
		return fmt.Sprintf("%t", t)
	case float64:
		return num(t)
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

func writeInterval(b *strings.Builder, n int, iv schema.ActivityInterval) {
	label := str(iv.Label, fmt.Sprintf("Interval %d", n))
	fmt.Fprintf(b, `[%d] %s (%s)
Duration: %s seconds (moving: %s seconds)
Distance: %s meters
Start-End Indices: %s-%s

Power Metrics:
  Average Power: %s watts (%s W/kg)
  Max Power: %s watts (%s W/kg)
  Weighted Avg Power: %s watts
  Intensity: %s
  Training Load: %s
  Joules: %s
  Joules > FTP: %s
  Power Zone: %s (%s-%s watts)
  W' Balance: Start %s, End %s
  L/R Balance: %s
  Variability: %s
  Torque: Avg %s, Min %s, Max %s

Heart Rate & Metabolic:
  Heart Rate: Avg %s, Min %s, Max %s bpm
  Decoupling: %s
  DFA α1: %s
  Respiration: %s breaths/min
  EPOC: %s
  SmO2: %s%% / %s%%
  THb: %s / %s

Speed & Cadence:
  Speed: Avg %s, Min %s, Max %s m/s
  GAP: %s m/s
  Cadence: Avg %s, Min %s, Max %s rpm
  Stride: %s

Elevation & Environment:
  Elevation Gain: %s meters
  Altitude: Min %s, Max %s meters
  Gradient: %s%%
  Temperature: %s°C (Weather: %s°C, Feels like: %s°C)
  Wind: Speed %s km/h, Gust %s km/h, Direction %s°
  Headwind: %s%%, Tailwind: %s%%

`,
		n, label, str(iv.Type, "Unknown"),
		intval(iv.ElapsedTime, "0"), intval(iv.MovingTime, "0"),
		floatval(iv.Distance, "0"),
		intval(iv.StartIndex, "0"), intval(iv.EndIndex, "0"),
		intval(iv.AverageWatts, "0"), floatval(iv.AverageWattsKg, "0"),
		intval(iv.MaxWatts, "0"), floatval(iv.MaxWattsKg, "0"),
		intval(iv.WeightedAvgWatts, "0"),
		floatval(iv.Intensity, "0"),
		floatval(iv.TrainingLoad, "0"),
		intval(iv.Joules, "0"),
		intval(iv.JoulesAboveFTP, "0"),
		intval(iv.Zone, "N/A"), intval(iv.ZoneMinWatts, "0"), intval(iv.ZoneMaxWatts, "0"),
		intval(iv.WBalStart, "0"), intval(iv.WBalEnd, "0"),
		floatval(iv.AvgLRBalance, "0"),
		floatval(iv.W5sVariability, "0"),
		floatval(iv.AverageTorque, "0"), floatval(iv.MinTorque, "0"), floatval(iv.MaxTorque, "0"),
		intval(iv.AverageHeartrate, "0"), intval(iv.MinHeartrate, "0"), intval(iv.MaxHeartrate, "0"),
		floatval(iv.Decoupling, "0"),
		floatval(iv.AverageDFAa1, "0"),
		floatval(iv.AverageRespiration, "0"),
		floatval(iv.AverageEPOC, "0"),
		floatval(iv.AverageSmO2, "0"), floatval(iv.AverageSmO22, "0"),
		floatval(iv.AverageTHb, "0"), floatval(iv.AverageTHb2, "0"),
		floatval(iv.AverageSpeed, "0"), floatval(iv.MinSpeed, "0"), floatval(iv.MaxSpeed, "0"),
		floatval(iv.GAP, "0"),
		floatval(iv.AverageCadence, "0"), intval(iv.MinCadence, "0"), intval(iv.MaxCadence, "0"),
		floatval(iv.AverageStride, "0"),
		floatval(iv.TotalElevationGain, "0"),
		floatval(iv.MinAltitude, "0"), floatval(iv.MaxAltitude, "0"),
		floatval(iv.AverageGradient, "0"),
		floatval(iv.AverageTemp, "0"), floatval(iv.AverageWeatherTemp, "0"), floatval(iv.AverageFeelsLike, "0"),
		floatval(iv.AverageWindSpeed, "0"), floatval(iv.AverageWindGust, "0"), intval(iv.PrevailingWindDeg, "0"),
		floatval(iv.HeadwindPercent, "0"), floatval(iv.TailwindPercent, "0"),
	)
}

func writeGroup(b *strings.Builder, n int, g schema.IntervalGroup) {
	id := str(g.ID, fmt.Sprintf("Group %d", n))
	fmt.Fprintf(b, `Group: %s (Contains %s intervals)
Duration: %s seconds (moving: %s seconds)
Distance: %s meters
Start-End Indices: %s-N/A

Power: Avg %s watts (%s W/kg), Max %s watts
W. Avg Power: %s watts, Intensity: %s
Heart Rate: Avg %s, Max %s bpm
Speed: Avg %s, Max %s m/s
Cadence: Avg %s, Max %s rpm

`,
		id, intval(g.Count, "0"),
		intval(g.ElapsedTime, "0"), intval(g.MovingTime, "0"),
		floatval(g.Distance, "0"),
		intval(g.StartIndex, "0"),
		intval(g.AverageWatts, "0"), floatval(g.AverageWattsKg, "0"), intval(g.MaxWatts, "0"),
		intval(g.WeightedAvgWatts, "0"), floatval(g.Intensity, "0"),
		intval(g.AverageHeartrate, "0"), intval(g.MaxHeartrate, "0"),
		floatval(g.AverageSpeed, "0"), floatval(g.MaxSpeed, "0"),
		floatval(g.AverageCadence, "0"), intval(g.MaxCadence, "0"),
	)
}

// ActivityMessage renders a single note or comment on an activity.
func ActivityMessage(m schema.ActivityMessage) string {
	created := str(m.Created, "Unknown")
	created = reformatTimestamp(created, "2006-01-02 15:04:05")

	return fmt.Sprintf(`Author: %s
Date: %s
Type: %s
Content: %s`,
		str(m.Name, "Unknown"),
		created,
		str(m.Type, "TEXT"),
		str(m.Content, ""),
	)
}
