package format

import (
	"fmt"
	"strconv"
	"strings"

	"intervals-mcp/internal/schema"
)

// ActivitySummary renders the full multi-section activity report.
func ActivitySummary(a schema.Activity) string {
	rpe := "N/A"
	switch {
	case a.PerceivedExertion != nil:
		rpe = num(*a.PerceivedExertion) + "/10"
	case a.RPE != nil:
		rpe = strconv.Itoa(*a.RPE) + "/10"
	}

	feel := "N/A"
	if a.Feel != nil {
		feel = strconv.Itoa(*a.Feel) + "/5"
	}

	startDate := str(a.StartDate, "Unknown")
	startDate = reformatTimestamp(startDate, "2006-01-02 15:04:05")

	return fmt.Sprintf(`
Activity: %s
ID: %s
Type: %s
Date: %s
Description: %s
Distance: %s meters
Duration: %s seconds
Moving Time: %s seconds
Elevation Gain: %s meters
Elevation Loss: %s meters

Power Data:
Average Power: %s watts
Weighted Avg Power: %s watts
Training Load: %s
FTP: %s watts
Kilojoules: %s
Intensity: %s
Power:HR Ratio: %s
Variability Index: %s

Heart Rate Data:
Average Heart Rate: %s bpm
Max Heart Rate: %s bpm
LTHR: %s bpm
Resting HR: %s bpm
Decoupling: %s

Other Metrics:
Cadence: %s rpm
Calories: %s
Average Speed: %s m/s
Max Speed: %s m/s
Average Stride: %s
L/R Balance: %s
Weight: %s kg
RPE: %s
Session RPE: %s
Feel: %s

Environment:
Trainer: %s
Average Temp: %s°C
Min Temp: %s°C
Max Temp: %s°C
Avg Wind Speed: %s km/h
Headwind %%: %s%%
Tailwind %%: %s%%

Training Metrics:
Fitness (CTL): %s
Fatigue (ATL): %s
TRIMP: %s
Polarization Index: %s
Power Load: %s
HR Load: %s
Pace Load: %s
Efficiency Factor: %s

Device Info:
Device: %s
Power Meter: %s
File Type: %s
`,
		str(a.Name, "Unnamed"),
		str(a.ID, "N/A"),
		str(a.Type, "Unknown"),
		startDate,
		str(a.Description, "N/A"),
		floatval(a.Distance, "0"),
		intval(a.ElapsedTime, "0"),
		intval(a.MovingTime, "N/A"),
		floatval(a.TotalElevationGain, "0"),
		floatval(a.TotalElevationLoss, "N/A"),
		intval(a.AverageWatts, "N/A"),
		intval(a.WeightedAvgWatts, "N/A"),
		intval(a.TrainingLoad, "N/A"),
		intval(a.FTP, "N/A"),
		intval(a.Joules, "N/A"),
		floatval(a.Intensity, "N/A"),
		floatval(a.PowerHR, "N/A"),
		floatval(a.VariabilityIndex, "N/A"),
		intval(a.AverageHeartrate, "N/A"),
		intval(a.MaxHeartrate, "N/A"),
		intval(a.LTHR, "N/A"),
		intval(a.RestingHR, "N/A"),
		floatval(a.Decoupling, "N/A"),
		floatval(a.AverageCadence, "N/A"),
		intval(a.Calories, "N/A"),
		floatval(a.AverageSpeed, "N/A"),
		floatval(a.MaxSpeed, "N/A"),
		floatval(a.AverageStride, "N/A"),
		floatval(a.AvgLRBalance, "N/A"),
		floatval(a.Weight, "N/A"),
		rpe,
		intval(a.SessionRPE, "N/A"),
		feel,
		boolval(a.Trainer, "N/A"),
		floatval(a.AverageTemp, "N/A"),
		intval(a.MinTemp, "N/A"),
		intval(a.MaxTemp, "N/A"),
		floatval(a.AverageWindSpeed, "N/A"),
		floatval(a.HeadwindPercent, "N/A"),
		floatval(a.TailwindPercent, "N/A"),
		floatval(a.CTL, "N/A"),
		floatval(a.ATL, "N/A"),
		floatval(a.TRIMP, "N/A"),
		floatval(a.PolarizationIndex, "N/A"),
		intval(a.PowerLoad, "N/A"),
		intval(a.HRLoad, "N/A"),
		intval(a.PaceLoad, "N/A"),
		floatval(a.EfficiencyFactor, "N/A"),
		str(a.DeviceName, "N/A"),
		str(a.PowerMeter, "N/A"),
		str(a.FileType, "N/A"),
	)
}

// SearchResult renders one activity search hit as a single pipe-separated row.
func SearchResult(a schema.Activity) string {
	start := str(a.StartDate, "N/A")
	start = reformatTimestamp(start, "2006-01-02 15:04")

	tags := strings.Join(a.Tags, ", ")
	if tags == "" {
		tags = "none"
	}

	return fmt.Sprintf("ID: %s | %s | %s | %s | %s m | Tags: %s",
		str(a.ID, "N/A"),
		str(a.Name, "Unnamed"),
		start,
		str(a.Type, "N/A"),
		floatval(a.Distance, "0"),
		tags,
	)
}
