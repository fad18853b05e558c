package format

import (
	"fmt"
	"strings"

	"intervals-mcp/internal/schema"
)

type labeledInt struct {
	label string
	value *int
}

type labeledFloat struct {
	label string
	value *float64
	unit  string
}

// WellnessEntry renders one day of wellness data, section by section. Empty
// sections are dropped entirely.
func WellnessEntry(w schema.WellnessEntry) string {
	lines := []string{"Wellness Data:", "Date: " + str(w.ID, "N/A"), ""}

	var training []string
	for _, m := range []labeledFloat{
		{"Fitness (CTL)", w.CTL, ""},
		{"Fatigue (ATL)", w.ATL, ""},
		{"Ramp Rate", w.RampRate, ""},
		{"CTL Load", w.CTLLoad, ""},
		{"ATL Load", w.ATLLoad, ""},
	} {
		if m.value != nil {
			training = append(training, fmt.Sprintf("- %s: %s", m.label, num(*m.value)))
		}
	}
	lines = appendSection(lines, "Training Metrics:", training)

	var sportInfo []string
	for _, s := range w.SportInfo {
		if s.EFTP != nil {
			sportInfo = append(sportInfo, fmt.Sprintf("- %s: eFTP = %s", str(s.Type, ""), num(*s.EFTP)))
		}
	}
	lines = appendSection(lines, "Sport-Specific Info:", sportInfo)

	lines = appendSection(lines, "Vital Signs:", vitalSigns(w))
	lines = appendSection(lines, "Sleep & Recovery:", sleepRecovery(w))

	var menstrual []string
	if w.MenstrualPhase != nil {
		menstrual = append(menstrual, "  Menstrual Phase: "+capitalize(*w.MenstrualPhase))
	}
	if w.MenstrualPhasePredicted != nil {
		menstrual = append(menstrual, "  Predicted Phase: "+capitalize(*w.MenstrualPhasePredicted))
	}
	lines = appendSection(lines, "Menstrual Tracking:", menstrual)

	var subjective []string
	for _, m := range []labeledInt{
		{"Soreness", w.Soreness},
		{"Fatigue", w.Fatigue},
		{"Stress", w.Stress},
		{"Mood", w.Mood},
		{"Motivation", w.Motivation},
		{"Injury Level", w.Injury},
	} {
		if m.value != nil {
			subjective = append(subjective, fmt.Sprintf("  %s: %d/10", m.label, *m.value))
		}
	}
	lines = appendSection(lines, "Subjective Feelings:", subjective)

	var nutrition []string
	if w.KcalConsumed != nil {
		nutrition = append(nutrition, fmt.Sprintf("- Calories Consumed: %d", *w.KcalConsumed))
	}
	if w.HydrationVolume != nil {
		nutrition = append(nutrition, "- Hydration Volume: "+num(*w.HydrationVolume))
	}
	if w.Hydration != nil {
		nutrition = append(nutrition, fmt.Sprintf("  Hydration Score: %d/10", *w.Hydration))
	}
	lines = appendSection(lines, "Nutrition & Hydration:", nutrition)

	if w.Steps != nil {
		lines = appendSection(lines, "Activity:", []string{fmt.Sprintf("- Steps: %d", *w.Steps)})
	}

	if w.Comments != nil && *w.Comments != "" {
		lines = append(lines, "Comments: "+*w.Comments)
	}
	if w.Locked != nil {
		status := "Unlocked"
		if *w.Locked {
			status = "Locked"
		}
		lines = append(lines, "Status: "+status)
	}

	return strings.Join(lines, "\n")
}

// appendSection adds a titled section followed by a blank separator line,
// or nothing when the section body is empty.
func appendSection(lines []string, header string, body []string) []string {
	if len(body) == 0 {
		return lines
	}
	lines = append(lines, header)
	lines = append(lines, body...)
	lines = append(lines, "")
	return lines
}

func vitalSigns(w schema.WellnessEntry) []string {
	var out []string
	if w.Weight != nil {
		out = append(out, "- Weight: "+num(*w.Weight)+" kg")
	}
	if w.RestingHR != nil {
		out = append(out, fmt.Sprintf("- Resting HR: %d bpm", *w.RestingHR))
	}
	for _, m := range []labeledFloat{
		{"HRV", w.HRV, ""},
		{"HRV SDNN", w.HRVSDNN, ""},
		{"Average Sleeping HR", w.AvgSleepingHR, "bpm"},
		{"SpO2", w.SpO2, "%"},
	} {
		if m.value != nil {
			line := fmt.Sprintf("- %s: %s", m.label, num(*m.value))
			if m.unit != "" {
				line += " " + m.unit
			}
			out = append(out, line)
		}
	}
	if w.Systolic != nil && w.Diastolic != nil {
		out = append(out, fmt.Sprintf("- Blood Pressure: %d/%d mmHg", *w.Systolic, *w.Diastolic))
	}
	for _, m := range []labeledFloat{
		{"Respiration", w.Respiration, "breaths/min"},
		{"Blood Glucose", w.BloodGlucose, "mmol/L"},
		{"Lactate", w.Lactate, "mmol/L"},
		{"VO2 Max", w.VO2Max, "ml/kg/min"},
		{"Body Fat", w.BodyFat, "%"},
		{"Abdomen", w.Abdomen, "cm"},
		{"Baevsky Stress Index", w.BaevskySI, ""},
	} {
		if m.value != nil {
			line := fmt.Sprintf("- %s: %s", m.label, num(*m.value))
			if m.unit != "" {
				line += " " + m.unit
			}
			out = append(out, line)
		}
	}
	return out
}

func sleepRecovery(w schema.WellnessEntry) []string {
	var out []string
	if w.SleepSecs != nil {
		out = append(out, fmt.Sprintf("  Sleep: %.2f hours", float64(*w.SleepSecs)/3600))
	} else if w.SleepHours != nil {
		out = append(out, fmt.Sprintf("  Sleep: %s hours", num(*w.SleepHours)))
	}
	if w.SleepQuality != nil {
		labels := map[int]string{1: "Great", 2: "Good", 3: "Average", 4: "Poor"}
		text, ok := labels[*w.SleepQuality]
		if !ok {
			text = fmt.Sprintf("%d", *w.SleepQuality)
		}
		out = append(out, fmt.Sprintf("  Sleep Quality: %d (%s)", *w.SleepQuality, text))
	}
	if w.SleepScore != nil {
		out = append(out, fmt.Sprintf("  Device Sleep Score: %s/100", num(*w.SleepScore)))
	}
	if w.Readiness != nil {
		out = append(out, fmt.Sprintf("  Readiness: %s/10", num(*w.Readiness)))
	}
	return out
}
