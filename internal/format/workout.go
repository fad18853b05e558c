package format

import (
	"fmt"
	"strings"

	"intervals-mcp/internal/schema"
)

// WorkoutSummary renders a library workout.
func WorkoutSummary(w schema.Workout) string {
	sport := "Unknown"
	if w.Sport != nil {
		sport = *w.Sport
	} else if w.Type != nil {
		sport = *w.Type
	}

	tags := "N/A"
	if len(w.Tags) > 0 {
		tags = strings.Join(w.Tags, ", ")
	}

	return fmt.Sprintf(`
Workout: %s
ID: %s
Description: %s
Sport: %s
Type: %s
Folder ID: %s
Tags: %s
Indoor: %s
Distance: %s
Color: %s
Duration: %s seconds
TSS: %s
Intervals: %d
`,
		str(w.Name, "Unnamed"),
		str(w.ID, "N/A"),
		str(w.Description, "No description"),
		sport,
		str(w.Type, "N/A"),
		str(w.FolderID, "N/A"),
		tags,
		boolval(w.Indoor, "N/A"),
		floatval(w.Distance, "N/A"),
		str(w.Color, "N/A"),
		intval(w.MovingTime, "0"),
		intval(w.TrainingLoad, "N/A"),
		len(w.Intervals),
	)
}

// FolderSummary renders a workout folder with its child workout names.
func FolderSummary(f schema.Folder) string {
	lines := []string{
		"Folder: " + str(f.Name, "N/A"),
		"ID: " + str(f.ID, "N/A"),
		fmt.Sprintf("Workouts: %d", len(f.Workouts)),
	}
	for _, w := range f.Workouts {
		if w.Name != nil && *w.Name != "" {
			lines = append(lines, "- "+*w.Name)
		}
	}
	return strings.Join(lines, "\n")
}
