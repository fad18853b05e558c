package format

import (
	"fmt"
	"strings"

	"intervals-mcp/internal/schema"
)

// EventSummary renders a short calendar event listing entry.
func EventSummary(ev schema.Event) string {
	kind := "Other"
	switch {
	case ev.Workout != nil:
		kind = "Workout"
	case ev.Race != nil && *ev.Race:
		kind = "Race"
	}

	return fmt.Sprintf(`Date: %s
ID: %s
Type: %s
Name: %s
Description: %s`,
		str(ev.StartDateLocal, "Unknown"),
		str(ev.ID, "N/A"),
		kind,
		str(ev.Name, "Unnamed"),
		str(ev.Description, "No description"),
	)
}

// EventDetails renders a full event report with workout, race and calendar
// sections when present.
func EventDetails(ev schema.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Event Details:

ID: %s
Date: %s
Name: %s
Description: %s`,
		str(ev.ID, "N/A"),
		str(ev.StartDateLocal, "Unknown"),
		str(ev.Name, "Unnamed"),
		str(ev.Description, "No description"),
	)

	if ev.Workout != nil {
		w := ev.Workout
		fmt.Fprintf(&b, `

Workout Information:
Workout ID: %s
Sport: %s
Duration: %s seconds
TSS: %s`,
			str(w.ID, "N/A"),
			str(w.Sport, "Unknown"),
			intval(w.MovingTime, "0"),
			intval(w.TrainingLoad, "N/A"),
		)
		if w.Intervals != nil {
			fmt.Fprintf(&b, "\nIntervals: %d", len(w.Intervals))
		}
	}

	if ev.Race != nil && *ev.Race {
		fmt.Fprintf(&b, `

Race Information:
Priority: %s
Result: %s`,
			str(ev.Priority, "N/A"),
			str(ev.Result, "N/A"),
		)
	}

	if ev.Calendar != nil {
		name := "N/A"
		if n, ok := ev.Calendar["name"].(string); ok {
			name = n
		}
		fmt.Fprintf(&b, "\n\nCalendar: %s", name)
	}

	return b.String()
}

// SeasonSummary renders a SEASON_START event as a training phase entry.
func SeasonSummary(ev schema.Event) string {
	lines := []string{
		"Season: " + str(ev.Name, "Unnamed"),
		"ID: " + str(ev.ID, "N/A"),
		"Start: " + str(ev.StartDateLocal, "Unknown"),
	}
	if ev.EndDateLocal != nil {
		lines = append(lines, "End: "+*ev.EndDateLocal)
	}
	if ev.Description != nil && *ev.Description != "" {
		lines = append(lines, "Description: "+*ev.Description)
	}
	if ev.Color != nil {
		lines = append(lines, "Color: "+*ev.Color)
	}
	return strings.Join(lines, "\n")
}
