package schema

// EventWorkout is the workout object nested inside an event response.
type EventWorkout struct {
	ID           *string
	Sport        *string
	MovingTime   *int
	TrainingLoad *int
	Intervals    []map[string]any
}

func EventWorkoutFromRaw(data map[string]any) EventWorkout {
	return EventWorkout{
		ID:           firstString(data, "id"),
		Sport:        firstString(data, "sport", "type"),
		MovingTime:   firstInt(data, "moving_time", "duration"),
		TrainingLoad: firstInt(data, "icu_training_load", "tss"),
		Intervals:    ObjectItems(firstList(data, "intervals"), "intervals"),
	}
}

// Event is a calendar event response (workout, race, note, season marker).
type Event struct {
	ID             *string
	StartDateLocal *string
	EndDateLocal   *string
	Name           *string
	Description    *string
	Type           *string
	Category       *string
	Race           *bool
	Priority       *string
	Result         *string
	Color          *string
	Workout        *EventWorkout
	Calendar       map[string]any
}

func EventFromRaw(data map[string]any) Event {
	ev := Event{
		ID:             firstString(data, "id"),
		StartDateLocal: firstString(data, "start_date_local", "date"),
		EndDateLocal:   firstString(data, "end_date_local"),
		Name:           firstString(data, "name"),
		Description:    firstString(data, "description"),
		Type:           safeEnum(sportTypes, data["type"]),
		Category:       safeEnum(eventCategories, data["category"]),
		Race:           firstBool(data, "race"),
		Priority:       firstString(data, "priority"),
		Result:         firstString(data, "result"),
		Color:          firstString(data, "color"),
		Calendar:       firstObject(data, "calendar"),
	}
	if w := firstObject(data, "workout"); w != nil {
		workout := EventWorkoutFromRaw(w)
		ev.Workout = &workout
	}
	return ev
}

// EventRequest is the write-path body for creating or updating an event.
// Body emits only API-accepted field names and omits unset values; it is
// deliberately not the inverse of EventFromRaw.
type EventRequest struct {
	StartDateLocal string
	EndDateLocal   string
	Name           string
	Category       string
	Type           string
	Description    string
	Color          string
	MovingTime     *int
	Distance       *float64
}

func (r EventRequest) Body() map[string]any {
	body := map[string]any{
		"start_date_local": r.StartDateLocal,
		"category":         r.Category,
		"name":             r.Name,
	}
	if r.Type != "" {
		body["type"] = r.Type
	}
	if r.EndDateLocal != "" {
		body["end_date_local"] = r.EndDateLocal
	}
	if r.Description != "" {
		body["description"] = r.Description
	}
	if r.Color != "" {
		body["color"] = r.Color
	}
	if r.MovingTime != nil {
		body["moving_time"] = *r.MovingTime
	}
	if r.Distance != nil {
		body["distance"] = *r.Distance
	}
	return body
}
