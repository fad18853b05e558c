package schema

// StepValue is a power, heart rate, pace or cadence target within a workout
// step. Either Value or the Start/End range is set; Units qualifies the
// numbers (%ftp, %lthr, w, bpm, ...).
type StepValue struct {
	Value *float64
	Start *float64
	End   *float64
	Units *string
}

func StepValueFromRaw(data map[string]any) StepValue {
	return StepValue{
		Value: firstFloat(data, "value"),
		Start: firstFloat(data, "start"),
		End:   firstFloat(data, "end"),
		Units: firstString(data, "units"),
	}
}

func (v StepValue) Body() map[string]any {
	body := map[string]any{}
	if v.Value != nil {
		body["value"] = *v.Value
	}
	if v.Start != nil {
		body["start"] = *v.Start
	}
	if v.End != nil {
		body["end"] = *v.End
	}
	if v.Units != nil {
		body["units"] = *v.Units
	}
	return body
}

// WorkoutStep is a single step of a structured workout. A step with Reps set
// repeats its nested Steps.
type WorkoutStep struct {
	Text     *string
	Duration *int
	Distance *float64
	Power    *StepValue
	HR       *StepValue
	Pace     *StepValue
	Cadence  *StepValue
	Ramp     *bool
	Warmup   *bool
	Cooldown *bool
	FreeRide *bool
	Reps     *int
	Steps    []WorkoutStep
}

func WorkoutStepFromRaw(data map[string]any) WorkoutStep {
	step := WorkoutStep{
		Text:     firstString(data, "text"),
		Duration: firstInt(data, "duration"),
		Distance: firstFloat(data, "distance"),
		Ramp:     firstBool(data, "ramp"),
		Warmup:   firstBool(data, "warmup"),
		Cooldown: firstBool(data, "cooldown"),
		FreeRide: firstBool(data, "freeride"),
		Reps:     firstInt(data, "reps"),
	}
	for key, dst := range map[string]**StepValue{
		"power":   &step.Power,
		"hr":      &step.HR,
		"pace":    &step.Pace,
		"cadence": &step.Cadence,
	} {
		if m := firstObject(data, key); m != nil {
			v := StepValueFromRaw(m)
			*dst = &v
		}
	}
	for _, m := range ObjectItems(firstList(data, "steps"), "steps") {
		step.Steps = append(step.Steps, WorkoutStepFromRaw(m))
	}
	return step
}

func (s WorkoutStep) Body() map[string]any {
	body := map[string]any{}
	if s.Text != nil {
		body["text"] = *s.Text
	}
	if s.Duration != nil {
		body["duration"] = *s.Duration
	}
	if s.Distance != nil {
		body["distance"] = *s.Distance
	}
	if s.Power != nil {
		body["power"] = s.Power.Body()
	}
	if s.HR != nil {
		body["hr"] = s.HR.Body()
	}
	if s.Pace != nil {
		body["pace"] = s.Pace.Body()
	}
	if s.Cadence != nil {
		body["cadence"] = s.Cadence.Body()
	}
	if s.Ramp != nil {
		body["ramp"] = *s.Ramp
	}
	if s.Warmup != nil {
		body["warmup"] = *s.Warmup
	}
	if s.Cooldown != nil {
		body["cooldown"] = *s.Cooldown
	}
	if s.FreeRide != nil {
		body["freeride"] = *s.FreeRide
	}
	if s.Reps != nil {
		body["reps"] = *s.Reps
		steps := make([]map[string]any, 0, len(s.Steps))
		for _, sub := range s.Steps {
			steps = append(steps, sub.Body())
		}
		body["steps"] = steps
	}
	return body
}

// WorkoutDoc is the structured description of a workout.
type WorkoutDoc struct {
	Description *string
	Duration    *int
	Distance    *float64
	Steps       []WorkoutStep
}

func WorkoutDocFromRaw(data map[string]any) WorkoutDoc {
	doc := WorkoutDoc{
		Description: firstString(data, "description"),
		Duration:    firstInt(data, "duration"),
		Distance:    firstFloat(data, "distance"),
	}
	for _, m := range ObjectItems(firstList(data, "steps"), "steps") {
		doc.Steps = append(doc.Steps, WorkoutStepFromRaw(m))
	}
	return doc
}

func (d WorkoutDoc) Body() map[string]any {
	body := map[string]any{}
	if d.Description != nil {
		body["description"] = *d.Description
	}
	if d.Duration != nil {
		body["duration"] = *d.Duration
	}
	if d.Distance != nil {
		body["distance"] = *d.Distance
	}
	steps := make([]map[string]any, 0, len(d.Steps))
	for _, s := range d.Steps {
		steps = append(steps, s.Body())
	}
	body["steps"] = steps
	return body
}
