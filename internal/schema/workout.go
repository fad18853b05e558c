package schema

// Workout is a library workout stored inside a folder or plan.
type Workout struct {
	ID           *string
	Name         *string
	Description  *string
	Sport        *string
	Type         *string
	Tags         []string
	MovingTime   *int
	TrainingLoad *int
	Distance     *float64
	FolderID     *string
	Day          *int
	Indoor       *bool
	Color        *string
	Doc          *WorkoutDoc
	Intervals    []map[string]any
}

func WorkoutFromRaw(data map[string]any) Workout {
	w := Workout{
		ID:           firstString(data, "id"),
		Name:         firstString(data, "name"),
		Description:  firstString(data, "description"),
		Sport:        firstString(data, "sport"),
		Type:         safeEnum(sportTypes, data["type"]),
		Tags:         stringList(data["tags"]),
		MovingTime:   firstInt(data, "moving_time", "duration"),
		TrainingLoad: firstInt(data, "icu_training_load", "tss"),
		Distance:     firstFloat(data, "distance"),
		FolderID:     firstString(data, "folder_id", "folderId"),
		Day:          firstInt(data, "day"),
		Indoor:       firstBool(data, "indoor"),
		Color:        firstString(data, "color"),
		Intervals:    ObjectItems(firstList(data, "intervals"), "intervals"),
	}
	if doc := firstObject(data, "workout_doc", "workoutDoc"); doc != nil {
		parsed := WorkoutDocFromRaw(doc)
		w.Doc = &parsed
	}
	return w
}

// WorkoutRequest is the write-path body for creating a library workout.
type WorkoutRequest struct {
	Name         string
	Description  string
	Type         string
	FolderID     *int
	MovingTime   *int
	TrainingLoad *int
	Day          *int
	Indoor       *bool
	Color        string
	Doc          *WorkoutDoc
}

func (r WorkoutRequest) Body() map[string]any {
	body := map[string]any{
		"name": r.Name,
	}
	if r.Description != "" {
		body["description"] = r.Description
	}
	if r.Type != "" {
		body["type"] = r.Type
	}
	if r.FolderID != nil {
		body["folder_id"] = *r.FolderID
	}
	if r.MovingTime != nil {
		body["moving_time"] = *r.MovingTime
	}
	if r.TrainingLoad != nil {
		body["icu_training_load"] = *r.TrainingLoad
	}
	if r.Day != nil {
		body["day"] = *r.Day
	}
	if r.Indoor != nil {
		body["indoor"] = *r.Indoor
	}
	if r.Color != "" {
		body["color"] = r.Color
	}
	if r.Doc != nil {
		body["workout_doc"] = r.Doc.Body()
	}
	return body
}

// Folder is a workout folder or training plan with its workouts.
type Folder struct {
	ID          *string
	Name        *string
	Type        *string
	Description *string
	Workouts    []Workout
}

func FolderFromRaw(data map[string]any) Folder {
	f := Folder{
		ID:          firstString(data, "id"),
		Name:        firstString(data, "name"),
		Type:        firstString(data, "type"),
		Description: firstString(data, "description"),
	}
	for _, m := range ObjectItems(firstList(data, "workouts", "children"), "workouts") {
		f.Workouts = append(f.Workouts, WorkoutFromRaw(m))
	}
	return f
}
