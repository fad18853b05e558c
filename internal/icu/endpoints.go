package icu

import (
	"fmt"
	"net/url"
)

// Path builders for the Intervals.icu API. Everything interpolated into a
// path is escaped here so callers never build URLs by hand.

// /athlete/{id}/activities
func ActivitiesPath(athleteID string) string {
	return fmt.Sprintf("/athlete/%s/activities", url.PathEscape(athleteID))
}

// /activity/{id}
func ActivityPath(activityID string) string {
	return fmt.Sprintf("/activity/%s", url.PathEscape(activityID))
}

// /activity/{id}/intervals
func ActivityIntervalsPath(activityID string) string {
	return fmt.Sprintf("/activity/%s/intervals", url.PathEscape(activityID))
}

// /activity/{id}/streams
func ActivityStreamsPath(activityID string) string {
	return fmt.Sprintf("/activity/%s/streams", url.PathEscape(activityID))
}

// /activity/{id}/messages
func ActivityMessagesPath(activityID string) string {
	return fmt.Sprintf("/activity/%s/messages", url.PathEscape(activityID))
}

// /athlete/{id}/events
func EventsPath(athleteID string) string {
	return fmt.Sprintf("/athlete/%s/events", url.PathEscape(athleteID))
}

// /athlete/{id}/events/{event_id}
func EventPath(athleteID, eventID string) string {
	return fmt.Sprintf("/athlete/%s/events/%s", url.PathEscape(athleteID), url.PathEscape(eventID))
}

// /athlete/{id}/events/bulk
func EventsBulkPath(athleteID string) string {
	return fmt.Sprintf("/athlete/%s/events/bulk", url.PathEscape(athleteID))
}

// /athlete/{id}/wellness
func WellnessPath(athleteID string) string {
	return fmt.Sprintf("/athlete/%s/wellness", url.PathEscape(athleteID))
}

// /athlete/{id}/wellness/{date}
func WellnessDatePath(athleteID, date string) string {
	return fmt.Sprintf("/athlete/%s/wellness/%s", url.PathEscape(athleteID), url.PathEscape(date))
}

// /athlete/{id}
func AthletePath(athleteID string) string {
	return fmt.Sprintf("/athlete/%s", url.PathEscape(athleteID))
}

// /athlete/{id}/sport-settings
func SportSettingsPath(athleteID string) string {
	return fmt.Sprintf("/athlete/%s/sport-settings", url.PathEscape(athleteID))
}

// /athlete/{id}/sport-settings/{sport}
func SportSettingsSportPath(athleteID, sport string) string {
	return fmt.Sprintf("/athlete/%s/sport-settings/%s", url.PathEscape(athleteID), url.PathEscape(sport))
}

// /athlete/{id}/custom-item
func CustomItemsPath(athleteID string) string {
	return fmt.Sprintf("/athlete/%s/custom-item", url.PathEscape(athleteID))
}

// /athlete/{id}/custom-item/{item_id}
func CustomItemPath(athleteID, itemID string) string {
	return fmt.Sprintf("/athlete/%s/custom-item/%s", url.PathEscape(athleteID), url.PathEscape(itemID))
}

// /athlete/{id}/activities/search
func ActivitySearchPath(athleteID string) string {
	return fmt.Sprintf("/athlete/%s/activities/search", url.PathEscape(athleteID))
}

// /athlete/{id}/activities/interval-search
func IntervalSearchPath(athleteID string) string {
	return fmt.Sprintf("/athlete/%s/activities/interval-search", url.PathEscape(athleteID))
}

// /athlete/{id}/workouts
func WorkoutsPath(athleteID string) string {
	return fmt.Sprintf("/athlete/%s/workouts", url.PathEscape(athleteID))
}

// /athlete/{id}/workouts/{workout_id}
func WorkoutPath(athleteID, workoutID string) string {
	return fmt.Sprintf("/athlete/%s/workouts/%s", url.PathEscape(athleteID), url.PathEscape(workoutID))
}

// /athlete/{id}/workouts/bulk
func WorkoutsBulkPath(athleteID string) string {
	return fmt.Sprintf("/athlete/%s/workouts/bulk", url.PathEscape(athleteID))
}

// /athlete/{id}/folders
func FoldersPath(athleteID string) string {
	return fmt.Sprintf("/athlete/%s/folders", url.PathEscape(athleteID))
}
