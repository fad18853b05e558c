package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"intervals-mcp/internal/format"
	"intervals-mcp/internal/icu"
	"intervals-mcp/internal/schema"
)

type GetEventsArgs struct {
	AthleteID string `json:"athlete_id,omitempty" jsonschema:"Athlete ID (optional, falls back to ATHLETE_ID)"`
	APIKey    string `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
	StartDate string `json:"start_date,omitempty" jsonschema:"Start date YYYY-MM-DD (default 30 days ago)"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"End date YYYY-MM-DD (default today)"`
}

type EventIDArgs struct {
	EventID   string `json:"event_id" jsonschema:"Event ID (required)"`
	AthleteID string `json:"athlete_id,omitempty" jsonschema:"Athlete ID (optional, falls back to ATHLETE_ID)"`
	APIKey    string `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
}

type AddOrUpdateEventArgs struct {
	AthleteID   string   `json:"athlete_id,omitempty" jsonschema:"Athlete ID (optional, falls back to ATHLETE_ID)"`
	APIKey      string   `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
	EventID     string   `json:"event_id,omitempty" jsonschema:"Event ID to update (omit to create)"`
	StartDate   string   `json:"start_date,omitempty" jsonschema:"Event date YYYY-MM-DD (required when creating)"`
	EndDate     string   `json:"end_date,omitempty" jsonschema:"End date YYYY-MM-DD (optional)"`
	Name        string   `json:"name,omitempty" jsonschema:"Event name"`
	Description string   `json:"description,omitempty" jsonschema:"Event description (optional)"`
	WorkoutType string   `json:"workout_type,omitempty" jsonschema:"Sport type, e.g. Ride or Run (optional)"`
	Category    string   `json:"category,omitempty" jsonschema:"Event category (default WORKOUT)"`
	MovingTime  *int     `json:"moving_time,omitempty" jsonschema:"Planned duration in seconds (optional)"`
	Distance    *float64 `json:"distance,omitempty" jsonschema:"Planned distance in meters (optional)"`
	Color       string   `json:"color,omitempty" jsonschema:"Color hex code (optional)"`
}

type DeleteEventsByDateRangeArgs struct {
	StartDate string `json:"start_date" jsonschema:"Start date YYYY-MM-DD (required)"`
	EndDate   string `json:"end_date" jsonschema:"End date YYYY-MM-DD (required)"`
	Category  string `json:"category,omitempty" jsonschema:"Only delete events of this category (optional)"`
	AthleteID string `json:"athlete_id,omitempty" jsonschema:"Athlete ID (optional, falls back to ATHLETE_ID)"`
	APIKey    string `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
}

type CreateBulkEventsArgs struct {
	AthleteID         string `json:"athlete_id,omitempty" jsonschema:"Athlete ID (optional, falls back to ATHLETE_ID)"`
	APIKey            string `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
	Events            []any  `json:"events" jsonschema:"Event objects, each with start_date_local, category and name"`
	UpsertOnUID       bool   `json:"upsert_on_uid,omitempty" jsonschema:"Update existing events matched by uid"`
	UpdatePlanApplied bool   `json:"update_plan_applied,omitempty" jsonschema:"Re-apply plan to affected days"`
}

func (s *server) registerEventTools(m *mcp.Server) {
	addTool(m, s, &mcp.Tool{
		Name:        "get_events",
		Description: "List calendar events (workouts, races, notes) in a date range",
	}, s.getEvents)

	addTool(m, s, &mcp.Tool{
		Name:        "get_event_by_id",
		Description: "Detailed view of one calendar event",
	}, s.getEventByID)

	addTool(m, s, &mcp.Tool{
		Name:        "add_or_update_event",
		Description: "Create a calendar event, or update one when event_id is given",
	}, s.addOrUpdateEvent)

	addTool(m, s, &mcp.Tool{
		Name:        "delete_event",
		Description: "Delete a single calendar event by ID",
	}, s.deleteEvent)

	addTool(m, s, &mcp.Tool{
		Name:        "delete_events_by_date_range",
		Description: "Delete all events in a date range, optionally filtered by category",
	}, s.deleteEventsByDateRange)

	addTool(m, s, &mcp.Tool{
		Name:        "create_bulk_events",
		Description: "Create or upsert many calendar events in one call",
	}, s.createBulkEvents)
}

func (s *server) getEvents(ctx context.Context, args GetEventsArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}

	startDate, endDate := resolveDateRange(args.StartDate, args.EndDate)
	params := []icu.Param{
		{Key: "oldest", Value: startDate},
		{Key: "newest", Value: endDate},
	}
	result, err := s.client.Get(ctx, icu.EventsPath(athleteID), params, args.APIKey)
	if err != nil {
		return "Error fetching events: " + apiMessage(err)
	}

	events, _ := result.([]any)
	if len(events) == 0 {
		return fmt.Sprintf("No events found for athlete %s in the specified date range.", athleteID)
	}

	formatted := make([]string, 0, len(events))
	for _, item := range events {
		if m, ok := item.(map[string]any); ok {
			formatted = append(formatted, format.EventSummary(schema.EventFromRaw(m)))
		} else {
			formatted = append(formatted, fmt.Sprintf("[Event %v: failed to format]", item))
		}
	}
	return "Events:\n\n" + strings.Join(formatted, "\n\n")
}

func (s *server) getEventByID(ctx context.Context, args EventIDArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}

	result, err := s.client.Get(ctx, icu.EventPath(athleteID, args.EventID), nil, args.APIKey)
	if err != nil {
		return "Error fetching event: " + apiMessage(err)
	}

	data, ok := result.(map[string]any)
	if !ok || len(data) == 0 {
		return fmt.Sprintf("No event found with ID %s.", args.EventID)
	}
	return format.EventDetails(schema.EventFromRaw(data))
}

func (s *server) addOrUpdateEvent(ctx context.Context, args AddOrUpdateEventArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}

	if args.EventID == "" && args.StartDate == "" {
		return "Error: start_date is required when creating an event."
	}

	category := args.Category
	if category == "" {
		category = schema.CategoryWorkout
	}
	req := schema.EventRequest{
		Name:        args.Name,
		Category:    category,
		Type:        args.WorkoutType,
		Description: args.Description,
		Color:       args.Color,
		MovingTime:  args.MovingTime,
		Distance:    args.Distance,
	}
	if args.StartDate != "" {
		req.StartDateLocal = args.StartDate + "T00:00:00"
	}
	if args.EndDate != "" {
		req.EndDateLocal = args.EndDate + "T00:00:00"
	}

	var (
		result any
		err    error
		verb   = "created"
	)
	if args.EventID != "" {
		verb = "updated"
		result, err = s.client.Put(ctx, icu.EventPath(athleteID, args.EventID), req.Body(), args.APIKey)
	} else {
		result, err = s.client.Post(ctx, icu.EventsPath(athleteID), req.Body(), args.APIKey)
	}
	if err != nil {
		return fmt.Sprintf("Error %s event: %s", verbToGerund(verb), apiMessage(err))
	}

	data, ok := result.(map[string]any)
	if !ok {
		return fmt.Sprintf("Error: Unexpected response when %s event.", verbToGerund(verb))
	}
	pretty, _ := json.MarshalIndent(data, "", "  ")
	return fmt.Sprintf("Successfully %s event:\n\n%s", verb, pretty)
}

func verbToGerund(verb string) string {
	if verb == "updated" {
		return "updating"
	}
	return "creating"
}

func (s *server) deleteEvent(ctx context.Context, args EventIDArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}

	_, err := s.client.Delete(ctx, icu.EventPath(athleteID, args.EventID), nil, args.APIKey)
	if err != nil {
		return "Error deleting event: " + apiMessage(err)
	}
	return fmt.Sprintf("Successfully deleted event %s.", args.EventID)
}

func (s *server) deleteEventsByDateRange(ctx context.Context, args DeleteEventsByDateRangeArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}
	if args.StartDate == "" || args.EndDate == "" {
		return "Error: start_date and end_date are required."
	}

	params := []icu.Param{
		{Key: "oldest", Value: args.StartDate},
		{Key: "newest", Value: args.EndDate},
	}
	if args.Category != "" {
		params = append(params, icu.Param{Key: "category", Value: args.Category})
	}
	result, err := s.client.Delete(ctx, icu.EventsPath(athleteID), params, args.APIKey)
	if err != nil {
		return "Error deleting events: " + apiMessage(err)
	}

	if list, ok := result.([]any); ok {
		return fmt.Sprintf("Successfully deleted %d event(s) between %s and %s.", len(list), args.StartDate, args.EndDate)
	}
	if data, ok := result.(map[string]any); ok {
		if count, ok := data["count"].(float64); ok {
			return fmt.Sprintf("Successfully deleted %d event(s) between %s and %s.", int(count), args.StartDate, args.EndDate)
		}
	}
	return fmt.Sprintf("Successfully deleted events between %s and %s.", args.StartDate, args.EndDate)
}

// validateBulkEvents checks every event object before anything is sent
// upstream. One bad item rejects the whole batch.
func validateBulkEvents(events []any) []string {
	var problems []string
	for i, item := range events {
		m, ok := item.(map[string]any)
		if !ok {
			problems = append(problems, fmt.Sprintf("Event %d: expected a dict, got %T", i, item))
			continue
		}

		var missing []string
		for _, key := range []string{"start_date_local", "category", "name"} {
			if v, ok := m[key]; !ok || v == nil || v == "" {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			problems = append(problems, fmt.Sprintf("Event %d: missing required keys: %s", i, strings.Join(missing, ", ")))
		}

		if indoor, ok := m["indoor"]; ok {
			if _, isBool := indoor.(bool); !isBool {
				problems = append(problems, fmt.Sprintf("Event %d: 'indoor' must be a boolean", i))
			}
		}
		if tags, ok := m["tags"]; ok {
			if !isStringList(tags) {
				problems = append(problems, fmt.Sprintf("Event %d: 'tags' must be a list of strings", i))
			}
		}
		for _, key := range []string{"moving_time", "distance"} {
			if v, ok := m[key]; ok && !isNumber(v) {
				problems = append(problems, fmt.Sprintf("Event %d: '%s' must be a number", i, key))
			}
		}
	}
	return problems
}

func isNumber(v any) bool {
	switch v.(type) {
	case float64, float32, int, int64:
		return true
	}
	return false
}

func isStringList(v any) bool {
	list, ok := v.([]any)
	if !ok {
		return false
	}
	for _, item := range list {
		if _, ok := item.(string); !ok {
			return false
		}
	}
	return true
}

func (s *server) createBulkEvents(ctx context.Context, args CreateBulkEventsArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}

	if len(args.Events) == 0 {
		return "No events provided. Pass a list of event objects to create."
	}

	if problems := validateBulkEvents(args.Events); len(problems) > 0 {
		return "Invalid event data:\n" + strings.Join(problems, "\n")
	}

	var params []icu.Param
	if args.UpsertOnUID {
		params = append(params, icu.Param{Key: "upsertOnUid", Value: "true"})
	}
	if args.UpdatePlanApplied {
		params = append(params, icu.Param{Key: "updatePlanApplied", Value: "true"})
	}

	result, err := s.client.Do(ctx, http.MethodPost, icu.EventsBulkPath(athleteID), params, args.Events, args.APIKey)
	if err != nil {
		return "Error creating bulk events: " + apiMessage(err)
	}

	count := len(args.Events)
	if list, ok := result.([]any); ok {
		count = len(list)
	}
	return fmt.Sprintf("Successfully created/updated %d event(s).", count)
}
