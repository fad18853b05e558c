package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"intervals-mcp/internal/format"
	"intervals-mcp/internal/icu"
	"intervals-mcp/internal/schema"
)

type GetActivitiesArgs struct {
	AthleteID      string `json:"athlete_id,omitempty" jsonschema:"Athlete ID (optional, falls back to ATHLETE_ID)"`
	APIKey         string `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
	StartDate      string `json:"start_date,omitempty" jsonschema:"Start date YYYY-MM-DD (default 30 days ago)"`
	EndDate        string `json:"end_date,omitempty" jsonschema:"End date YYYY-MM-DD (default today)"`
	Limit          int    `json:"limit,omitempty" jsonschema:"Maximum activities to return (default 10)"`
	IncludeUnnamed bool   `json:"include_unnamed,omitempty" jsonschema:"Include unnamed activities (default false)"`
}

type ActivityIDArgs struct {
	ActivityID string `json:"activity_id" jsonschema:"Activity ID (required)"`
	APIKey     string `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
}

type ActivityStreamsArgs struct {
	ActivityID  string `json:"activity_id" jsonschema:"Activity ID (required)"`
	APIKey      string `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
	StreamTypes string `json:"stream_types,omitempty" jsonschema:"Comma-separated stream types (default common set)"`
}

type AddActivityMessageArgs struct {
	ActivityID string `json:"activity_id" jsonschema:"Activity ID (required)"`
	Content    string `json:"content" jsonschema:"Message text to add (required)"`
	APIKey     string `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
}

func (s *server) registerActivityTools(m *mcp.Server) {
	addTool(m, s, &mcp.Tool{
		Name:        "get_activities",
		Description: "List activities for an athlete with full per-activity metrics",
	}, s.getActivities)

	addTool(m, s, &mcp.Tool{
		Name:        "get_activity_details",
		Description: "Detailed metrics for one activity, including power and HR zone times",
	}, s.getActivityDetails)

	addTool(m, s, &mcp.Tool{
		Name:        "get_activity_intervals",
		Description: "Per-interval power, HR, cadence, speed and environment breakdown",
	}, s.getActivityIntervals)

	addTool(m, s, &mcp.Tool{
		Name:        "get_activity_streams",
		Description: "Time-series streams (power, HR, cadence, altitude, ...) with previews",
	}, s.getActivityStreams)

	addTool(m, s, &mcp.Tool{
		Name:        "get_activity_messages",
		Description: "Notes and comments attached to an activity",
	}, s.getActivityMessages)

	addTool(m, s, &mcp.Tool{
		Name:        "add_activity_message",
		Description: "Add a note or comment to an activity",
	}, s.addActivityMessage)
}

// parseActivities pulls the activity list out of whatever shape the API
// returned: a list, a container object holding a list, or a single activity.
// Non-object list items are kept so they can be reported inline.
func parseActivities(result any) []any {
	switch t := result.(type) {
	case []any:
		return t
	case map[string]any:
		for _, v := range t {
			if list, ok := v.([]any); ok {
				return list
			}
		}
		for _, key := range []string{"name", "startTime", "distance"} {
			if _, ok := t[key]; ok {
				return []any{t}
			}
		}
	}
	return nil
}

func filterNamed(items []any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			out = append(out, item)
			continue
		}
		if name, _ := m["name"].(string); name != "" && name != "Unnamed" {
			out = append(out, item)
		}
	}
	return out
}

func formatActivities(items []any, athleteID string, includeUnnamed bool) string {
	if len(items) == 0 {
		if includeUnnamed {
			return fmt.Sprintf("No valid activities found for athlete %s in the specified date range.", athleteID)
		}
		return fmt.Sprintf("No named activities found for athlete %s in the specified date range. Try with include_unnamed=True to see all activities.", athleteID)
	}

	var b strings.Builder
	b.WriteString("Activities:\n\n")
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			b.WriteString(format.ActivitySummary(schema.ActivityFromRaw(m)) + "\n")
		} else {
			b.WriteString(fmt.Sprintf("[Activity %v: failed to format]\n", item))
		}
	}
	return b.String()
}

func (s *server) getActivities(ctx context.Context, args GetActivitiesArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}

	startDate, endDate := resolveDateRange(args.StartDate, args.EndDate)
	limit := args.Limit
	if limit <= 0 {
		limit = 10
	}

	// Over-fetch when unnamed activities will be filtered out.
	apiLimit := limit
	if !args.IncludeUnnamed {
		apiLimit = limit * 3
	}

	params := []icu.Param{
		{Key: "oldest", Value: startDate},
		{Key: "newest", Value: endDate},
		{Key: "limit", Value: fmt.Sprintf("%d", apiLimit)},
	}
	result, err := s.client.Get(ctx, icu.ActivitiesPath(athleteID), params, args.APIKey)
	if err != nil {
		return "Error fetching activities: " + apiMessage(err)
	}
	if emptyResult(result) {
		return fmt.Sprintf("No activities found for athlete %s in the specified date range.", athleteID)
	}

	activities := parseActivities(result)
	if len(activities) == 0 {
		return fmt.Sprintf("No valid activities found for athlete %s in the specified date range.", athleteID)
	}

	if !args.IncludeUnnamed {
		activities = filterNamed(activities)
		if len(activities) < limit {
			activities = append(activities, s.fetchOlderActivities(ctx, athleteID, startDate, args.APIKey, apiLimit)...)
		}
	}

	if len(activities) > limit {
		activities = activities[:limit]
	}
	return formatActivities(activities, athleteID, args.IncludeUnnamed)
}

// fetchOlderActivities makes one supplementary request for the 60 days before
// startDate when the named filter left fewer results than requested.
func (s *server) fetchOlderActivities(ctx context.Context, athleteID, startDate, apiKey string, apiLimit int) []any {
	oldest, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil
	}
	olderStart := oldest.AddDate(0, 0, -60).Format("2006-01-02")
	olderEnd := oldest.AddDate(0, 0, -1).Format("2006-01-02")
	if olderStart >= olderEnd {
		return nil
	}

	params := []icu.Param{
		{Key: "oldest", Value: olderStart},
		{Key: "newest", Value: olderEnd},
		{Key: "limit", Value: fmt.Sprintf("%d", apiLimit)},
	}
	result, err := s.client.Get(ctx, icu.ActivitiesPath(athleteID), params, apiKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("supplementary activity fetch failed")
		return nil
	}
	if list, ok := result.([]any); ok {
		return filterNamed(list)
	}
	return nil
}

func (s *server) getActivityDetails(ctx context.Context, args ActivityIDArgs) string {
	result, err := s.client.Get(ctx, icu.ActivityPath(args.ActivityID), nil, args.APIKey)
	if err != nil {
		return "Error fetching activity details: " + apiMessage(err)
	}
	if emptyResult(result) {
		return fmt.Sprintf("No details found for activity %s.", args.ActivityID)
	}

	if list, ok := result.([]any); ok && len(list) > 0 {
		result = list[0]
	}
	data, ok := result.(map[string]any)
	if !ok {
		return fmt.Sprintf("Invalid activity format for activity %s.", args.ActivityID)
	}

	view := format.ActivitySummary(schema.ActivityFromRaw(data))

	if zones, ok := data["zones"].(map[string]any); ok {
		view += "\nPower Zones:\n"
		view += zoneLines(zones["power"])
		view += "\nHeart Rate Zones:\n"
		view += zoneLines(zones["hr"])
	}
	return view
}

func zoneLines(raw any) string {
	list, ok := raw.([]any)
	if !ok {
		return ""
	}
	var b strings.Builder
	for _, item := range list {
		zone, ok := item.(map[string]any)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "Zone %v: %v seconds\n", zone["number"], zone["secondsInZone"])
	}
	return b.String()
}

func (s *server) getActivityIntervals(ctx context.Context, args ActivityIDArgs) string {
	result, err := s.client.Get(ctx, icu.ActivityIntervalsPath(args.ActivityID), nil, args.APIKey)
	if err != nil {
		return "Error fetching intervals: " + apiMessage(err)
	}
	if emptyResult(result) {
		return fmt.Sprintf("No interval data found for activity %s.", args.ActivityID)
	}

	data, ok := result.(map[string]any)
	if !ok {
		return fmt.Sprintf("No interval data or unrecognized format for activity %s.", args.ActivityID)
	}
	if _, hasIntervals := data["icu_intervals"]; !hasIntervals {
		if _, hasGroups := data["icu_groups"]; !hasGroups {
			return fmt.Sprintf("No interval data or unrecognized format for activity %s.", args.ActivityID)
		}
	}

	return format.IntervalsAnalysis(schema.IntervalsDataFromRaw(data))
}

func (s *server) getActivityStreams(ctx context.Context, args ActivityStreamsArgs) string {
	types := args.StreamTypes
	if types == "" {
		types = "time,watts,heartrate,cadence,altitude,distance,velocity_smooth"
	}
	params := []icu.Param{{Key: "types", Value: types}}

	result, err := s.client.Get(ctx, icu.ActivityStreamsPath(args.ActivityID), params, args.APIKey)
	if err != nil {
		return "Error fetching activity streams: " + apiMessage(err)
	}

	streams, _ := result.([]any)
	if len(streams) == 0 {
		return fmt.Sprintf("No stream data found for activity %s.", args.ActivityID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Activity Streams for %s:\n\n", args.ActivityID)
	for _, item := range streams {
		stream, ok := item.(map[string]any)
		if !ok {
			continue
		}
		streamType, _ := stream["type"].(string)
		if streamType == "" {
			streamType = "unknown"
		}
		name, _ := stream["name"].(string)
		if name == "" {
			name = streamType
		}
		data, _ := stream["data"].([]any)
		valueType, _ := stream["valueType"].(string)

		fmt.Fprintf(&b, "Stream: %s (%s)\n", name, streamType)
		fmt.Fprintf(&b, "  Value Type: %s\n", valueType)
		fmt.Fprintf(&b, "  Data Points: %d\n", len(data))
		if len(data) > 0 {
			if len(data) <= 10 {
				fmt.Fprintf(&b, "  Values: %v\n", data)
			} else {
				fmt.Fprintf(&b, "  First 5 values: %v\n", data[:5])
				fmt.Fprintf(&b, "  Last 5 values: %v\n", data[len(data)-5:])
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *server) getActivityMessages(ctx context.Context, args ActivityIDArgs) string {
	result, err := s.client.Get(ctx, icu.ActivityMessagesPath(args.ActivityID), nil, args.APIKey)
	if err != nil {
		return "Error fetching activity messages: " + apiMessage(err)
	}

	messages, _ := result.([]any)
	if len(messages) == 0 {
		return fmt.Sprintf("No messages found for activity %s.", args.ActivityID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Messages for activity %s:\n\n", args.ActivityID)
	shown := 0
	for _, item := range messages {
		if m, ok := item.(map[string]any); ok {
			b.WriteString(format.ActivityMessage(schema.ActivityMessageFromRaw(m)) + "\n\n")
			shown++
		}
	}
	if shown == 0 {
		b.WriteString("[No messages could be displayed]\n\n")
	}
	return b.String()
}

func (s *server) addActivityMessage(ctx context.Context, args AddActivityMessageArgs) string {
	result, err := s.client.Post(ctx, icu.ActivityMessagesPath(args.ActivityID), map[string]any{"content": args.Content}, args.APIKey)
	if err != nil {
		return "Error adding message to activity: " + apiMessage(err)
	}

	data, ok := result.(map[string]any)
	if !ok || len(data) == 0 {
		return "Error: Unexpected response when adding message."
	}
	if id, ok := data["id"]; ok && id != nil {
		return fmt.Sprintf("Successfully added message (ID: %v) to activity %s.", id, args.ActivityID)
	}
	return fmt.Sprintf("Message appears to have been added to activity %s, but no ID was returned. Please verify manually.", args.ActivityID)
}
