package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"intervals-mcp/internal/format"
	"intervals-mcp/internal/icu"
	"intervals-mcp/internal/schema"
)

type SearchActivitiesArgs struct {
	AthleteID string `json:"athlete_id,omitempty" jsonschema:"Athlete ID (optional, falls back to ATHLETE_ID)"`
	Query     string `json:"q,omitempty" jsonschema:"Search query: activity name or tag"`
	Limit     int    `json:"limit,omitempty" jsonschema:"Maximum results (optional)"`
	APIKey    string `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
}

type SearchIntervalsArgs struct {
	AthleteID       string   `json:"athlete_id,omitempty" jsonschema:"Athlete ID (optional, falls back to ATHLETE_ID)"`
	DurationSeconds *int     `json:"duration_seconds,omitempty" jsonschema:"Interval duration in seconds to match"`
	IntensityMin    *float64 `json:"intensity_min,omitempty" jsonschema:"Minimum intensity, e.g. 0.9 for 90% FTP"`
	IntensityMax    *float64 `json:"intensity_max,omitempty" jsonschema:"Maximum intensity"`
	IntervalType    string   `json:"interval_type,omitempty" jsonschema:"Interval type filter, e.g. work or recovery"`
	Reps            *int     `json:"reps,omitempty" jsonschema:"Number of reps to match (optional)"`
	Limit           int      `json:"limit,omitempty" jsonschema:"Maximum activities to return (optional)"`
	APIKey          string   `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
}

func (s *server) registerSearchTools(m *mcp.Server) {
	addTool(m, s, &mcp.Tool{
		Name:        "search_activities",
		Description: "Search activities by name or tag",
	}, s.searchActivities)

	addTool(m, s, &mcp.Tool{
		Name:        "search_intervals",
		Description: "Find activities containing intervals that match duration and intensity",
	}, s.searchIntervals)
}

func searchRows(result any) []string {
	list, _ := result.([]any)
	rows := make([]string, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			rows = append(rows, format.SearchResult(schema.ActivityFromRaw(m)))
		} else {
			rows = append(rows, fmt.Sprintf("[Search result %v: failed to format]", item))
		}
	}
	return rows
}

func (s *server) searchActivities(ctx context.Context, args SearchActivitiesArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}

	var params []icu.Param
	if args.Query != "" {
		params = append(params, icu.Param{Key: "q", Value: args.Query})
	}
	if args.Limit > 0 {
		params = append(params, icu.Param{Key: "limit", Value: strconv.Itoa(args.Limit)})
	}

	result, err := s.client.Get(ctx, icu.ActivitySearchPath(athleteID), params, args.APIKey)
	if err != nil {
		return "Error searching activities: " + apiMessage(err)
	}

	rows := searchRows(result)
	if len(rows) == 0 {
		return "No activities found."
	}
	return "Search results:\n\n" + strings.Join(rows, "\n")
}

func (s *server) searchIntervals(ctx context.Context, args SearchIntervalsArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}

	var params []icu.Param
	if args.DurationSeconds != nil {
		params = append(params, icu.Param{Key: "duration", Value: strconv.Itoa(*args.DurationSeconds)})
	}
	if args.IntensityMin != nil {
		params = append(params, icu.Param{Key: "intensityMin", Value: strconv.FormatFloat(*args.IntensityMin, 'f', -1, 64)})
	}
	if args.IntensityMax != nil {
		params = append(params, icu.Param{Key: "intensityMax", Value: strconv.FormatFloat(*args.IntensityMax, 'f', -1, 64)})
	}
	if args.IntervalType != "" {
		params = append(params, icu.Param{Key: "type", Value: args.IntervalType})
	}
	if args.Reps != nil {
		params = append(params, icu.Param{Key: "reps", Value: strconv.Itoa(*args.Reps)})
	}
	if args.Limit > 0 {
		params = append(params, icu.Param{Key: "limit", Value: strconv.Itoa(args.Limit)})
	}

	result, err := s.client.Get(ctx, icu.IntervalSearchPath(athleteID), params, args.APIKey)
	if err != nil {
		return "Error searching intervals: " + apiMessage(err)
	}

	rows := searchRows(result)
	if len(rows) == 0 {
		return "No activities found with matching intervals."
	}
	return "Interval search results:\n\n" + strings.Join(rows, "\n")
}
