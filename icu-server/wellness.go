package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"intervals-mcp/internal/format"
	"intervals-mcp/internal/icu"
	"intervals-mcp/internal/schema"
)

type GetWellnessArgs struct {
	AthleteID string `json:"athlete_id,omitempty" jsonschema:"Athlete ID (optional, falls back to ATHLETE_ID)"`
	APIKey    string `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
	StartDate string `json:"start_date,omitempty" jsonschema:"Start date YYYY-MM-DD (default 30 days ago)"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"End date YYYY-MM-DD (default today)"`
}

func (s *server) registerWellnessTools(m *mcp.Server) {
	addTool(m, s, &mcp.Tool{
		Name:        "get_wellness_data",
		Description: "Daily wellness entries: fitness, sleep, HRV, vitals and subjective scores",
	}, s.getWellnessData)
}

func (s *server) getWellnessData(ctx context.Context, args GetWellnessArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}

	startDate, endDate := resolveDateRange(args.StartDate, args.EndDate)
	params := []icu.Param{
		{Key: "oldest", Value: startDate},
		{Key: "newest", Value: endDate},
	}
	result, err := s.client.Get(ctx, icu.WellnessPath(athleteID), params, args.APIKey)
	if err != nil {
		return "Error fetching wellness data: " + apiMessage(err)
	}
	if emptyResult(result) {
		return fmt.Sprintf("No wellness data found for athlete %s in the specified date range.", athleteID)
	}

	var b strings.Builder
	b.WriteString("Wellness Data:\n\n")

	switch t := result.(type) {
	case map[string]any:
		// Keyed by date; sort so output order is stable.
		dates := make([]string, 0, len(t))
		for date := range t {
			dates = append(dates, date)
		}
		sort.Strings(dates)
		for _, date := range dates {
			data, ok := t[date].(map[string]any)
			if !ok {
				b.WriteString(fmt.Sprintf("[Wellness data for %s: failed to format]\n\n", date))
				continue
			}
			if _, ok := data["id"]; !ok {
				data["id"] = date
			}
			b.WriteString(format.WellnessEntry(schema.WellnessEntryFromRaw(data)) + "\n\n")
		}
	case []any:
		for _, item := range t {
			if data, ok := item.(map[string]any); ok {
				b.WriteString(format.WellnessEntry(schema.WellnessEntryFromRaw(data)) + "\n\n")
			}
		}
	}

	return b.String()
}
