package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"intervals-mcp/internal/format"
	"intervals-mcp/internal/icu"
	"intervals-mcp/internal/schema"
)

// Seasons are SEASON_START events that partition the training timeline into
// phases (Base, Build, Peak, ...).

type ListSeasonsArgs struct {
	AthleteID string `json:"athlete_id,omitempty" jsonschema:"Athlete ID (optional, falls back to ATHLETE_ID)"`
	APIKey    string `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
	StartDate string `json:"start_date,omitempty" jsonschema:"Start date YYYY-MM-DD (default 1 year ago)"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"End date YYYY-MM-DD (default 1 year from now)"`
}

type CreateSeasonArgs struct {
	Name        string `json:"name" jsonschema:"Season name, e.g. Base or Build (required)"`
	StartDate   string `json:"start_date" jsonschema:"Start date YYYY-MM-DD (required)"`
	AthleteID   string `json:"athlete_id,omitempty" jsonschema:"Athlete ID (optional, falls back to ATHLETE_ID)"`
	APIKey      string `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
	EndDate     string `json:"end_date,omitempty" jsonschema:"End date YYYY-MM-DD (optional)"`
	Description string `json:"description,omitempty" jsonschema:"Season description (optional)"`
	Color       string `json:"color,omitempty" jsonschema:"Color hex code (optional)"`
}

type UpdateSeasonArgs struct {
	EventID     string `json:"event_id" jsonschema:"Event ID of the season (required)"`
	AthleteID   string `json:"athlete_id,omitempty" jsonschema:"Athlete ID (optional, falls back to ATHLETE_ID)"`
	APIKey      string `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
	Name        string `json:"name,omitempty" jsonschema:"New season name (optional)"`
	StartDate   string `json:"start_date,omitempty" jsonschema:"New start date YYYY-MM-DD (optional)"`
	EndDate     string `json:"end_date,omitempty" jsonschema:"New end date YYYY-MM-DD (optional)"`
	Description string `json:"description,omitempty" jsonschema:"New description (optional)"`
	Color       string `json:"color,omitempty" jsonschema:"New color hex code (optional)"`
}

func (s *server) registerSeasonTools(m *mcp.Server) {
	addTool(m, s, &mcp.Tool{
		Name:        "list_seasons",
		Description: "List training seasons (Base, Build, Peak, ...) on the calendar",
	}, s.listSeasons)

	addTool(m, s, &mcp.Tool{
		Name:        "create_season",
		Description: "Create a training season marker on the calendar",
	}, s.createSeason)

	addTool(m, s, &mcp.Tool{
		Name:        "update_season",
		Description: "Update an existing training season marker",
	}, s.updateSeason)
}

func (s *server) listSeasons(ctx context.Context, args ListSeasonsArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}

	startDate := args.StartDate
	if startDate == "" {
		startDate = daysAgo(365)
	}
	endDate := args.EndDate
	if endDate == "" {
		endDate = daysAhead(365)
	}

	params := []icu.Param{
		{Key: "oldest", Value: startDate},
		{Key: "newest", Value: endDate},
		{Key: "category", Value: schema.CategorySeasonStart},
	}
	result, err := s.client.Get(ctx, icu.EventsPath(athleteID), params, args.APIKey)
	if err != nil {
		return "Error fetching seasons: " + apiMessage(err)
	}

	events, _ := result.([]any)
	formatted := make([]string, 0, len(events))
	for _, item := range events {
		if m, ok := item.(map[string]any); ok {
			formatted = append(formatted, format.SeasonSummary(schema.EventFromRaw(m)))
		}
	}
	if len(formatted) == 0 {
		return fmt.Sprintf("No seasons found for athlete %s in the specified date range.", athleteID)
	}
	return "Seasons:\n\n" + strings.Join(formatted, "\n\n")
}

func (s *server) createSeason(ctx context.Context, args CreateSeasonArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}
	if args.Name == "" || args.StartDate == "" {
		return "Error: name and start_date are required."
	}

	req := schema.EventRequest{
		StartDateLocal: args.StartDate + "T00:00:00",
		Category:       schema.CategorySeasonStart,
		Name:           args.Name,
		Description:    args.Description,
		Color:          args.Color,
	}
	if args.EndDate != "" {
		req.EndDateLocal = args.EndDate + "T00:00:00"
	}

	result, err := s.client.Post(ctx, icu.EventsPath(athleteID), req.Body(), args.APIKey)
	if err != nil {
		return "Error creating season: " + apiMessage(err)
	}

	data, ok := result.(map[string]any)
	if !ok {
		return "Error creating season: unexpected response."
	}
	return "Season created successfully:\n\n" + format.SeasonSummary(schema.EventFromRaw(data))
}

func (s *server) updateSeason(ctx context.Context, args UpdateSeasonArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}
	if args.EventID == "" {
		return "Error: event_id is required."
	}

	body := map[string]any{"category": schema.CategorySeasonStart}
	if args.Name != "" {
		body["name"] = args.Name
	}
	if args.StartDate != "" {
		body["start_date_local"] = args.StartDate + "T00:00:00"
	}
	if args.EndDate != "" {
		body["end_date_local"] = args.EndDate + "T00:00:00"
	}
	if args.Description != "" {
		body["description"] = args.Description
	}
	if args.Color != "" {
		body["color"] = args.Color
	}

	result, err := s.client.Put(ctx, icu.EventPath(athleteID, args.EventID), body, args.APIKey)
	if err != nil {
		return "Error updating season: " + apiMessage(err)
	}

	data, ok := result.(map[string]any)
	if !ok {
		return "Error updating season: unexpected response."
	}
	return "Season updated successfully:\n\n" + format.SeasonSummary(schema.EventFromRaw(data))
}
