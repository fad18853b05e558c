package main

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"intervals-mcp/internal/format"
	"intervals-mcp/internal/icu"
	"intervals-mcp/internal/schema"
)

type GetAthleteArgs struct {
	AthleteID string `json:"athlete_id,omitempty" jsonschema:"Athlete ID (optional, falls back to ATHLETE_ID)"`
	APIKey    string `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
}

type GetSportSettingsArgs struct {
	AthleteID string `json:"athlete_id,omitempty" jsonschema:"Athlete ID (optional, falls back to ATHLETE_ID)"`
	SportType string `json:"sport_type,omitempty" jsonschema:"Sport type, e.g. Ride or Run (optional, all sports when omitted)"`
	APIKey    string `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
}

func (s *server) registerAthleteTools(m *mcp.Server) {
	addTool(m, s, &mcp.Tool{
		Name:        "get_athlete",
		Description: "Athlete profile: weight, resting HR, location, timezone, status",
	}, s.getAthlete)

	addTool(m, s, &mcp.Tool{
		Name:        "get_sport_settings",
		Description: "Per-sport thresholds and zones: FTP, LTHR, max HR, pace",
	}, s.getSportSettings)
}

func (s *server) getAthlete(ctx context.Context, args GetAthleteArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}

	result, err := s.client.Get(ctx, icu.AthletePath(athleteID), nil, args.APIKey)
	if err != nil {
		return "Error fetching athlete: " + apiMessage(err)
	}

	data, ok := result.(map[string]any)
	if !ok {
		return "Unexpected response from API."
	}
	return format.AthleteSummary(schema.AthleteFromRaw(data))
}

func (s *server) getSportSettings(ctx context.Context, args GetSportSettingsArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}

	path := icu.SportSettingsPath(athleteID)
	if args.SportType != "" {
		path = icu.SportSettingsSportPath(athleteID, args.SportType)
	}
	result, err := s.client.Get(ctx, path, nil, args.APIKey)
	if err != nil {
		return "Error fetching sport settings: " + apiMessage(err)
	}

	if args.SportType != "" {
		data, ok := result.(map[string]any)
		if !ok {
			return "Unexpected response from API."
		}
		return format.SportSettings(schema.SportSettingsFromRaw(data))
	}

	list, _ := result.([]any)
	formatted := make([]string, 0, len(list))
	for _, item := range list {
		if data, ok := item.(map[string]any); ok {
			formatted = append(formatted, format.SportSettings(schema.SportSettingsFromRaw(data)))
		}
	}
	if len(formatted) == 0 {
		return "No sport settings found."
	}
	return strings.Join(formatted, "\n\n---\n\n")
}
