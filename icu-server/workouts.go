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

type ListWorkoutsArgs struct {
	AthleteID string `json:"athlete_id,omitempty" jsonschema:"Athlete ID (optional, falls back to ATHLETE_ID)"`
	APIKey    string `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
}

type CreateBulkWorkoutsArgs struct {
	AthleteID string           `json:"athlete_id,omitempty" jsonschema:"Athlete ID (optional, falls back to ATHLETE_ID)"`
	Workouts  []map[string]any `json:"workouts" jsonschema:"Workout objects to create (name, sport, intervals, ...)"`
	APIKey    string           `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
}

func (s *server) registerWorkoutTools(m *mcp.Server) {
	addTool(m, s, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List the athlete's workout library",
	}, s.listWorkouts)

	addTool(m, s, &mcp.Tool{
		Name:        "list_folders",
		Description: "List workout folders and plans with their child workouts",
	}, s.listFolders)

	addTool(m, s, &mcp.Tool{
		Name:        "create_bulk_workouts",
		Description: "Create many library workouts in one call",
	}, s.createBulkWorkouts)
}

func (s *server) listWorkouts(ctx context.Context, args ListWorkoutsArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}

	result, err := s.client.Get(ctx, icu.WorkoutsPath(athleteID), nil, args.APIKey)
	if err != nil {
		return "Error listing workouts: " + apiMessage(err)
	}

	list, _ := result.([]any)
	formatted := make([]string, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			formatted = append(formatted, strings.TrimSpace(format.WorkoutSummary(schema.WorkoutFromRaw(m))))
		} else {
			formatted = append(formatted, fmt.Sprintf("[Workout %v: failed to format]", item))
		}
	}
	if len(formatted) == 0 {
		return "No workouts in library."
	}
	return "Workout library:\n\n" + strings.Join(formatted, "\n")
}

func (s *server) listFolders(ctx context.Context, args ListWorkoutsArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}

	result, err := s.client.Get(ctx, icu.FoldersPath(athleteID), nil, args.APIKey)
	if err != nil {
		return "Error listing folders: " + apiMessage(err)
	}

	list, _ := result.([]any)
	formatted := make([]string, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			formatted = append(formatted, format.FolderSummary(schema.FolderFromRaw(m)))
		}
	}
	if len(formatted) == 0 {
		return "No folders found."
	}
	return "Folders:\n\n" + strings.Join(formatted, "\n\n")
}

func (s *server) createBulkWorkouts(ctx context.Context, args CreateBulkWorkoutsArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}

	if len(args.Workouts) == 0 {
		return "No workouts provided. Pass a list of workout objects to create."
	}

	result, err := s.client.Post(ctx, icu.WorkoutsBulkPath(athleteID), args.Workouts, args.APIKey)
	if err != nil {
		return "Error creating bulk workouts: " + apiMessage(err)
	}

	count := 0
	if list, ok := result.([]any); ok {
		count = len(list)
	}
	return fmt.Sprintf("Successfully created %d workout(s).", count)
}
