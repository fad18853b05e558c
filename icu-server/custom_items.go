package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"intervals-mcp/internal/format"
	"intervals-mcp/internal/icu"
	"intervals-mcp/internal/schema"
)

type GetCustomItemsArgs struct {
	AthleteID string `json:"athlete_id,omitempty" jsonschema:"Athlete ID (optional, falls back to ATHLETE_ID)"`
	APIKey    string `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
}

type CustomItemIDArgs struct {
	ItemID    int    `json:"item_id" jsonschema:"Custom item ID (required)"`
	AthleteID string `json:"athlete_id,omitempty" jsonschema:"Athlete ID (optional, falls back to ATHLETE_ID)"`
	APIKey    string `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
}

type CreateCustomItemArgs struct {
	Name        string `json:"name" jsonschema:"Custom item name (required)"`
	ItemType    string `json:"item_type" jsonschema:"Item type, e.g. ACTIVITY_CHART or INPUT_FIELD (required)"`
	AthleteID   string `json:"athlete_id,omitempty" jsonschema:"Athlete ID (optional, falls back to ATHLETE_ID)"`
	APIKey      string `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
	Description string `json:"description,omitempty" jsonschema:"Description (optional)"`
	Content     any    `json:"content,omitempty" jsonschema:"Configuration content: object, or JSON text"`
	Visibility  string `json:"visibility,omitempty" jsonschema:"PRIVATE, FOLLOWERS or PUBLIC (optional)"`
}

type UpdateCustomItemArgs struct {
	ItemID      int    `json:"item_id" jsonschema:"Custom item ID to update (required)"`
	AthleteID   string `json:"athlete_id,omitempty" jsonschema:"Athlete ID (optional, falls back to ATHLETE_ID)"`
	APIKey      string `json:"api_key,omitempty" jsonschema:"API key override (optional)"`
	Name        string `json:"name,omitempty" jsonschema:"New name (optional)"`
	ItemType    string `json:"item_type,omitempty" jsonschema:"New type (optional)"`
	Description string `json:"description,omitempty" jsonschema:"New description (optional)"`
	Content     any    `json:"content,omitempty" jsonschema:"New content: object, or JSON text"`
	Visibility  string `json:"visibility,omitempty" jsonschema:"New visibility (optional)"`
}

func (s *server) registerCustomItemTools(m *mcp.Server) {
	addTool(m, s, &mcp.Tool{
		Name:        "get_custom_items",
		Description: "List custom charts, fields and panels defined by the athlete",
	}, s.getCustomItems)

	addTool(m, s, &mcp.Tool{
		Name:        "get_custom_item_by_id",
		Description: "Detailed view of one custom item including its content",
	}, s.getCustomItemByID)

	addTool(m, s, &mcp.Tool{
		Name:        "create_custom_item",
		Description: "Create a custom chart, field or panel",
	}, s.createCustomItem)

	addTool(m, s, &mcp.Tool{
		Name:        "update_custom_item",
		Description: "Update an existing custom item",
	}, s.updateCustomItem)

	addTool(m, s, &mcp.Tool{
		Name:        "delete_custom_item",
		Description: "Delete a custom item by ID",
	}, s.deleteCustomItem)
}

// normalizeContent accepts content either as an object or as JSON text.
// The bool result is false when string content is not valid JSON.
func normalizeContent(content any) (map[string]any, bool) {
	switch t := content.(type) {
	case nil:
		return nil, true
	case map[string]any:
		return t, true
	case string:
		var parsed map[string]any
		if err := json.Unmarshal([]byte(t), &parsed); err != nil {
			return nil, false
		}
		return parsed, true
	}
	return nil, false
}

func (s *server) getCustomItems(ctx context.Context, args GetCustomItemsArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}

	result, err := s.client.Get(ctx, icu.CustomItemsPath(athleteID), nil, args.APIKey)
	if err != nil {
		return "Error fetching custom items: " + apiMessage(err)
	}

	items, _ := result.([]any)
	rows := make([]string, 0, len(items))
	for _, raw := range items {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		item := schema.CustomItemFromRaw(m)
		row := fmt.Sprintf("- ID: %v\n", m["id"])
		row += fmt.Sprintf("  Name: %s\n", orNA(item.Name))
		row += fmt.Sprintf("  Type: %s\n", orNA(item.Type))
		if item.Description != nil && *item.Description != "" {
			row += fmt.Sprintf("  Description: %s\n", *item.Description)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return fmt.Sprintf("No custom items found for athlete %s.", athleteID)
	}
	return "Custom Items:\n\n" + strings.Join(rows, "\n")
}

func orNA(p *string) string {
	if p == nil {
		return "N/A"
	}
	return *p
}

func (s *server) getCustomItemByID(ctx context.Context, args CustomItemIDArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}

	result, err := s.client.Get(ctx, icu.CustomItemPath(athleteID, fmt.Sprintf("%d", args.ItemID)), nil, args.APIKey)
	if err != nil {
		return "Error fetching custom item: " + apiMessage(err)
	}

	data, ok := result.(map[string]any)
	if !ok || len(data) == 0 {
		return fmt.Sprintf("No custom item found with ID %d.", args.ItemID)
	}
	return format.CustomItemDetails(schema.CustomItemFromRaw(data))
}

func (s *server) createCustomItem(ctx context.Context, args CreateCustomItemArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}

	content, ok := normalizeContent(args.Content)
	if !ok {
		return "Error: content must be valid JSON when passed as a string."
	}

	req := schema.CustomItemRequest{
		Name:        args.Name,
		Type:        args.ItemType,
		Description: args.Description,
		Visibility:  args.Visibility,
		Content:     content,
	}
	result, err := s.client.Post(ctx, icu.CustomItemsPath(athleteID), req.Body(), args.APIKey)
	if err != nil {
		return "Error creating custom item: " + apiMessage(err)
	}

	data, ok := result.(map[string]any)
	if !ok || len(data) == 0 {
		return "Error: Unexpected response when creating custom item."
	}
	return "Successfully created custom item:\n\n" + format.CustomItemDetails(schema.CustomItemFromRaw(data))
}

func (s *server) updateCustomItem(ctx context.Context, args UpdateCustomItemArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}

	content, ok := normalizeContent(args.Content)
	if !ok {
		return "Error: content must be valid JSON when passed as a string."
	}

	req := schema.CustomItemRequest{
		Name:        args.Name,
		Type:        args.ItemType,
		Description: args.Description,
		Visibility:  args.Visibility,
		Content:     content,
	}
	result, err := s.client.Put(ctx, icu.CustomItemPath(athleteID, fmt.Sprintf("%d", args.ItemID)), req.Body(), args.APIKey)
	if err != nil {
		return "Error updating custom item: " + apiMessage(err)
	}

	data, ok := result.(map[string]any)
	if !ok || len(data) == 0 {
		return "Error: Unexpected response when updating custom item."
	}
	return "Successfully updated custom item:\n\n" + format.CustomItemDetails(schema.CustomItemFromRaw(data))
}

func (s *server) deleteCustomItem(ctx context.Context, args CustomItemIDArgs) string {
	athleteID, errMsg := s.resolveAthleteID(args.AthleteID)
	if errMsg != "" {
		return errMsg
	}

	_, err := s.client.Delete(ctx, icu.CustomItemPath(athleteID, fmt.Sprintf("%d", args.ItemID)), nil, args.APIKey)
	if err != nil {
		return "Error deleting custom item: " + apiMessage(err)
	}
	return fmt.Sprintf("Successfully deleted custom item %d.", args.ItemID)
}
