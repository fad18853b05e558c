package format

import (
	"encoding/json"
	"strconv"
	"strings"

	"intervals-mcp/internal/schema"
)

// CustomItemDetails renders a custom item with its content as indented JSON.
func CustomItemDetails(item schema.CustomItem) string {
	lines := []string{
		"Custom Item Details:",
		"",
		"ID: " + str(item.ID, "N/A"),
		"Name: " + str(item.Name, "N/A"),
		"Type: " + str(item.Type, "N/A"),
	}
	if item.Description != nil && *item.Description != "" {
		lines = append(lines, "Description: "+*item.Description)
	}
	if item.Visibility != nil && *item.Visibility != "" {
		lines = append(lines, "Visibility: "+*item.Visibility)
	}
	if item.Index != nil {
		lines = append(lines, "Index: "+strconv.Itoa(*item.Index))
	}
	if item.HideScript != nil {
		lines = append(lines, "Hide Script: "+strconv.FormatBool(*item.HideScript))
	}
	if len(item.Content) > 0 {
		if content, err := json.MarshalIndent(item.Content, "", "  "); err == nil {
			lines = append(lines, "Content: "+string(content))
		}
	}
	return strings.Join(lines, "\n")
}
