package schema

// CustomItem is a user-defined chart, field or panel definition.
type CustomItem struct {
	ID          *string
	Name        *string
	Type        *string
	Description *string
	Visibility  *string
	Content     map[string]any
	Image       *string
	Index       *int
	HideScript  *bool
	UsageCount  *int
}

func CustomItemFromRaw(data map[string]any) CustomItem {
	return CustomItem{
		ID:          firstString(data, "id"),
		Name:        firstString(data, "name"),
		Type:        safeEnum(customItemTypes, data["type"]),
		Description: firstString(data, "description"),
		Visibility:  safeEnum(visibilities, data["visibility"]),
		Content:     firstObject(data, "content"),
		Image:       firstString(data, "image"),
		Index:       firstInt(data, "index"),
		HideScript:  firstBool(data, "hide_script", "hideScript"),
		UsageCount:  firstInt(data, "usage_count", "usageCount"),
	}
}

// CustomItemRequest is the write-path body for creating or updating a
// custom item.
type CustomItemRequest struct {
	Name        string
	Type        string
	Description string
	Visibility  string
	Content     map[string]any
}

func (r CustomItemRequest) Body() map[string]any {
	body := map[string]any{}
	if r.Name != "" {
		body["name"] = r.Name
	}
	if r.Type != "" {
		body["type"] = r.Type
	}
	if r.Description != "" {
		body["description"] = r.Description
	}
	if r.Visibility != "" {
		body["visibility"] = r.Visibility
	}
	if r.Content != nil {
		body["content"] = r.Content
	}
	return body
}
