package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestGetCustomItems(t *testing.T) {
	s, rec := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, []any{
			map[string]any{"id": 1, "name": "Power Curve", "type": "ACTIVITY_CHART", "description": "Best power"},
			map[string]any{"id": 2, "name": "RPE Field", "type": "INPUT_FIELD"},
		})
	})

	out := s.getCustomItems(context.Background(), GetCustomItemsArgs{})

	if !strings.HasPrefix(out, "Custom Items:\n\n") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "- ID: 1\n  Name: Power Curve\n  Type: ACTIVITY_CHART\n  Description: Best power\n") {
		t.Errorf("first item wrong:\n%s", out)
	}
	if !strings.Contains(out, "- ID: 2\n  Name: RPE Field\n  Type: INPUT_FIELD\n") {
		t.Errorf("second item wrong:\n%s", out)
	}
	if got := rec.request(0).Path; got != "/athlete/i12345/custom-item" {
		t.Errorf("path=%q", got)
	}
}

func TestCreateCustomItemStringContent(t *testing.T) {
	s, rec := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, map[string]any{
			"id":      5,
			"name":    "Power Curve",
			"type":    "ACTIVITY_CHART",
			"content": map[string]any{"chart": "power"},
		})
	})

	out := s.createCustomItem(context.Background(), CreateCustomItemArgs{
		Name:     "Power Curve",
		ItemType: "ACTIVITY_CHART",
		Content:  `{"chart": "power"}`,
	})

	if !strings.HasPrefix(out, "Successfully created custom item:\n\n") {
		t.Fatalf("out=%q", out)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.request(0).Body, &body); err != nil {
		t.Fatal(err)
	}
	content, ok := body["content"].(map[string]any)
	if !ok {
		t.Fatalf("content not sent as object: %v", body["content"])
	}
	if content["chart"] != "power" {
		t.Errorf("content=%v", content)
	}
}

func TestCreateCustomItemInvalidStringContent(t *testing.T) {
	s, rec := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		t.Error("no request expected")
	})

	out := s.createCustomItem(context.Background(), CreateCustomItemArgs{
		Name:     "Broken",
		ItemType: "ACTIVITY_CHART",
		Content:  `{"chart": `,
	})

	want := "Error: content must be valid JSON when passed as a string."
	if out != want {
		t.Errorf("out=%q want %q", out, want)
	}
	if rec.count() != 0 {
		t.Errorf("requests=%d want 0", rec.count())
	}
}

func TestUpdateCustomItem(t *testing.T) {
	s, rec := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, map[string]any{"id": 42, "name": "Renamed", "type": "INPUT_FIELD"})
	})

	out := s.updateCustomItem(context.Background(), UpdateCustomItemArgs{
		ItemID: 42,
		Name:   "Renamed",
	})

	if !strings.HasPrefix(out, "Successfully updated custom item:\n\n") {
		t.Fatalf("out=%q", out)
	}
	req := rec.request(0)
	if req.Method != http.MethodPut || req.Path != "/athlete/i12345/custom-item/42" {
		t.Errorf("request=%s %s", req.Method, req.Path)
	}
}

func TestDeleteCustomItem(t *testing.T) {
	s, rec := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		w.WriteHeader(http.StatusOK)
	})

	out := s.deleteCustomItem(context.Background(), CustomItemIDArgs{ItemID: 42})

	if out != "Successfully deleted custom item 42." {
		t.Errorf("out=%q", out)
	}
	req := rec.request(0)
	if req.Method != http.MethodDelete || req.Path != "/athlete/i12345/custom-item/42" {
		t.Errorf("request=%s %s", req.Method, req.Path)
	}
}

func TestGetCustomItemByID(t *testing.T) {
	s, _ := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, map[string]any{
			"id":      7,
			"name":    "HRV Panel",
			"type":    "FITNESS_CHART",
			"content": map[string]any{"metric": "hrv"},
		})
	})

	out := s.getCustomItemByID(context.Background(), CustomItemIDArgs{ItemID: 7})

	if !strings.HasPrefix(out, "Custom Item Details:") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "Name: HRV Panel") {
		t.Errorf("missing name:\n%s", out)
	}
	if !strings.Contains(out, `"metric": "hrv"`) {
		t.Errorf("missing content:\n%s", out)
	}
}
