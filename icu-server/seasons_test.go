package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestListSeasons(t *testing.T) {
	s, rec := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, []any{
			map[string]any{"id": "s1", "name": "Base", "start_date_local": "2024-01-01T00:00:00"},
			map[string]any{"id": "s2", "name": "Build", "start_date_local": "2024-03-01T00:00:00"},
		})
	})

	out := s.listSeasons(context.Background(), ListSeasonsArgs{
		StartDate: "2024-01-01",
		EndDate:   "2024-12-31",
	})

	if !strings.HasPrefix(out, "Seasons:\n\n") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "Season: Base") || !strings.Contains(out, "Season: Build") {
		t.Errorf("missing seasons:\n%s", out)
	}

	req := rec.request(0)
	if req.Path != "/athlete/i12345/events" {
		t.Errorf("path=%q", req.Path)
	}
	if req.RawQuery != "oldest=2024-01-01&newest=2024-12-31&category=SEASON_START" {
		t.Errorf("query=%q", req.RawQuery)
	}
}

func TestCreateSeason(t *testing.T) {
	s, rec := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, map[string]any{
			"id":               "s9",
			"name":             "Peak",
			"start_date_local": "2024-06-01T00:00:00",
		})
	})

	out := s.createSeason(context.Background(), CreateSeasonArgs{
		Name:      "Peak",
		StartDate: "2024-06-01",
	})

	if !strings.HasPrefix(out, "Season created successfully:\n\n") {
		t.Fatalf("out=%q", out)
	}
	if !strings.Contains(out, "Season: Peak") {
		t.Errorf("missing summary:\n%s", out)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.request(0).Body, &body); err != nil {
		t.Fatal(err)
	}
	if body["category"] != "SEASON_START" {
		t.Errorf("category=%v", body["category"])
	}
	if body["start_date_local"] != "2024-06-01T00:00:00" {
		t.Errorf("start_date_local=%v", body["start_date_local"])
	}
}

func TestCreateSeasonRequiresNameAndDate(t *testing.T) {
	s, rec := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		t.Error("no request expected")
	})

	out := s.createSeason(context.Background(), CreateSeasonArgs{Name: "Peak"})

	if out != "Error: name and start_date are required." {
		t.Errorf("out=%q", out)
	}
	if rec.count() != 0 {
		t.Errorf("requests=%d want 0", rec.count())
	}
}

func TestUpdateSeason(t *testing.T) {
	s, rec := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, map[string]any{
			"id":               "s9",
			"name":             "Peak 2",
			"start_date_local": "2024-06-15T00:00:00",
		})
	})

	out := s.updateSeason(context.Background(), UpdateSeasonArgs{
		EventID:   "s9",
		Name:      "Peak 2",
		StartDate: "2024-06-15",
	})

	if !strings.HasPrefix(out, "Season updated successfully:\n\n") {
		t.Fatalf("out=%q", out)
	}

	req := rec.request(0)
	if req.Method != http.MethodPut || req.Path != "/athlete/i12345/events/s9" {
		t.Errorf("request=%s %s", req.Method, req.Path)
	}
	var body map[string]any
	if err := json.Unmarshal(req.Body, &body); err != nil {
		t.Fatal(err)
	}
	// Category is pinned so an update can never turn a season into another
	// event type.
	if body["category"] != "SEASON_START" {
		t.Errorf("category=%v", body["category"])
	}
}

func TestUpdateSeasonRequiresEventID(t *testing.T) {
	s, rec := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		t.Error("no request expected")
	})

	out := s.updateSeason(context.Background(), UpdateSeasonArgs{Name: "Peak"})

	if out != "Error: event_id is required." {
		t.Errorf("out=%q", out)
	}
	if rec.count() != 0 {
		t.Errorf("requests=%d want 0", rec.count())
	}
}
