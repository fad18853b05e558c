package main

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestListWorkouts(t *testing.T) {
	s, rec := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, []any{
			map[string]any{"id": "w1", "name": "Sweet Spot 3x15", "sport": "Ride", "moving_time": 3600},
			map[string]any{"id": "w2", "name": "Easy Run", "sport": "Run"},
		})
	})

	out := s.listWorkouts(context.Background(), ListWorkoutsArgs{})

	if !strings.HasPrefix(out, "Workout library:\n\n") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "Workout: Sweet Spot 3x15") || !strings.Contains(out, "Workout: Easy Run") {
		t.Errorf("missing workouts:\n%s", out)
	}
	if !strings.Contains(out, "Duration: 3600 seconds") {
		t.Errorf("missing duration:\n%s", out)
	}
	if got := rec.request(0).Path; got != "/athlete/i12345/workouts" {
		t.Errorf("path=%q", got)
	}
}

func TestListWorkoutsEmpty(t *testing.T) {
	s, _ := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, []any{})
	})

	out := s.listWorkouts(context.Background(), ListWorkoutsArgs{})

	if out != "No workouts in library." {
		t.Errorf("out=%q", out)
	}
}

func TestListFolders(t *testing.T) {
	s, rec := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, []any{
			map[string]any{
				"id":   1,
				"name": "Base Plan",
				"workouts": []any{
					map[string]any{"id": "w1", "name": "Endurance Ride"},
					map[string]any{"id": "w2", "name": "Tempo Ride"},
				},
			},
		})
	})

	out := s.listFolders(context.Background(), ListWorkoutsArgs{})

	if !strings.HasPrefix(out, "Folders:\n\n") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "Folder: Base Plan") {
		t.Errorf("missing folder:\n%s", out)
	}
	if !strings.Contains(out, "Workouts: 2") {
		t.Errorf("missing count:\n%s", out)
	}
	if !strings.Contains(out, "- Endurance Ride") || !strings.Contains(out, "- Tempo Ride") {
		t.Errorf("missing child workouts:\n%s", out)
	}
	if got := rec.request(0).Path; got != "/athlete/i12345/folders" {
		t.Errorf("path=%q", got)
	}
}

func TestListFoldersEmpty(t *testing.T) {
	s, _ := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, []any{})
	})

	out := s.listFolders(context.Background(), ListWorkoutsArgs{})

	if out != "No folders found." {
		t.Errorf("out=%q", out)
	}
}

func TestCreateBulkWorkouts(t *testing.T) {
	s, rec := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, []any{map[string]any{"id": "w1"}, map[string]any{"id": "w2"}})
	})

	out := s.createBulkWorkouts(context.Background(), CreateBulkWorkoutsArgs{
		Workouts: []map[string]any{
			{"name": "VO2 5x3", "sport": "Ride"},
			{"name": "Recovery Spin", "sport": "Ride"},
		},
	})

	if out != "Successfully created 2 workout(s)." {
		t.Errorf("out=%q", out)
	}
	req := rec.request(0)
	if req.Method != http.MethodPost || req.Path != "/athlete/i12345/workouts/bulk" {
		t.Errorf("request=%s %s", req.Method, req.Path)
	}
}

func TestCreateBulkWorkoutsEmpty(t *testing.T) {
	s, rec := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		t.Error("no request expected")
	})

	out := s.createBulkWorkouts(context.Background(), CreateBulkWorkoutsArgs{})

	want := "No workouts provided. Pass a list of workout objects to create."
	if out != want {
		t.Errorf("out=%q want %q", out, want)
	}
	if rec.count() != 0 {
		t.Errorf("requests=%d want 0", rec.count())
	}
}
