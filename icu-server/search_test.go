package main

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestSearchActivities(t *testing.T) {
	s, rec := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, []any{
			map[string]any{
				"id":         "123",
				"name":       "Hill Repeats",
				"type":       "Ride",
				"start_date": "2024-01-15T08:30:00",
				"distance":   25000.0,
				"tags":       []any{"climbing"},
			},
		})
	})

	out := s.searchActivities(context.Background(), SearchActivitiesArgs{
		Query: "hill",
		Limit: 5,
	})

	if !strings.HasPrefix(out, "Search results:\n\n") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "ID: 123 | Hill Repeats | 2024-01-15 08:30 | Ride | 25000 m | Tags: climbing") {
		t.Errorf("row wrong:\n%s", out)
	}

	req := rec.request(0)
	if req.Path != "/athlete/i12345/activities/search" {
		t.Errorf("path=%q", req.Path)
	}
	if req.RawQuery != "q=hill&limit=5" {
		t.Errorf("query=%q", req.RawQuery)
	}
}

func TestSearchActivitiesNoResults(t *testing.T) {
	s, _ := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, []any{})
	})

	out := s.searchActivities(context.Background(), SearchActivitiesArgs{Query: "nothing"})

	if out != "No activities found." {
		t.Errorf("out=%q", out)
	}
}

func TestSearchIntervals(t *testing.T) {
	duration := 300
	min := 0.9
	max := 1.1
	reps := 5

	s, rec := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, []any{
			map[string]any{
				"id":         "456",
				"name":       "VO2 Session",
				"type":       "Ride",
				"start_date": "2024-02-01T06:00:00",
			},
		})
	})

	out := s.searchIntervals(context.Background(), SearchIntervalsArgs{
		DurationSeconds: &duration,
		IntensityMin:    &min,
		IntensityMax:    &max,
		IntervalType:    "work",
		Reps:            &reps,
		Limit:           10,
	})

	if !strings.HasPrefix(out, "Interval search results:\n\n") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "VO2 Session") {
		t.Errorf("missing result:\n%s", out)
	}

	req := rec.request(0)
	if req.Path != "/athlete/i12345/activities/interval-search" {
		t.Errorf("path=%q", req.Path)
	}
	if req.RawQuery != "duration=300&intensityMin=0.9&intensityMax=1.1&type=work&reps=5&limit=10" {
		t.Errorf("query=%q", req.RawQuery)
	}
}

func TestSearchIntervalsNoResults(t *testing.T) {
	s, _ := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, []any{})
	})

	out := s.searchIntervals(context.Background(), SearchIntervalsArgs{})

	if out != "No activities found with matching intervals." {
		t.Errorf("out=%q", out)
	}
}
