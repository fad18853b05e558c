package main

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestGetWellnessDataMapResponse(t *testing.T) {
	s, rec := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, map[string]any{
			"2024-01-02": map[string]any{"ctl": 60.5, "sleepSecs": 27000},
			"2024-01-01": map[string]any{"ctl": 59.0, "sleepSecs": 28800},
		})
	})

	out := s.getWellnessData(context.Background(), GetWellnessArgs{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-02",
	})

	if !strings.HasPrefix(out, "Wellness Data:\n\n") {
		t.Fatalf("missing header:\n%s", out)
	}
	first := strings.Index(out, "Date: 2024-01-01")
	second := strings.Index(out, "Date: 2024-01-02")
	if first < 0 || second < 0 {
		t.Fatalf("missing dates:\n%s", out)
	}
	if first > second {
		t.Errorf("entries out of order:\n%s", out)
	}
	if !strings.Contains(out, "Sleep: 8.00 hours") {
		t.Errorf("sleep hours not derived from sleepSecs:\n%s", out)
	}
	if got := rec.request(0).RawQuery; got != "oldest=2024-01-01&newest=2024-01-02" {
		t.Errorf("query=%q", got)
	}
}

func TestGetWellnessDataMalformedEntry(t *testing.T) {
	s, _ := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, map[string]any{
			"2024-01-01": map[string]any{"ctl": 59.0},
			"2024-01-02": "bogus",
		})
	})

	out := s.getWellnessData(context.Background(), GetWellnessArgs{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-02",
	})

	if !strings.Contains(out, "[Wellness data for 2024-01-02: failed to format]") {
		t.Errorf("missing placeholder:\n%s", out)
	}
	if !strings.Contains(out, "Date: 2024-01-01") {
		t.Errorf("valid entry should still render:\n%s", out)
	}
}

func TestGetWellnessDataEmpty(t *testing.T) {
	s, _ := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, map[string]any{})
	})

	out := s.getWellnessData(context.Background(), GetWellnessArgs{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-02",
	})

	want := "No wellness data found for athlete i12345 in the specified date range."
	if out != want {
		t.Errorf("out=%q want %q", out, want)
	}
}

func TestGetWellnessDataListResponse(t *testing.T) {
	s, _ := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, []any{
			map[string]any{"id": "2024-02-01", "restingHR": 47, "hrv": 92.5},
		})
	})

	out := s.getWellnessData(context.Background(), GetWellnessArgs{
		StartDate: "2024-02-01",
		EndDate:   "2024-02-01",
	})

	if !strings.Contains(out, "Date: 2024-02-01") {
		t.Errorf("missing entry:\n%s", out)
	}
	if !strings.Contains(out, "Resting HR: 47 bpm") {
		t.Errorf("missing resting HR:\n%s", out)
	}
}
