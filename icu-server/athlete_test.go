package main

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestGetAthlete(t *testing.T) {
	s, rec := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, map[string]any{
			"id":             "i12345",
			"name":           "Jo Rider",
			"weight":         68.5,
			"icu_resting_hr": 46,
			"city":           "Girona",
			"timezone":       "Europe/Madrid",
		})
	})

	out := s.getAthlete(context.Background(), GetAthleteArgs{})

	if !strings.HasPrefix(out, "Athlete: Jo Rider") {
		t.Fatalf("out=%q", out)
	}
	if !strings.Contains(out, "Weight: 68.5 kg") {
		t.Errorf("missing weight:\n%s", out)
	}
	if !strings.Contains(out, "Resting HR: 46 bpm") {
		t.Errorf("missing resting HR:\n%s", out)
	}
	if !strings.Contains(out, "Location: Girona") {
		t.Errorf("missing location:\n%s", out)
	}
	if got := rec.request(0).Path; got != "/athlete/i12345" {
		t.Errorf("path=%q", got)
	}
}

func TestGetSportSettingsAll(t *testing.T) {
	s, rec := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, []any{
			map[string]any{"types": []any{"Ride"}, "type": "Ride", "ftp": 285, "lthr": 168},
			map[string]any{"type": "Run", "ftp": 310, "max_hr": 188},
		})
	})

	out := s.getSportSettings(context.Background(), GetSportSettingsArgs{})

	if !strings.Contains(out, "Sport: Ride") || !strings.Contains(out, "Sport: Run") {
		t.Errorf("missing sports:\n%s", out)
	}
	if !strings.Contains(out, "\n\n---\n\n") {
		t.Errorf("missing separator:\n%s", out)
	}
	if !strings.Contains(out, "FTP: 285") {
		t.Errorf("missing FTP:\n%s", out)
	}
	if got := rec.request(0).Path; got != "/athlete/i12345/sport-settings" {
		t.Errorf("path=%q", got)
	}
}

func TestGetSportSettingsSingleSport(t *testing.T) {
	s, rec := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, map[string]any{
			"type":        "Ride",
			"ftp":         285,
			"lthr":        168,
			"max_hr":      192,
			"power_zones": []any{55.0, 75.0, 90.0, 105.0, 120.0, 150.0},
			"hr_zones":    []any{120.0, 145.0, 162.0, 178.0},
		})
	})

	out := s.getSportSettings(context.Background(), GetSportSettingsArgs{SportType: "Ride"})

	if !strings.HasPrefix(out, "Sport: Ride") {
		t.Fatalf("out=%q", out)
	}
	if !strings.Contains(out, "Max HR: 192") {
		t.Errorf("missing max HR:\n%s", out)
	}
	if !strings.Contains(out, "Zones:") {
		t.Errorf("missing zones:\n%s", out)
	}
	if !strings.Contains(out, "HR Zones: [120 145 162 178]") {
		t.Errorf("missing hr zones:\n%s", out)
	}
	if got := rec.request(0).Path; got != "/athlete/i12345/sport-settings/Ride" {
		t.Errorf("path=%q", got)
	}
}

func TestGetSportSettingsEmpty(t *testing.T) {
	s, _ := newTestServer(t, func(w http.ResponseWriter, req recordedRequest) {
		respondJSON(t, w, []any{})
	})

	out := s.getSportSettings(context.Background(), GetSportSettingsArgs{})

	if out != "No sport settings found." {
		t.Errorf("out=%q", out)
	}
}
