// Package config holds runtime settings shared by the server and tools.
package config

import (
	"fmt"
	"regexp"
)

// Config is the resolved runtime configuration. APIKey and AthleteID are the
// defaults used when a tool call does not pass its own.
type Config struct {
	APIKey    string
	AthleteID string

	// BaseURL overrides the client's API root; empty keeps the default.
	BaseURL string

	Transport string
	Addr      string

	// ServerAPIKey guards the HTTP transport; empty disables auth.
	ServerAPIKey string

	LogLevel string
}

// Athlete ids are numeric, optionally prefixed with "i" ("123" or "i123").
var athleteIDPattern = regexp.MustCompile(`^i?[0-9]+$`)

// ValidAthleteID reports whether id looks like an Intervals.icu athlete id.
func ValidAthleteID(id string) bool {
	return athleteIDPattern.MatchString(id)
}

// ResolveAthleteID picks the explicit id when given, otherwise the configured
// default. The returned error message is tool-facing text.
func ResolveAthleteID(explicit, configured string) (string, string) {
	id := explicit
	if id == "" {
		id = configured
	}
	if id == "" {
		return "", "Error: No athlete ID provided. Please provide an athlete_id parameter or set the ATHLETE_ID environment variable."
	}
	if !ValidAthleteID(id) {
		return "", fmt.Sprintf("Error: Invalid athlete ID %q. Athlete IDs are numeric, optionally prefixed with 'i' (e.g. 'i12345').", id)
	}
	return id, ""
}
