// Package format renders normalized Intervals.icu records as plain text for
// MCP tool output. Layouts are stable; formatting the same record twice
// yields identical text.
package format

import (
	"strconv"
	"strings"
	"time"
)

// num renders a float without a trailing ".0" so whole numbers print clean
// (1000 -> "1000", 3.5 -> "3.5").
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func str(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func intval(p *int, def string) string {
	if p == nil {
		return def
	}
	return strconv.Itoa(*p)
}

func floatval(p *float64, def string) string {
	if p == nil {
		return def
	}
	return num(*p)
}

func boolval(p *bool, def string) string {
	if p == nil {
		return def
	}
	return strconv.FormatBool(*p)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
}

// reformatTimestamp rewrites a full ISO timestamp using layout; date-only
// strings and unparseable values pass through untouched.
func reformatTimestamp(s, layout string) string {
	if len(s) <= 10 {
		return s
	}
	for _, l := range timestampLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t.Format(layout)
		}
	}
	return s
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
