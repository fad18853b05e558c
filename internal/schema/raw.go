// Package schema holds typed records for Intervals.icu API payloads and the
// normalization helpers that build them from loosely-typed JSON.
//
// The upstream API is inconsistent about field names (snake_case vs legacy
// camelCase), so every record constructor resolves a prioritized list of
// source keys per field and takes the first non-null match. Optional scalars
// are pointers so that 0, "" and false survive normalization distinct from
// absent values. Unknown enum values are preserved as plain strings.
package schema

import (
	"strconv"

	"github.com/rs/zerolog/log"
)

// firstRaw returns the first non-nil value among keys, scanned in order.
func firstRaw(data map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := data[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// firstString resolves keys to a string pointer. Numbers are stringified so
// that ids like 123 and "i123" normalize to the same field type.
func firstString(data map[string]any, keys ...string) *string {
	for _, k := range keys {
		v, ok := data[k]
		if !ok || v == nil {
			continue
		}
		if s, ok := asString(v); ok {
			return &s
		}
	}
	return nil
}

func asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case bool:
		return strconv.FormatBool(t), true
	}
	return "", false
}

// firstInt resolves keys to an int pointer. JSON numbers arrive as float64
// and are truncated; strings and other types are ignored.
func firstInt(data map[string]any, keys ...string) *int {
	for _, k := range keys {
		v, ok := data[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case float64:
			n := int(t)
			return &n
		case int:
			n := t
			return &n
		}
	}
	return nil
}

func firstFloat(data map[string]any, keys ...string) *float64 {
	for _, k := range keys {
		v, ok := data[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case float64:
			f := t
			return &f
		case int:
			f := float64(t)
			return &f
		}
	}
	return nil
}

func firstBool(data map[string]any, keys ...string) *bool {
	for _, k := range keys {
		if v, ok := data[k]; ok {
			if b, ok := v.(bool); ok {
				return &b
			}
		}
	}
	return nil
}

// firstList returns the first list value found for the given keys, ignoring
// non-list values.
func firstList(data map[string]any, keys ...string) []any {
	for _, k := range keys {
		if v, ok := data[k].([]any); ok {
			return v
		}
	}
	return nil
}

func firstObject(data map[string]any, keys ...string) map[string]any {
	for _, k := range keys {
		if v, ok := data[k].(map[string]any); ok {
			return v
		}
	}
	return nil
}

// stringList normalizes a raw tags-like value into a list of strings.
// A scalar becomes a one-element list; nil entries are dropped.
func stringList(raw any) []string {
	switch t := raw.(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if item == nil {
				continue
			}
			if s, ok := asString(item); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		if s, ok := asString(raw); ok {
			return []string{s}
		}
		return nil
	}
}

func intList(raw []any) []int {
	out := make([]int, 0, len(raw))
	for _, item := range raw {
		if f, ok := item.(float64); ok {
			out = append(out, int(f))
		}
	}
	return out
}

func floatList(raw []any) []float64 {
	out := make([]float64, 0, len(raw))
	for _, item := range raw {
		if f, ok := item.(float64); ok {
			out = append(out, f)
		}
	}
	return out
}

// ObjectItems filters a heterogeneous list down to its object items. Skipped
// non-object entries are logged with the surrounding context so a single
// malformed element never aborts the rest of the list.
func ObjectItems(items []any, context string) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		} else if item != nil {
			log.Warn().Str("context", context).Msgf("skipped non-object item %T", item)
		}
	}
	return out
}

// safeEnum parses a raw value against a closed vocabulary. Recognized values
// come back canonical; unrecognized non-nil values pass through as plain
// strings so new upstream values never break parsing.
func safeEnum(vocab []string, raw any) *string {
	if raw == nil {
		return nil
	}
	s, ok := asString(raw)
	if !ok {
		return nil
	}
	for _, v := range vocab {
		if v == s {
			return &v
		}
	}
	return &s
}
