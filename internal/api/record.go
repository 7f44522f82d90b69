package api

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Record is one decoded JSON object from a list endpoint. The backend is not
// consistent about field naming (game_id vs id, user_id vs userId), so every
// accessor takes a fallback chain of keys and all of that variance is
// absorbed here. Downstream packages only ever read through the accessors.
type Record map[string]any

// Str returns the first non-blank string among keys, "" when none resolves.
// Blank and whitespace-only strings count as absent. Numbers are rendered to
// their string form so an id sent as 42 still resolves.
func (r Record) Str(keys ...string) string {
	for _, k := range keys {
		switch v := r[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// Float returns the first numeric value among keys, nil when none resolves.
// Strings that parse as numbers count; NaN does not.
func (r Record) Float(keys ...string) *float64 {
	for _, k := range keys {
		switch v := r[k].(type) {
		case float64:
			if !math.IsNaN(v) {
				f := v
				return &f
			}
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && !math.IsNaN(f) {
				return &f
			}
		}
	}
	return nil
}

// Bool returns the first boolean among keys, false when none resolves.
func (r Record) Bool(keys ...string) bool {
	for _, k := range keys {
		if v, ok := r[k].(bool); ok {
			return v
		}
	}
	return false
}

// Strings returns the string elements of the array at key. Non-string
// elements and blanks are skipped.
func (r Record) Strings(key string) []string {
	raw, ok := r[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, e := range raw {
		if s, ok := e.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// Child returns the nested object at key, if any.
func (r Record) Child(key string) (Record, bool) {
	m, ok := r[key].(map[string]any)
	if !ok {
		return nil, false
	}
	return Record(m), true
}

// Time parses the first RFC 3339 timestamp among keys; zero when none parses.
func (r Record) Time(keys ...string) time.Time {
	for _, k := range keys {
		if s, ok := r[k].(string); ok {
			if t, err := time.Parse(time.RFC3339, strings.TrimSpace(s)); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
