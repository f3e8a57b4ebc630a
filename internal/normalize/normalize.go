// Package normalize is the field normalizer: it turns the store's
// heterogeneous currency/text/date fields into canonical values. Policy is
// lenient throughout; malformed input never aborts a computation.
package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// ParseCurrency converts a currency-like value (number, or string with
// symbols and thousands separators) to a float. Null, empty, and unparseable
// input all normalize to 0.0.
func ParseCurrency(value interface{}) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		return parseCurrencyString(v)
	}
	return 0
}

func parseCurrencyString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	// Keep digits and the first decimal point; drop symbols, separators,
	// and unit suffixes like "/hr".
	var b strings.Builder
	sawDot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !sawDot:
			sawDot = true
			b.WriteRune(r)
		}
	}

	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return f
}

// ContainsFold reports whether s contains substr, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// ContainsAnyFold reports whether s contains any of the markers, ignoring case.
func ContainsAnyFold(s string, markers []string) bool {
	lower := strings.ToLower(s)
	for _, m := range markers {
		if strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

// ParseTimestamp parses the store's ISO-8601 timestamps, with or without a
// zone suffix. The boolean is false when the value is absent or malformed.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	cleaned := strings.TrimSuffix(value, "Z")
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysUntil is the whole-day distance from now to t, truncated toward zero.
// Negative when t is in the past.
func DaysUntil(now, t time.Time) int {
	return int(t.Sub(now).Hours() / 24)
}

// DaysSince is the whole-day distance from t to now, truncated toward zero.
func DaysSince(now, t time.Time) int {
	return int(now.Sub(t).Hours() / 24)
}

// Round2 rounds to two decimal places for reported money/percent values.
func Round2(f float64) float64 {
	return roundTo(f, 100)
}

// Round1 rounds to one decimal place.
func Round1(f float64) float64 {
	return roundTo(f, 10)
}

func roundTo(f float64, scale float64) float64 {
	if f < 0 {
		return float64(int64(f*scale-0.5)) / scale
	}
	return float64(int64(f*scale+0.5)) / scale
}
