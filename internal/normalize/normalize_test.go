package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected float64
	}{
		{name: "nil input", input: nil, expected: 0},
		{name: "clean float passes through", input: 1200.50, expected: 1200.50},
		{name: "integer", input: 45, expected: 45},
		{name: "dollar sign and separators", input: "$1,200.50", expected: 1200.50},
		{name: "plain numeric string", input: "1200.50", expected: 1200.50},
		{name: "rate with unit suffix", input: "$42.50/hr", expected: 42.50},
		{name: "whitespace padded", input: "  $30.00  ", expected: 30},
		{name: "empty string", input: "", expected: 0},
		{name: "pure garbage", input: "call to discuss", expected: 0},
		{name: "unsupported type", input: []string{"x"}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCurrency(tt.input))
		})
	}
}

func TestParseCurrency_SymbolInvariance(t *testing.T) {
	// "$1,200.50" and 1200.50 must parse equal, whatever symbols are present.
	variants := []interface{}{"$1,200.50", "1,200.50", "1200.50", 1200.50, "NZD 1200.50"}
	for _, v := range variants {
		assert.Equal(t, 1200.50, ParseCurrency(v), "variant %v", v)
	}
}

func TestParseCurrency_Idempotent(t *testing.T) {
	f := ParseCurrency("$88.25")
	assert.Equal(t, f, ParseCurrency(f))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Work Visa Holder", "work visa"))
	assert.True(t, ContainsFold("FILIPINO", "filipino"))
	assert.False(t, ContainsFold("Citizen", "work visa"))

	assert.True(t, ContainsAnyFold("Site Foreman", []string{"lbp", "foreman"}))
	assert.False(t, ContainsAnyFold("Labourer", []string{"lbp", "foreman"}))
}

func TestParseTimestamp(t *testing.T) {
	ts, ok := ParseTimestamp("2026-11-01T00:00:00Z")
	assert.True(t, ok)
	assert.Equal(t, 2026, ts.Year())

	ts, ok = ParseTimestamp("2026-11-01T00:00:00")
	assert.True(t, ok)
	assert.Equal(t, time.November, ts.Month())

	_, ok = ParseTimestamp("")
	assert.False(t, ok)

	_, ok = ParseTimestamp("next tuesday")
	assert.False(t, ok)
}

func TestDayMath(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 45, DaysUntil(now, now.AddDate(0, 0, 45)))
	assert.Equal(t, -10, DaysUntil(now, now.AddDate(0, 0, -10)))
	assert.Equal(t, 30, DaysSince(now, now.AddDate(0, 0, -30)))
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 13.33, Round2(13.3333333))
	assert.Equal(t, 14.9, Round1(14.94))
	assert.Equal(t, -2.5, Round1(-2.45))
}
