// internal/ops/finance/bench-liability/models.go
package benchliability

type Input struct{}

type Output struct {
	Status          string       `json:"status,omitempty"`
	TotalWeeklyBurn float64      `json:"total_weekly_burn"`
	LiabilityList   []BenchEntry `json:"liability_list"`
	Error           string       `json:"error,omitempty"`
}

// BenchEntry is one guaranteed-hours candidate sitting unassigned.
type BenchEntry struct {
	Name            string  `json:"name"`
	WeeklyBurn      float64 `json:"weekly_burn"`
	GuaranteedHours float64 `json:"guaranteed_hours"`
}

func InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":                 "object",
		"properties":           map[string]interface{}{},
		"additionalProperties": false,
	}
}
