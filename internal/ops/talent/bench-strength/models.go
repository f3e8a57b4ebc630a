// internal/ops/talent/bench-strength/models.go
package benchstrength

import "stellar-ops-engine/internal/models"

type Input struct{}

// Output is the snapshot of the available workforce.
type Output struct {
	TotalCount  int                        `json:"total_count"`
	MobileUnits int                        `json:"mobile_units"`
	Seniors     int                        `json:"seniors"`
	Roster      []models.EnrichedCandidate `json:"roster"`
	Error       string                     `json:"error,omitempty"`
}

func InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":                 "object",
		"properties":           map[string]interface{}{},
		"additionalProperties": false,
	}
}
