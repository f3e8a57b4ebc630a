// internal/ops/talent/search-talent/models.go
package searchtalent

import "stellar-ops-engine/internal/models"

type Input struct {
	Query  string `json:"query"`
	Status string `json:"status,omitempty"`
}

type Output struct {
	Results []models.EnrichedCandidate `json:"results"`
	Error   string                     `json:"error,omitempty"`
}

func InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Role or trade to match as a substring",
			},
			"status": map[string]interface{}{
				"type":        "string",
				"description": "Candidate status filter, defaults to available",
			},
		},
		"required":             []interface{}{"query"},
		"additionalProperties": false,
	}
}
