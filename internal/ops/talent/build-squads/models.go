// internal/ops/talent/build-squads/models.go
package buildsquads

import "stellar-ops-engine/internal/models"

type Input struct {
	Region string `json:"region"`
}

type Output struct {
	Squads []models.Squad `json:"squads"`
	Error  string         `json:"error,omitempty"`
}

func InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"region": map[string]interface{}{
				"type":        "string",
				"description": "Region to assemble squads in (substring match on suburb)",
			},
		},
		"required":             []interface{}{"region"},
		"additionalProperties": false,
	}
}
