// internal/ops/sales/search-clients/models.go
package searchclients

import "stellar-ops-engine/internal/models"

type Input struct {
	Region   string `json:"region,omitempty"`
	Industry string `json:"industry,omitempty"`
}

type Output struct {
	Clients []models.ClientRecord `json:"clients"`
	Error   string                `json:"error,omitempty"`
}

func InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"region": map[string]interface{}{
				"type":        "string",
				"description": "Region substring filter",
			},
			"industry": map[string]interface{}{
				"type":        "string",
				"description": "Industry substring filter",
			},
		},
		"additionalProperties": false,
	}
}
