// internal/ops/compliance/trade-check/models.go
package tradecheck

type Input struct {
	Role        string `json:"role"`
	ProjectType string `json:"project_type"`
}

type Output struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

func InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"role": map[string]interface{}{
				"type":        "string",
				"description": "Candidate trade role, exact case",
			},
			"project_type": map[string]interface{}{
				"type":        "string",
				"description": "Project site type (civil, structure, interior)",
			},
		},
		"required":             []string{"role", "project_type"},
		"additionalProperties": false,
	}
}
