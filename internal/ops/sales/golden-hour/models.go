// internal/ops/sales/golden-hour/models.go
package goldenhour

type Input struct {
	Notify bool `json:"notify,omitempty"`
}

type Output struct {
	Strategy    string       `json:"strategy,omitempty"`
	TierCount   int          `json:"tier_count"`
	TargetList  []CallTarget `json:"target_list"`
	DigestError string       `json:"digest_error,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// CallTarget is one top-tier client that has gone silent for too long.
type CallTarget struct {
	Name       string `json:"name"`
	Region     string `json:"region"`
	DaysSilent int    `json:"days_silent"`
}

func InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"notify": map[string]interface{}{
				"type":        "boolean",
				"description": "Push the call list as a digest to the configured channels",
			},
		},
		"additionalProperties": false,
	}
}
