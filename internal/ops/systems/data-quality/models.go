// internal/ops/systems/data-quality/models.go
package dataquality

type Input struct{}

type Output struct {
	Status      string        `json:"status,omitempty"`
	IssuesCount int           `json:"issues_count"`
	Details     []RecordIssue `json:"details"`
	Error       string        `json:"error,omitempty"`
}

// RecordIssue names one candidate with missing contact fields.
type RecordIssue struct {
	Name    string   `json:"name"`
	Missing []string `json:"missing"`
}

func InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":                 "object",
		"properties":           map[string]interface{}{},
		"additionalProperties": false,
	}
}
