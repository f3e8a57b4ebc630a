// internal/ops/compliance/visa-risk/models.go
package visarisk

type Input struct{}

type Output struct {
	Status   string      `json:"status,omitempty"`
	Scanned  int         `json:"scanned"`
	Unparsed int         `json:"unparsed"`
	AtRisk   []VisaAlert `json:"at_risk"`
	Error    string      `json:"error,omitempty"`
}

// VisaAlert is one candidate whose work visa expires inside the risk horizon.
// DaysLeft is negative when the visa has already lapsed.
type VisaAlert struct {
	Name     string `json:"name"`
	Expiry   string `json:"expiry"`
	DaysLeft int    `json:"days_left"`
}

func InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":                 "object",
		"properties":           map[string]interface{}{},
		"additionalProperties": false,
	}
}
