// internal/ops/sales/squad-demand/models.go
package squaddemand

import "stellar-ops-engine/internal/models"

type Input struct {
	Squad models.Squad `json:"squad"`
}

// Output keys are part of the Dialogue Router contract; the matched clients
// ride under potential_clients with the squad's region alongside.
type Output struct {
	SquadID     string        `json:"squad_id,omitempty"`
	SquadRegion string        `json:"squad_region,omitempty"`
	MatchType   string        `json:"match_type,omitempty"`
	Message     string        `json:"message,omitempty"`
	Prospects   []ClientMatch `json:"potential_clients"`
	Error       string        `json:"error,omitempty"`
}

// ClientMatch is one client operating in the squad's region.
type ClientMatch struct {
	Name     string `json:"name"`
	Region   string `json:"region"`
	Industry string `json:"industry"`
}

func InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"squad": map[string]interface{}{
				"type":        "object",
				"description": "A priced squad as returned by build-squads",
			},
		},
		"required":             []string{"squad"},
		"additionalProperties": false,
	}
}
