package models

// EnrichedCandidate is the derived, ephemeral view of a candidate row after
// business-rule enrichment. It is owned by the invocation that built it and
// is never written back to the store.
type EnrichedCandidate struct {
	ID         interface{} `json:"id"`
	Name       string      `json:"name"`
	Role       string      `json:"role"`
	Status     string      `json:"status"`
	Region     string      `json:"region"`
	PayRate    float64     `json:"pay_rate"`
	ChargeRate float64     `json:"charge_rate"`
	IsMobile   bool        `json:"is_mobile"`
	IsSenior   bool        `json:"is_senior"`
	SiteSafe   bool        `json:"site_safe"`
}
