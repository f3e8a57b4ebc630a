// internal/ops/finance/financial-health/models.go
package financialhealth

// Input carries no arguments; the operation always scans current placements.
type Input struct{}

// Output is the margin report returned to the Dialogue Router.
type Output struct {
	Status            string         `json:"status,omitempty"`
	WeeklyRevenue     float64        `json:"weekly_revenue"`
	WeeklyGrossProfit float64        `json:"weekly_gross_profit"`
	MarginPercent     float64        `json:"margin_percent"`
	ActiveHeadcount   int            `json:"active_headcount"`
	BusyFoolDeals     []BusyFoolDeal `json:"busy_fool_deals"`
	Error             string         `json:"error,omitempty"`
}

// BusyFoolDeal is an active placement below the profitability floor.
type BusyFoolDeal struct {
	Name      string  `json:"name"`
	NetGP     float64 `json:"net_gp"`
	MarginPct float64 `json:"margin_pct"`
	Client    string  `json:"client"`
}

func InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":                 "object",
		"properties":           map[string]interface{}{},
		"additionalProperties": false,
	}
}
