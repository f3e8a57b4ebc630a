package models

// Squad is a commercially priced bundle of one senior and two junior
// candidates. Squads are transient proposals: built, priced, matched against
// demand, and discarded.
type Squad struct {
	SquadID     string              `json:"squad_id"`
	Composition string              `json:"composition"`
	Leader      EnrichedCandidate   `json:"leader"`
	Crew        []EnrichedCandidate `json:"crew"`
	Financials  SquadFinancials     `json:"financials"`
	Logistics   SquadLogistics      `json:"logistics"`
}

// SquadFinancials prices the bundle at a 40-hour week.
type SquadFinancials struct {
	HourlyChargeTotal float64 `json:"hourly_charge_total"`
	EstWeeklyRevenue  float64 `json:"est_weekly_revenue"`
}

// SquadLogistics carries the transport facts demand matching needs. A squad
// with HasVehicle false is a transport risk for the consumer to flag.
type SquadLogistics struct {
	HasVehicle bool   `json:"has_vehicle"`
	Region     string `json:"region"`
}
