// Package enrich derives the business view of a candidate row. Enrichment is
// a pure function of the record plus an explicit policy; every call site that
// displays or filters candidates goes through Candidate so the derivation
// never diverges.
package enrich

import (
	"stellar-ops-engine/internal/models"
	"stellar-ops-engine/internal/normalize"
)

// Policy parameterizes enrichment. The markers come from configuration; the
// defaults mirror the firm's rules of thumb (visa holders travel, leading
// trades or pay above threshold means senior).
type Policy struct {
	MobilityMarkers    []string
	SeniorityMarkers   []string
	SeniorPayThreshold float64
}

// DefaultPolicy returns the standard marker set.
func DefaultPolicy() Policy {
	return Policy{
		MobilityMarkers:    []string{"work visa", "filipino", "mobile"},
		SeniorityMarkers:   []string{"lbp", "foreman", "manager"},
		SeniorPayThreshold: 38,
	}
}

// Candidate applies the policy to a raw record.
func Candidate(c models.CandidateRecord, p Policy) models.EnrichedCandidate {
	payRate := normalize.ParseCurrency(c.PayRate)

	residencyText := c.Residency + " " + c.ResidencyStatus + " " + c.Nationality
	isMobile := normalize.ContainsAnyFold(residencyText, p.MobilityMarkers)

	isSenior := normalize.ContainsAnyFold(c.Role, p.SeniorityMarkers) ||
		payRate > p.SeniorPayThreshold

	return models.EnrichedCandidate{
		ID:         c.ID,
		Name:       c.FullName(),
		Role:       c.Role,
		Status:     c.Status,
		Region:     c.RegionLabel(),
		PayRate:    payRate,
		ChargeRate: normalize.ParseCurrency(c.ChargeField()),
		IsMobile:   isMobile,
		IsSenior:   isSenior,
		SiteSafe:   c.HasSiteSafe(),
	}
}

// Candidates enriches a fetched batch, preserving store order.
func Candidates(records []models.CandidateRecord, p Policy) []models.EnrichedCandidate {
	out := make([]models.EnrichedCandidate, 0, len(records))
	for _, r := range records {
		out = append(out, Candidate(r, p))
	}
	return out
}
