// internal/ops/talent/build-squads/handler.go
package buildsquads

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"stellar-ops-engine/internal/common/errors"
	"stellar-ops-engine/internal/common/logger"
	"stellar-ops-engine/internal/enrich"
	"stellar-ops-engine/internal/models"
	"stellar-ops-engine/internal/store"
)

const OpName = "build-squads"

type Handler struct {
	config *Config
	store  store.Store
	logger logger.Logger
}

func NewHandler(config *Config, st store.Store, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		store:  st,
		logger: log.WithFields(map[string]interface{}{"operation": OpName}),
	}
}

func (h *Handler) Run(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var input Input
	if err := json.Unmarshal(args, &input); err != nil {
		return nil, errors.NewInvalidArgumentError(err.Error())
	}
	return h.Execute(ctx, &input), nil
}

// Execute greedily bundles available candidates in the region into priced
// 1 senior : 2 junior squads. Leftovers are dropped, not re-queued; an empty
// pool yields an empty list rather than an error.
func (h *Handler) Execute(ctx context.Context, input *Input) *Output {
	query := store.NewQuery().
		Eq("status", "available").
		ILike("suburb", input.Region)

	records, err := h.store.Candidates(ctx, query)
	if err != nil {
		return &Output{Squads: []models.Squad{}, Error: errors.AsStandard(err).Indicator()}
	}

	candidates := enrich.Candidates(records, h.config.Enrichment)

	var seniors, juniors []models.EnrichedCandidate
	for _, c := range candidates {
		if c.IsSenior {
			seniors = append(seniors, c)
		} else {
			juniors = append(juniors, c)
		}
	}

	squads := []models.Squad{}
	for len(seniors) >= 1 && len(juniors) >= juniorsPerSquad {
		leader := seniors[0]
		seniors = seniors[1:]
		crew := juniors[:juniorsPerSquad]
		juniors = juniors[juniorsPerSquad:]

		squads = append(squads, assemble(input.Region, len(squads)+1, leader, crew))
	}

	h.logger.Info("squads assembled", map[string]interface{}{
		"region":     input.Region,
		"squads":     len(squads),
		"unassigned": len(seniors) + len(juniors),
	})

	return &Output{Squads: squads}
}

func assemble(region string, seq int, leader models.EnrichedCandidate, crew []models.EnrichedCandidate) models.Squad {
	totalCharge := leader.ChargeRate
	hasVehicle := leader.IsMobile
	for _, c := range crew {
		totalCharge += c.ChargeRate
		hasVehicle = hasVehicle || c.IsMobile
	}

	return models.Squad{
		SquadID:     fmt.Sprintf("SQ-%s-%d", regionCode(region), seq),
		Composition: "1 Senior + 2 Juniors",
		Leader:      leader,
		Crew:        append([]models.EnrichedCandidate{}, crew...),
		Financials: models.SquadFinancials{
			HourlyChargeTotal: totalCharge,
			EstWeeklyRevenue:  totalCharge * hoursPerWeek,
		},
		Logistics: models.SquadLogistics{
			HasVehicle: hasVehicle,
			Region:     region,
		},
	}
}

// regionCode is the first three characters of the region, upper-cased;
// shorter regions use what they have. Truncation counts runes so macron
// place names keep a valid prefix.
func regionCode(region string) string {
	code := []rune(strings.ToUpper(region))
	if len(code) > 3 {
		code = code[:3]
	}
	return string(code)
}
