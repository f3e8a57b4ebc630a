// internal/ops/finance/bench-liability/handler.go
package benchliability

import (
	"context"
	"encoding/json"

	"stellar-ops-engine/internal/common/errors"
	"stellar-ops-engine/internal/common/logger"
	"stellar-ops-engine/internal/normalize"
	"stellar-ops-engine/internal/store"
)

const OpName = "bench-liability"

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

// Execute totals the weekly cash burn of available candidates carrying
// guaranteed hours. Bench burn is raw pay with no burden multiplier; the
// burden applies to placed payroll only.
func (h *Handler) Execute(ctx context.Context, _ *Input) *Output {
	query := store.NewQuery().
		Eq("status", "available").
		Gt("guaranteed_hours", 0)

	liabilities, err := h.store.Candidates(ctx, query)
	if err != nil {
		return &Output{Error: errors.AsStandard(err).Indicator()}
	}

	var totalBurn float64
	burnList := []BenchEntry{}

	for _, c := range liabilities {
		weeklyBurn := c.GuaranteedHours * normalize.ParseCurrency(c.PayRate)
		totalBurn += weeklyBurn
		burnList = append(burnList, BenchEntry{
			Name:            c.FullName(),
			WeeklyBurn:      weeklyBurn,
			GuaranteedHours: c.GuaranteedHours,
		})
	}

	status := "Burning Cash"
	if totalBurn == 0 {
		status = "Clean"
	}

	h.logger.Info("bench liability computed", map[string]interface{}{
		"benchSize": len(burnList),
		"totalBurn": totalBurn,
	})

	return &Output{
		Status:          status,
		TotalWeeklyBurn: totalBurn,
		LiabilityList:   burnList,
	}
}
