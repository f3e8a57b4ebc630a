// internal/ops/finance/financial-health/handler.go
package financialhealth

import (
	"context"
	"encoding/json"

	"stellar-ops-engine/internal/common/errors"
	"stellar-ops-engine/internal/common/logger"
	"stellar-ops-engine/internal/normalize"
	"stellar-ops-engine/internal/store"
)

const OpName = "financial-health"

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

// Run decodes dispatch arguments and executes.
func (h *Handler) Run(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var input Input
	if err := json.Unmarshal(args, &input); err != nil {
		return nil, errors.NewInvalidArgumentError(err.Error())
	}
	return h.Execute(ctx, &input), nil
}

// Execute computes the margin report over current active placements.
func (h *Handler) Execute(ctx context.Context, _ *Input) *Output {
	if h.config.Placement.CaseSensitive {
		// Legacy profile: exact-case single-status matching, kept for parity
		// with the older books. Flag the divergence instead of hiding it.
		h.logger.Warn("legacy placement profile active", map[string]interface{}{
			"statuses": h.config.Placement.Statuses,
		})
	}

	query := store.NewQuery().In("status", h.config.Placement.Statuses...)
	placements, err := h.store.Candidates(ctx, query)
	if err != nil {
		return &Output{Error: errors.AsStandard(err).Indicator()}
	}

	var (
		totalRevenue float64
		totalPayroll float64
	)
	busyFools := []BusyFoolDeal{}

	for _, p := range placements {
		payRate := normalize.ParseCurrency(p.PayRate)
		chargeRate := normalize.ParseCurrency(p.ChargeField())

		burdenedCost := payRate * BurdenMultiplier
		weeklyRevenue := chargeRate * HoursPerWeek
		weeklyCost := burdenedCost * HoursPerWeek
		netGP := weeklyRevenue - weeklyCost

		totalRevenue += weeklyRevenue
		totalPayroll += weeklyCost

		marginPct := 0.0
		if weeklyRevenue > 0 {
			marginPct = netGP / weeklyRevenue * 100
		}

		if netGP < busyFoolNetGPFloor || marginPct < busyFoolMarginFloor {
			client := p.CurrentProject
			if client == "" {
				client = "Unknown"
			}
			busyFools = append(busyFools, BusyFoolDeal{
				Name:      p.FullName(),
				NetGP:     normalize.Round2(netGP),
				MarginPct: normalize.Round1(marginPct),
				Client:    client,
			})
		}
	}

	grossMargin := totalRevenue - totalPayroll
	totalMarginPct := 0.0
	if totalRevenue > 0 {
		totalMarginPct = grossMargin / totalRevenue * 100
	}

	status := "Critical"
	if totalMarginPct > healthyMarginFloor {
		status = "Healthy"
	}

	h.logger.Info("financial health computed", map[string]interface{}{
		"headcount":     len(placements),
		"marginPercent": normalize.Round2(totalMarginPct),
		"busyFools":     len(busyFools),
	})

	return &Output{
		Status:            status,
		WeeklyRevenue:     totalRevenue,
		WeeklyGrossProfit: grossMargin,
		MarginPercent:     normalize.Round2(totalMarginPct),
		ActiveHeadcount:   len(placements),
		BusyFoolDeals:     busyFools,
	}
}
