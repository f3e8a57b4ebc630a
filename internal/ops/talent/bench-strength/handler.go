// internal/ops/talent/bench-strength/handler.go
package benchstrength

import (
	"context"
	"encoding/json"

	"stellar-ops-engine/internal/common/errors"
	"stellar-ops-engine/internal/common/logger"
	"stellar-ops-engine/internal/enrich"
	"stellar-ops-engine/internal/store"
)

const OpName = "bench-strength"

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

// Execute snapshots the available workforce with mobility and seniority
// counts for the bench-zero push.
func (h *Handler) Execute(ctx context.Context, _ *Input) *Output {
	records, err := h.store.Candidates(ctx, store.NewQuery().Eq("status", "available"))
	if err != nil {
		return &Output{Error: errors.AsStandard(err).Indicator()}
	}

	roster := enrich.Candidates(records, h.config.Enrichment)

	mobile, seniors := 0, 0
	for _, c := range roster {
		if c.IsMobile {
			mobile++
		}
		if c.IsSenior {
			seniors++
		}
	}

	h.logger.Info("bench snapshot taken", map[string]interface{}{
		"total":   len(roster),
		"mobile":  mobile,
		"seniors": seniors,
	})

	return &Output{
		TotalCount:  len(roster),
		MobileUnits: mobile,
		Seniors:     seniors,
		Roster:      roster,
	}
}
