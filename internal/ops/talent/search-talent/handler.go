// internal/ops/talent/search-talent/handler.go
package searchtalent

import (
	"context"
	"encoding/json"

	"stellar-ops-engine/internal/common/errors"
	"stellar-ops-engine/internal/common/logger"
	"stellar-ops-engine/internal/enrich"
	"stellar-ops-engine/internal/store"
)

const OpName = "search-talent"

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

// Execute finds candidates whose role matches the query as a
// case-insensitive substring, enriched for display.
func (h *Handler) Execute(ctx context.Context, input *Input) *Output {
	status := input.Status
	if status == "" {
		status = h.config.DefaultStatus
	}

	query := store.NewQuery().
		Eq("status", status).
		ILike("role", input.Query).
		Limit(h.config.Limit)

	records, err := h.store.Candidates(ctx, query)
	if err != nil {
		return &Output{Results: nil, Error: errors.AsStandard(err).Indicator()}
	}

	results := enrich.Candidates(records, h.config.Enrichment)

	h.logger.Info("talent search completed", map[string]interface{}{
		"query":   input.Query,
		"status":  status,
		"matches": len(results),
	})

	return &Output{Results: results}
}
