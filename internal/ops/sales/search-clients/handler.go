// internal/ops/sales/search-clients/handler.go
package searchclients

import (
	"context"
	"encoding/json"

	"stellar-ops-engine/internal/common/errors"
	"stellar-ops-engine/internal/common/logger"
	"stellar-ops-engine/internal/models"
	"stellar-ops-engine/internal/store"
)

const OpName = "search-clients"

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

// Execute finds clients by region and/or industry substring.
func (h *Handler) Execute(ctx context.Context, input *Input) *Output {
	query := store.NewQuery()
	if input.Region != "" {
		query = query.ILike("region", input.Region)
	}
	if input.Industry != "" {
		query = query.ILike("industry", input.Industry)
	}
	query = query.Limit(h.config.Limit)

	clients, err := h.store.Clients(ctx, query)
	if err != nil {
		return &Output{Error: errors.AsStandard(err).Indicator()}
	}

	h.logger.Info("client search completed", map[string]interface{}{
		"region":   input.Region,
		"industry": input.Industry,
		"matches":  len(clients),
	})

	if clients == nil {
		clients = []models.ClientRecord{}
	}
	return &Output{Clients: clients}
}
