// internal/ops/sales/squad-demand/handler.go
package squaddemand

import (
	"context"
	"encoding/json"
	"fmt"

	"stellar-ops-engine/internal/common/errors"
	"stellar-ops-engine/internal/common/logger"
	"stellar-ops-engine/internal/store"
)

const OpName = "squad-demand"

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

// Execute finds clients in the squad's region. A squad with no region is a
// normal outcome, not a failure: there is simply nothing to match against.
func (h *Handler) Execute(ctx context.Context, input *Input) *Output {
	region := input.Squad.Logistics.Region
	if region == "" {
		return &Output{
			SquadID:   input.Squad.SquadID,
			Message:   fmt.Sprintf("Squad %s has no region on record, regional matching skipped.", input.Squad.SquadID),
			Prospects: []ClientMatch{},
		}
	}

	query := store.NewQuery().ILike("region", region)

	clients, err := h.store.Clients(ctx, query)
	if err != nil {
		return &Output{Error: errors.AsStandard(err).Indicator()}
	}

	prospects := []ClientMatch{}
	for _, c := range clients {
		prospects = append(prospects, ClientMatch{
			Name:     c.Name,
			Region:   c.Region,
			Industry: c.Industry,
		})
	}

	h.logger.Info("squad demand matched", map[string]interface{}{
		"squadId":   input.Squad.SquadID,
		"region":    region,
		"prospects": len(prospects),
	})

	return &Output{
		SquadID:     input.Squad.SquadID,
		SquadRegion: region,
		MatchType:   "Regional Proximity",
		Prospects:   prospects,
	}
}
