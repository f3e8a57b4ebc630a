// internal/ops/sales/golden-hour/handler.go
package goldenhour

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"stellar-ops-engine/internal/common/errors"
	"stellar-ops-engine/internal/common/logger"
	"stellar-ops-engine/internal/normalize"
	"stellar-ops-engine/internal/notify"
	"stellar-ops-engine/internal/store"
)

const OpName = "golden-hour"

type Handler struct {
	config   *Config
	store    store.Store
	notifier notify.Notifier
	logger   logger.Logger
	nowFn    func() time.Time
}

// NewHandler builds the priority-call scanner. notifier may be nil when no
// digest channel is configured.
func NewHandler(config *Config, st store.Store, notifier notify.Notifier, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		store:    st,
		notifier: notifier,
		logger:   log.WithFields(map[string]interface{}{"operation": OpName}),
		nowFn:    time.Now,
	}
}

func (h *Handler) Run(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var input Input
	if err := json.Unmarshal(args, &input); err != nil {
		return nil, errors.NewInvalidArgumentError(err.Error())
	}
	return h.Execute(ctx, &input), nil
}

// Execute lists top-tier clients whose last contact is older than the silence
// window. A client never contacted counts as maximally stale so it always
// surfaces at the top of the list.
func (h *Handler) Execute(ctx context.Context, input *Input) *Output {
	query := store.NewQuery().Eq("tier", h.config.Tier)

	clients, err := h.store.Clients(ctx, query)
	if err != nil {
		return &Output{Error: errors.AsStandard(err).Indicator()}
	}

	now := h.nowFn()
	targets := []CallTarget{}

	for _, c := range clients {
		daysSilent := h.config.DaysWhenNoContact
		if ts, ok := normalize.ParseTimestamp(c.LastContact); ok {
			daysSilent = normalize.DaysSince(now, ts)
		}
		if daysSilent <= h.config.SilenceDays {
			continue
		}
		targets = append(targets, CallTarget{
			Name:       c.Name,
			Region:     c.Region,
			DaysSilent: daysSilent,
		})
	}

	h.logger.Info("golden hour scan completed", map[string]interface{}{
		"tierCount": len(clients),
		"targets":   len(targets),
	})

	// Delivery trouble never fails the scan; the call list is the product.
	digestErr := ""
	if input.Notify && h.notifier != nil && len(targets) > 0 {
		if err := h.notifier.Send(ctx, buildDigest(targets)); err != nil {
			h.logger.WithError(err).Warn("digest delivery failed", nil)
			digestErr = errors.AsStandard(err).Indicator()
		}
	}

	return &Output{
		Strategy:    "Attack Decay",
		TierCount:   len(clients),
		TargetList:  targets,
		DigestError: digestErr,
	}
}

func buildDigest(targets []CallTarget) notify.Digest {
	var b strings.Builder
	fmt.Fprintf(&b, "%d tier-1 clients have gone quiet:\n", len(targets))
	for _, t := range targets {
		fmt.Fprintf(&b, "- %s (%s): %d days silent\n", t.Name, t.Region, t.DaysSilent)
	}
	return notify.Digest{
		Subject: "Golden hour call list",
		Body:    b.String(),
	}
}
