// internal/ops/compliance/visa-risk/handler.go
package visarisk

import (
	"context"
	"encoding/json"
	"time"

	"stellar-ops-engine/internal/common/errors"
	"stellar-ops-engine/internal/common/logger"
	"stellar-ops-engine/internal/normalize"
	"stellar-ops-engine/internal/store"
)

const OpName = "visa-risk"

type Handler struct {
	config *Config
	store  store.Store
	logger logger.Logger
	nowFn  func() time.Time
}

func NewHandler(config *Config, st store.Store, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		store:  st,
		logger: log.WithFields(map[string]interface{}{"operation": OpName}),
		nowFn:  time.Now,
	}
}

func (h *Handler) Run(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var input Input
	if err := json.Unmarshal(args, &input); err != nil {
		return nil, errors.NewInvalidArgumentError(err.Error())
	}
	return h.Execute(ctx, &input), nil
}

// Execute scans every candidate carrying a visa expiry and flags the ones
// expiring inside the horizon. Lapsed visas flag too; a negative DaysLeft is
// the most urgent alert there is. Rows with a date the scanner cannot read
// are counted rather than silently dropped.
func (h *Handler) Execute(ctx context.Context, _ *Input) *Output {
	query := store.NewQuery().NotNull("visa_expiry")

	candidates, err := h.store.Candidates(ctx, query)
	if err != nil {
		return &Output{Error: errors.AsStandard(err).Indicator()}
	}

	now := h.nowFn()
	alerts := []VisaAlert{}
	unparsed := 0

	for _, c := range candidates {
		if c.VisaExpiry == "" {
			continue
		}
		expiry, ok := normalize.ParseTimestamp(c.VisaExpiry)
		if !ok {
			unparsed++
			continue
		}
		daysLeft := normalize.DaysUntil(now, expiry)
		if daysLeft >= h.config.HorizonDays {
			continue
		}
		alerts = append(alerts, VisaAlert{
			Name:     c.FullName(),
			Expiry:   c.VisaExpiry,
			DaysLeft: daysLeft,
		})
	}

	h.logger.Info("visa risk scan completed", map[string]interface{}{
		"scanned":  len(candidates),
		"atRisk":   len(alerts),
		"unparsed": unparsed,
	})

	return &Output{
		Status:   "Risk Scan",
		Scanned:  len(candidates),
		Unparsed: unparsed,
		AtRisk:   alerts,
	}
}
