// internal/ops/systems/data-quality/handler.go
package dataquality

import (
	"context"
	"encoding/json"

	"stellar-ops-engine/internal/common/errors"
	"stellar-ops-engine/internal/common/logger"
	"stellar-ops-engine/internal/store"
)

const OpName = "data-quality"

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

// Execute audits every candidate for missing contact fields. The full count
// is reported but the detail list is capped; the audit is a health signal,
// not an export.
func (h *Handler) Execute(ctx context.Context, _ *Input) *Output {
	candidates, err := h.store.Candidates(ctx, store.NewQuery())
	if err != nil {
		return &Output{Error: errors.AsStandard(err).Indicator()}
	}

	issues := []RecordIssue{}
	for _, c := range candidates {
		var missing []string
		if c.Phone == "" {
			missing = append(missing, "Phone")
		}
		if c.Email == "" {
			missing = append(missing, "Email")
		}
		if len(missing) > 0 {
			issues = append(issues, RecordIssue{Name: c.FullName(), Missing: missing})
		}
	}

	details := issues
	if len(details) > h.config.DetailsLimit {
		details = details[:h.config.DetailsLimit]
	}

	h.logger.Info("data quality audit completed", map[string]interface{}{
		"records": len(candidates),
		"issues":  len(issues),
	})

	return &Output{
		Status:      "Audit Complete",
		IssuesCount: len(issues),
		Details:     details,
	}
}
