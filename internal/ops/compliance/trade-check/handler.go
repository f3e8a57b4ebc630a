// internal/ops/compliance/trade-check/handler.go
package tradecheck

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"stellar-ops-engine/internal/common/errors"
	"stellar-ops-engine/internal/common/logger"
)

const OpName = "trade-check"

// tradeMatrix maps a project site type to the trade roles allowed on it.
// Site types compare case-insensitively; role names are exact. "Digger" is
// shorthand for digger operator and "GIB" covers fixers and stoppers.
var tradeMatrix = map[string][]string{
	"CIVIL":     {"Labourer", "Digger", "Drainlayer"},
	"STRUCTURE": {"Carpenter", "Hammerhand", "Concrete"},
	"INTERIOR":  {"Painter", "GIB"},
}

type Handler struct {
	config *Config
	logger logger.Logger
}

// NewHandler builds the trade validator. It is the one operation with no
// store access; the matrix is company policy, not data.
func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
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

// Execute checks a role against the project type's allowed trades. An
// unknown project type allows nothing, so every role on it is a violation.
func (h *Handler) Execute(_ context.Context, input *Input) *Output {
	allowed := tradeMatrix[strings.ToUpper(input.ProjectType)]

	for _, role := range allowed {
		if role == input.Role {
			return &Output{Result: "VALID"}
		}
	}

	h.logger.Info("trade violation detected", map[string]interface{}{
		"role":        input.Role,
		"projectType": input.ProjectType,
	})

	return &Output{
		Result: fmt.Sprintf("VIOLATION: %s cannot work on %s site.", input.Role, input.ProjectType),
	}
}
