package dispatch

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"stellar-ops-engine/internal/common/errors"
	"stellar-ops-engine/internal/common/logger"
	"stellar-ops-engine/internal/common/metrics"
	"stellar-ops-engine/internal/common/observability"
)

const defaultOpTimeout = 30 * time.Second

// Dispatcher executes registered operations. Its contract with the Dialogue
// Router: every dispatch returns a result map synchronously; failures of any
// kind become an error field in the result, never a raised error.
type Dispatcher struct {
	registry *Registry
	logger   logger.Logger
	obs      *observability.Observability
}

func NewDispatcher(registry *Registry, log logger.Logger, obs *observability.Observability) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   log.WithFields(map[string]interface{}{"component": "dispatch"}),
		obs:      obs,
	}
}

// Dispatch runs the named operation with the given JSON arguments.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args json.RawMessage) map[string]interface{} {
	invocationID := uuid.NewString()
	log := d.logger.WithFields(map[string]interface{}{
		"operation":    name,
		"invocationId": invocationID,
	})

	op, ok := d.registry.Get(name)
	if !ok {
		log.Warn("unknown operation dispatched", nil)
		return errorResult(errors.NewUnknownOperationError(name))
	}

	if len(args) == 0 {
		args = json.RawMessage(`{}`)
	}

	if op.InputSchema != nil {
		if se := validateArgs(op.InputSchema, args); se != nil {
			log.Warn("argument validation failed", map[string]interface{}{"details": se.Details})
			metrics.OpsFailed.WithLabelValues(name, string(se.Code)).Inc()
			return errorResult(se)
		}
	}

	timeout := op.Timeout
	if timeout <= 0 {
		timeout = defaultOpTimeout
	}
	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	metrics.OpsActive.WithLabelValues(name).Inc()
	start := time.Now()

	output, err := op.Handle(opCtx, args)

	elapsed := time.Since(start)
	metrics.OpsActive.WithLabelValues(name).Dec()
	metrics.OpDuration.WithLabelValues(name).Observe(elapsed.Seconds())

	if err != nil {
		se := errors.AsStandard(err)
		log.Error("operation failed", map[string]interface{}{
			"errorCode": string(se.Code),
			"details":   se.Details,
			"elapsedMs": elapsed.Milliseconds(),
		})
		metrics.OpsFailed.WithLabelValues(name, string(se.Code)).Inc()
		d.obs.RecordOpProcessed(opCtx, name, "failed")
		d.obs.RecordOpDuration(opCtx, name, elapsed, "failed")
		return errorResult(se)
	}

	result := toResultMap(output)
	status := "completed"
	if errText, _ := result["error"].(string); errText != "" {
		// The operation completed but is reporting a failure as data.
		status = "error_result"
		metrics.OpsFailed.WithLabelValues(name, "RESULT_ERROR").Inc()
	} else {
		metrics.OpsCompleted.WithLabelValues(name).Inc()
	}
	d.obs.RecordOpProcessed(opCtx, name, status)
	d.obs.RecordOpDuration(opCtx, name, elapsed, status)

	log.Info("operation processed", map[string]interface{}{
		"status":    status,
		"elapsedMs": elapsed.Milliseconds(),
	})
	return result
}

func validateArgs(schema map[string]interface{}, args json.RawMessage) *errors.StandardError {
	schemaLoader := gojsonschema.NewGoLoader(schema)
	documentLoader := gojsonschema.NewStringLoader(string(args))

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.NewInvalidArgumentError(err.Error())
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return errors.NewInvalidArgumentError(strings.Join(msgs, "; "))
	}
	return nil
}

func errorResult(se *errors.StandardError) map[string]interface{} {
	return map[string]interface{}{
		"error":      se.Indicator(),
		"error_code": string(se.Code),
	}
}

func toResultMap(output interface{}) map[string]interface{} {
	if m, ok := output.(map[string]interface{}); ok {
		return m
	}
	raw, err := json.Marshal(output)
	if err != nil {
		return errorResult(errors.AsStandard(err))
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return errorResult(errors.AsStandard(err))
	}
	return m
}
