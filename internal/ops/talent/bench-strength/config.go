// internal/ops/talent/bench-strength/config.go
package benchstrength

import (
	"time"

	"stellar-ops-engine/internal/common/config"
	"stellar-ops-engine/internal/enrich"
)

type Config struct {
	Timeout    time.Duration
	Enrichment enrich.Policy
}

func NewConfig(engine config.EngineConfig) *Config {
	return &Config{
		Timeout: 15 * time.Second,
		Enrichment: enrich.Policy{
			MobilityMarkers:    engine.Enrichment.MobilityMarkers,
			SeniorityMarkers:   engine.Enrichment.SeniorityMarkers,
			SeniorPayThreshold: engine.Enrichment.SeniorPayThreshold,
		},
	}
}
