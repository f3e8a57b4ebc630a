// internal/ops/talent/search-talent/config.go
package searchtalent

import (
	"time"

	"stellar-ops-engine/internal/common/config"
	"stellar-ops-engine/internal/enrich"
)

type Config struct {
	Timeout       time.Duration
	DefaultStatus string
	Limit         int
	Enrichment    enrich.Policy
}

func NewConfig(engine config.EngineConfig) *Config {
	return &Config{
		Timeout:       15 * time.Second,
		DefaultStatus: "available",
		Limit:         engine.SearchLimit,
		Enrichment: enrich.Policy{
			MobilityMarkers:    engine.Enrichment.MobilityMarkers,
			SeniorityMarkers:   engine.Enrichment.SeniorityMarkers,
			SeniorPayThreshold: engine.Enrichment.SeniorPayThreshold,
		},
	}
}
