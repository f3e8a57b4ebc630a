// internal/ops/talent/build-squads/config.go
package buildsquads

import (
	"time"

	"stellar-ops-engine/internal/common/config"
	"stellar-ops-engine/internal/enrich"
)

// A squad is always 1 senior + 2 juniors priced at a 40-hour week.
const (
	juniorsPerSquad = 2
	hoursPerWeek    = 40
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
