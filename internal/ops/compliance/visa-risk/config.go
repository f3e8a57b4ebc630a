// internal/ops/compliance/visa-risk/config.go
package visarisk

import (
	"time"

	"stellar-ops-engine/internal/common/config"
)

type Config struct {
	Timeout     time.Duration
	HorizonDays int
}

func NewConfig(engine config.EngineConfig) *Config {
	return &Config{
		Timeout:     15 * time.Second,
		HorizonDays: engine.VisaHorizonDays,
	}
}
