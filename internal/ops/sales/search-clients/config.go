// internal/ops/sales/search-clients/config.go
package searchclients

import (
	"time"

	"stellar-ops-engine/internal/common/config"
)

type Config struct {
	Timeout time.Duration
	Limit   int
}

func NewConfig(engine config.EngineConfig) *Config {
	return &Config{
		Timeout: 15 * time.Second,
		Limit:   engine.ClientSearchLimit,
	}
}
