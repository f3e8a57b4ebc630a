// internal/ops/sales/golden-hour/config.go
package goldenhour

import (
	"time"

	"stellar-ops-engine/internal/common/config"
)

type Config struct {
	Timeout           time.Duration
	Tier              string
	SilenceDays       int
	DaysWhenNoContact int
}

func NewConfig(engine config.EngineConfig) *Config {
	return &Config{
		Timeout:           15 * time.Second,
		Tier:              engine.GoldenHour.Tier,
		SilenceDays:       engine.GoldenHour.SilenceDays,
		DaysWhenNoContact: engine.GoldenHour.DaysWhenNoContact,
	}
}
