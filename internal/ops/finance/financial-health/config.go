// internal/ops/finance/financial-health/config.go
package financialhealth

import (
	"time"

	"stellar-ops-engine/internal/common/config"
)

// Fixed business policy. The 1.30 burden is non-negotiable; the per-deal
// thresholds (15% / $400) deliberately differ from the 18% aggregate floor.
const (
	BurdenMultiplier = 1.30
	HoursPerWeek     = 40

	busyFoolNetGPFloor  = 400.0
	busyFoolMarginFloor = 15.0
	healthyMarginFloor  = 18.0
)

type Config struct {
	Timeout   time.Duration
	Placement config.PlacementPolicy
}

func NewConfig(engine config.EngineConfig) (*Config, error) {
	placement, err := engine.ActivePlacementPolicy()
	if err != nil {
		return nil, err
	}
	return &Config{
		Timeout:   15 * time.Second,
		Placement: placement,
	}, nil
}
