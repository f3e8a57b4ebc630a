// internal/ops/compliance/trade-check/config.go
package tradecheck

import "time"

type Config struct {
	Timeout time.Duration
}

func NewConfig() *Config {
	return &Config{
		Timeout: 5 * time.Second,
	}
}
