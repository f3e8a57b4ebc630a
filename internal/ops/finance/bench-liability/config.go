// internal/ops/finance/bench-liability/config.go
package benchliability

import "time"

type Config struct {
	Timeout time.Duration
}

func NewConfig() *Config {
	return &Config{
		Timeout: 15 * time.Second,
	}
}
