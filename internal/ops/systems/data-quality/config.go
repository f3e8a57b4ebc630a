// internal/ops/systems/data-quality/config.go
package dataquality

import "time"

type Config struct {
	Timeout      time.Duration
	DetailsLimit int
}

func NewConfig() *Config {
	return &Config{
		Timeout:      20 * time.Second,
		DetailsLimit: 5,
	}
}
