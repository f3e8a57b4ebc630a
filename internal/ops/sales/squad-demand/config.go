// internal/ops/sales/squad-demand/config.go
package squaddemand

import "time"

type Config struct {
	Timeout time.Duration
}

func NewConfig() *Config {
	return &Config{
		Timeout: 15 * time.Second,
	}
}
