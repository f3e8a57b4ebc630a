// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Server        ServerConfig       `mapstructure:"server"`
	Store         StoreConfig        `mapstructure:"store"`
	Engine        EngineConfig       `mapstructure:"engine"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Logging       LoggingConfig      `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig holds the dispatch/metrics HTTP surface settings. The listener
// belongs to the bootstrap process, not the engine packages.
type ServerConfig struct {
	Address        string `mapstructure:"address"`
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

// StoreConfig holds the Record Store endpoint and credentials. URL and
// ServiceKey are the two environment-supplied values (SUPABASE_URL,
// SUPABASE_SERVICE_ROLE_KEY) resolved once at startup.
type StoreConfig struct {
	Driver     string `mapstructure:"driver"` // "postgrest" or "postgres"
	URL        string `mapstructure:"url"`
	ServiceKey string `mapstructure:"service_key"`
	DSN        string `mapstructure:"dsn"`     // postgres driver only
	Timeout    int    `mapstructure:"timeout"` // milliseconds
}

// EngineConfig holds the business-rule knobs the rules engine treats as
// explicit inputs rather than hard-coded branches.
type EngineConfig struct {
	PlacementProfile  string                     `mapstructure:"placement_profile"`
	PlacementProfiles map[string]PlacementPolicy `mapstructure:"placement_profiles"`
	Enrichment        EnrichmentConfig           `mapstructure:"enrichment"`
	GoldenHour        GoldenHourConfig           `mapstructure:"golden_hour"`
	VisaHorizonDays   int                        `mapstructure:"visa_horizon_days"`
	SearchLimit       int                        `mapstructure:"search_limit"`
	ClientSearchLimit int                        `mapstructure:"client_search_limit"`
}

// PlacementPolicy names which statuses count as an active, revenue-generating
// placement. Two profiles ship by default: the standard lowercase pair
// {placed, on_job} and the legacy exact-case single {Placed}.
type PlacementPolicy struct {
	Statuses      []string `mapstructure:"statuses"`
	CaseSensitive bool     `mapstructure:"case_sensitive"`
}

// EnrichmentConfig parameterizes candidate enrichment.
type EnrichmentConfig struct {
	MobilityMarkers    []string `mapstructure:"mobility_markers"`
	SeniorityMarkers   []string `mapstructure:"seniority_markers"`
	SeniorPayThreshold float64  `mapstructure:"senior_pay_threshold"`
}

// GoldenHourConfig parameterizes the priority call list.
type GoldenHourConfig struct {
	Tier              string `mapstructure:"tier"`
	SilenceDays       int    `mapstructure:"silence_days"`
	DaysWhenNoContact int    `mapstructure:"days_when_no_contact"`
}

// NotificationConfig holds settings for the golden-hour digest.
type NotificationConfig struct {
	Email struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
		ToEmail   string `mapstructure:"to_email"`
	} `mapstructure:"email"`
	SMS struct {
		Enabled  bool   `mapstructure:"enabled"`
		TopicARN string `mapstructure:"topic_arn"`
	} `mapstructure:"sms"`
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// ActivePlacementPolicy resolves the selected placement profile.
func (e EngineConfig) ActivePlacementPolicy() (PlacementPolicy, error) {
	p, ok := e.PlacementProfiles[e.PlacementProfile]
	if !ok {
		return PlacementPolicy{}, fmt.Errorf("unknown placement profile %q", e.PlacementProfile)
	}
	if len(p.Statuses) == 0 {
		return PlacementPolicy{}, fmt.Errorf("placement profile %q has no statuses", e.PlacementProfile)
	}
	return p, nil
}
