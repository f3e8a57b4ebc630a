// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like STORE_URL
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay, ignored when absent.
	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = viper.MergeInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideFromEnv(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile loads .env from the working directory or the project root so
// the store credentials resolve regardless of where the process starts.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "stellar-ops-engine"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8090"
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30000
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "postgrest"
	}
	if cfg.Store.Timeout == 0 {
		cfg.Store.Timeout = 15000
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if cfg.Engine.PlacementProfile == "" {
		cfg.Engine.PlacementProfile = "standard"
	}
	if cfg.Engine.PlacementProfiles == nil {
		cfg.Engine.PlacementProfiles = map[string]PlacementPolicy{}
	}
	if _, ok := cfg.Engine.PlacementProfiles["standard"]; !ok {
		cfg.Engine.PlacementProfiles["standard"] = PlacementPolicy{
			Statuses: []string{"placed", "on_job"},
		}
	}
	if _, ok := cfg.Engine.PlacementProfiles["legacy"]; !ok {
		cfg.Engine.PlacementProfiles["legacy"] = PlacementPolicy{
			Statuses:      []string{"Placed"},
			CaseSensitive: true,
		}
	}

	if len(cfg.Engine.Enrichment.MobilityMarkers) == 0 {
		cfg.Engine.Enrichment.MobilityMarkers = []string{"work visa", "filipino", "mobile"}
	}
	if len(cfg.Engine.Enrichment.SeniorityMarkers) == 0 {
		cfg.Engine.Enrichment.SeniorityMarkers = []string{"lbp", "foreman", "manager"}
	}
	if cfg.Engine.Enrichment.SeniorPayThreshold == 0 {
		cfg.Engine.Enrichment.SeniorPayThreshold = 38
	}

	if cfg.Engine.GoldenHour.Tier == "" {
		cfg.Engine.GoldenHour.Tier = "1"
	}
	if cfg.Engine.GoldenHour.SilenceDays == 0 {
		cfg.Engine.GoldenHour.SilenceDays = 14
	}
	if cfg.Engine.GoldenHour.DaysWhenNoContact == 0 {
		cfg.Engine.GoldenHour.DaysWhenNoContact = 99
	}

	if cfg.Engine.VisaHorizonDays == 0 {
		cfg.Engine.VisaHorizonDays = 90
	}
	if cfg.Engine.SearchLimit == 0 {
		cfg.Engine.SearchLimit = 15
	}
	if cfg.Engine.ClientSearchLimit == 0 {
		cfg.Engine.ClientSearchLimit = 5
	}
}

// overrideFromEnv applies the two store credentials from the process
// environment when the yaml left them empty. This is the single resolution
// point for SUPABASE_URL / SUPABASE_SERVICE_ROLE_KEY.
func overrideFromEnv(cfg *Config) {
	if cfg.Store.URL == "" {
		cfg.Store.URL = os.Getenv("SUPABASE_URL")
	}
	if cfg.Store.ServiceKey == "" {
		cfg.Store.ServiceKey = os.Getenv("SUPABASE_SERVICE_ROLE_KEY")
	}
	if cfg.Store.DSN == "" {
		cfg.Store.DSN = os.Getenv("STORE_DSN")
	}
}

func validateConfig(cfg *Config) error {
	switch cfg.Store.Driver {
	case "postgrest":
		// Credentials may legitimately be absent in development; the store
		// constructor turns that into a typed configuration error so
		// operations report a connection failure instead of crashing.
	case "postgres":
		if cfg.Store.DSN == "" {
			return fmt.Errorf("store.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	if _, err := cfg.Engine.ActivePlacementPolicy(); err != nil {
		return err
	}

	if cfg.Notifications.Email.Enabled {
		if cfg.Notifications.Email.FromEmail == "" || cfg.Notifications.Email.ToEmail == "" {
			return fmt.Errorf("notifications.email requires from_email and to_email")
		}
		if cfg.Notifications.AWS.Region == "" {
			return fmt.Errorf("notifications.aws.region is required when email is enabled")
		}
	}
	if cfg.Notifications.SMS.Enabled {
		if cfg.Notifications.SMS.TopicARN == "" {
			return fmt.Errorf("notifications.sms.topic_arn is required when sms is enabled")
		}
		if cfg.Notifications.AWS.Region == "" {
			return fmt.Errorf("notifications.aws.region is required when sms is enabled")
		}
	}

	return nil
}
