package config

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	RunMigrations  bool
	MigrationsPath string
	SeedSampleData bool

	// SQLitePath selects the SQLite store when no PGSQL_URL is set.
	SQLitePath string

	// AMQP bill events; an empty URL disables publishing.
	AMQPURL      string
	AMQPExchange string

	// RateLimit uses the ulule/limiter formatted rate, e.g. "100-M".
	RateLimit          string
	CORSAllowedOrigins []string

	// Dashboard windows
	UpcomingDaysAhead int
	UpcomingLimit     int
	ChartMonthsBack   int

	// RefreshInterval re-reads bills from the repository; zero disables it.
	RefreshInterval time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("SEED_SAMPLE_DATA", true)
	viper.SetDefault("SQLITE_PATH", "")
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "bills")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("UPCOMING_DAYS_AHEAD", 30)
	viper.SetDefault("UPCOMING_LIMIT", 5)
	viper.SetDefault("CHART_MONTHS_BACK", 6)
	viper.SetDefault("REFRESH_INTERVAL", "5m")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:       viper.GetString("PGSQL_URL"),
		Port:              viper.GetString("PORT"),
		IsProduction:      viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:     viper.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:     viper.GetBool("RUN_MIGRATIONS"),
		MigrationsPath:    viper.GetString("MIGRATIONS_PATH"),
		SeedSampleData:    viper.GetBool("SEED_SAMPLE_DATA"),
		SQLitePath:        viper.GetString("SQLITE_PATH"),
		AMQPURL:           viper.GetString("AMQP_URL"),
		AMQPExchange:      viper.GetString("AMQP_EXCHANGE"),
		RateLimit:         viper.GetString("RATE_LIMIT"),
		UpcomingDaysAhead: viper.GetInt("UPCOMING_DAYS_AHEAD"),
		UpcomingLimit:     viper.GetInt("UPCOMING_LIMIT"),
		ChartMonthsBack:   viper.GetInt("CHART_MONTHS_BACK"),
	}

	if cfg.DatabaseURL == "" && cfg.SQLitePath == "" {
		log.Println("Warning: neither PGSQL_URL nor SQLITE_PATH is set. Bills are kept in memory.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	refreshStr := viper.GetString("REFRESH_INTERVAL")
	refreshInterval, err := time.ParseDuration(refreshStr)
	if err != nil {
		refreshInterval = 5 * time.Minute
		log.Printf("Warning: Invalid value for REFRESH_INTERVAL ('%s'). Defaulting to %s.\n", refreshStr, refreshInterval)
	}
	cfg.RefreshInterval = refreshInterval

	if err := cfg.validateAMQP(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validateAMQP() error {
	if c.AMQPURL == "" {
		return nil
	}
	parsed, err := url.Parse(c.AMQPURL)
	if err != nil {
		return fmt.Errorf("invalid AMQP_URL: %w", err)
	}
	if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
		return fmt.Errorf("invalid AMQP_URL scheme %q: must be amqp or amqps", parsed.Scheme)
	}
	if c.AMQPExchange == "" {
		return fmt.Errorf("AMQP_EXCHANGE cannot be empty when AMQP_URL is set")
	}
	return nil
}
