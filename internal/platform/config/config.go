package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	RunMigrations bool

	// Store pool. The defaults hold a single connection.
	DBMaxConns       int
	DBIdleTimeout    time.Duration
	DBConnectTimeout time.Duration
	DBQueryTimeout   time.Duration
	RatesTable       string

	RateLimit          string
	CORSAllowedOrigins []string

	SyntheticSeed uint64
	MaxWindowDays int
}

var defaults = map[string]any{
	"PGSQL_URL":            "",
	"PORT":                 "8080",
	"IS_PRODUCTION":        false,
	"ENABLE_DB_CHECK":      true,
	"RUN_MIGRATIONS":       false,
	"DB_MAX_CONNS":         1,
	"DB_IDLE_TIMEOUT":      "5s",
	"DB_CONNECT_TIMEOUT":   "10s",
	"DB_QUERY_TIMEOUT":     "10s",
	"RATES_TABLE":          "vault.fx_rates_daily",
	"RATE_LIMIT":           "120-M",
	"CORS_ALLOWED_ORIGINS": "*",
	"SYNTHETIC_SEED":       20241127,
	"MAX_WINDOW_DAYS":      3650,
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		DatabaseURL:   v.GetString("PGSQL_URL"),
		Port:          v.GetString("PORT"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		EnableDBCheck: v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations: v.GetBool("RUN_MIGRATIONS"),
		DBMaxConns:    v.GetInt("DB_MAX_CONNS"),
		RatesTable:    v.GetString("RATES_TABLE"),
		RateLimit:     v.GetString("RATE_LIMIT"),
		SyntheticSeed: v.GetUint64("SYNTHETIC_SEED"),
		MaxWindowDays: v.GetInt("MAX_WINDOW_DAYS"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Serving synthetic data only.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.DBMaxConns < 1 {
		log.Printf("Warning: Invalid value for DB_MAX_CONNS (%d). Defaulting to 1.\n", cfg.DBMaxConns)
		cfg.DBMaxConns = 1
	}
	if cfg.MaxWindowDays < 1 {
		log.Printf("Warning: Invalid value for MAX_WINDOW_DAYS (%d). Defaulting to 3650.\n", cfg.MaxWindowDays)
		cfg.MaxWindowDays = 3650
	}

	cfg.DBIdleTimeout = durationOr(v, "DB_IDLE_TIMEOUT", 5*time.Second)
	cfg.DBConnectTimeout = durationOr(v, "DB_CONNECT_TIMEOUT", 10*time.Second)
	cfg.DBQueryTimeout = durationOr(v, "DB_QUERY_TIMEOUT", 10*time.Second)

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	return cfg
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
