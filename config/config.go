package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	// Storage
	StoreBackend     string
	DBUrl            string
	SeedData         bool
	SimulatedLatency bool
	LatencyScale     float64
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	StatsCacheTTL time.Duration
	// Auth
	JWTSecret         string
	TokenTTL          time.Duration
	AuthRequired      bool
	AdminEmail        string
	AdminPasswordHash string
	FrontendURL       string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	// Export archive (S3 / Wasabi)
	S3Provider        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Region          string
	ExportBucket      string
	WasabiEndpoint    string
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		StoreBackend:     strings.ToLower(getEnv("STORE_BACKEND", BackendMemory)),
		DBUrl:            getEnv("DATABASE_URL", ""),
		SeedData:         getEnvBool("SEED_DATA", true),
		SimulatedLatency: getEnvBool("SIMULATED_LATENCY", true),
		LatencyScale:     getEnvFloat("LATENCY_SCALE", 1.0),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		StatsCacheTTL: getEnvDuration("STATS_CACHE_TTL", 30*time.Second),

		JWTSecret:         getEnv("JWT_SECRET", ""),
		TokenTTL:          getEnvDuration("TOKEN_TTL", 24*time.Hour),
		AuthRequired:      getEnvBool("AUTH_REQUIRED", false),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		FrontendURL:       strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),

		S3Provider:        strings.ToLower(getEnv("S3_PROVIDER", "aws")),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		ExportBucket:      getEnv("EXPORT_BUCKET", ""),
		WasabiEndpoint:    getEnv("WASABI_ENDPOINT", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Stats cache is disabled and rate limiting uses in-memory fallback.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET not configured. Login and registration are disabled.")
	}

	return cfg, nil
}

// Validate checks the combination of settings, not reachability.
func (c *Config) Validate() error {
	var errs []error

	switch c.StoreBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DBUrl == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when STORE_BACKEND=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", BackendMemory, BackendPostgres, c.StoreBackend))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel))
	}

	if c.AuthRequired && c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required when AUTH_REQUIRED=true"))
	}
	if c.LatencyScale < 0 {
		errs = append(errs, errors.New("LATENCY_SCALE must not be negative"))
	}
	if c.RateLimitWindowSeconds <= 0 || c.RateLimitGlobalThreshold <= 0 {
		errs = append(errs, errors.New("rate limit window and threshold must be positive"))
	}
	if c.S3Provider == "wasabi" && c.ExportBucket != "" && c.WasabiEndpoint == "" {
		errs = append(errs, errors.New("WASABI_ENDPOINT is required when S3_PROVIDER=wasabi"))
	}

	return errors.Join(errs...)
}

// ExportArchiveEnabled reports whether exports should also be uploaded to object storage.
func (c *Config) ExportArchiveEnabled() bool {
	return c.ExportBucket != "" && c.S3AccessKeyID != "" && c.S3SecretAccessKey != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

// getEnvDuration accepts Go durations ("30s", "24h") or a bare number of seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
