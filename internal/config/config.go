package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Analysis provider (language-model service)
	AnalysisURL     string
	AnalysisModel   string
	AnalysisTimeout time.Duration

	AnalysisCacheSize int
	AnalysisCacheTTL  time.Duration

	EventDeadLetterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		ServiceName: getEnv("SERVICE_NAME", "questscribe"),
		Version:     getEnv("VERSION", "dev"),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "questscribe"),

		AnalysisURL:   getEnv("ANALYSIS_URL", "http://localhost:11434/v1/chat/completions"),
		AnalysisModel: getEnv("ANALYSIS_MODEL", "llama3"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	timeoutStr := getEnv("ANALYSIS_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid ANALYSIS_TIMEOUT value: %w", err)
	}
	cfg.AnalysisTimeout = timeout

	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS value: %w", err)
	}
	cfg.DBMaxConns = maxConns

	idleTime, err := time.ParseDuration(getEnv("DB_MAX_CONN_IDLE_TIME", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONN_IDLE_TIME value: %w", err)
	}
	cfg.DBMaxConnIdleTime = idleTime

	lifetime, err := time.ParseDuration(getEnv("DB_MAX_CONN_LIFETIME", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONN_LIFETIME value: %w", err)
	}
	cfg.DBMaxConnLifetime = lifetime

	cacheSize, err := strconv.Atoi(getEnv("ANALYSIS_CACHE_SIZE", "256"))
	if err != nil {
		return nil, fmt.Errorf("invalid ANALYSIS_CACHE_SIZE value: %w", err)
	}
	cfg.AnalysisCacheSize = cacheSize

	cacheTTL, err := time.ParseDuration(getEnv("ANALYSIS_CACHE_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ANALYSIS_CACHE_TTL value: %w", err)
	}
	cfg.AnalysisCacheTTL = cacheTTL

	cfg.EventDeadLetterPath = getEnv("EVENT_DEAD_LETTER_PATH", "deadletter.jsonl")

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
