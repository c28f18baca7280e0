package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all process-level configuration for the application.
// Scenario data (weights, valuations, position) lives in the scenario file, not here.
// ⭐ SSOT: every environment variable is read in this file only
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production, test

	// Scenario file (empty = built-in default position)
	ScenarioFile string

	// Simulation overrides (0 = use scenario file value)
	Simulation SimulationConfig

	// API
	API APIConfig

	// Refresh job
	Refresh RefreshConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// SimulationConfig holds overrides applied on top of the scenario file
type SimulationConfig struct {
	Trials  int
	Seed    uint64
	MaxBins int // histogram resolution ceiling for CLI and API requests
}

// APIConfig holds HTTP API limits
type APIConfig struct {
	RateLimit    float64 // requests per second
	RateBurst    int
	MaxTrials    int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// RefreshConfig holds the schedule of the background re-simulation job
type RefreshConfig struct {
	Enabled    bool
	Schedule   string // cron expression with seconds field
	Retries    int
	RetryDelay time.Duration
}

// Load reads configuration from environment variables
// ⭐ SSOT: only this function calls os.Getenv()
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8089"),
		Env:  getEnv("ENV", "development"),

		ScenarioFile: getEnv("SCENARIO_FILE", ""),

		Simulation: SimulationConfig{
			Trials:  getEnvAsInt("SIM_TRIALS", 0),
			Seed:    getEnvAsUint64("SIM_SEED", 0),
			MaxBins: getEnvAsInt("SIM_MAX_BINS", 200),
		},

		API: APIConfig{
			RateLimit:    getEnvAsFloat("API_RATE_LIMIT", 5),
			RateBurst:    getEnvAsInt("API_RATE_BURST", 10),
			MaxTrials:    getEnvAsInt("API_MAX_TRIALS", 250000),
			ReadTimeout:  getEnvAsDuration("API_READ_TIMEOUT", "15s"),
			WriteTimeout: getEnvAsDuration("API_WRITE_TIMEOUT", "60s"),
		},

		Refresh: RefreshConfig{
			Enabled:    getEnvAsBool("REFRESH_ENABLED", true),
			Schedule:   getEnv("REFRESH_SCHEDULE", "0 0 * * * *"),
			Retries:    getEnvAsInt("REFRESH_RETRIES", 2),
			RetryDelay: getEnvAsDuration("REFRESH_RETRY_DELAY", "30s"),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks configuration values that would otherwise fail later at runtime
func (c *Config) validate() error {
	switch c.Env {
	case "development", "staging", "production", "test":
	default:
		return fmt.Errorf("ENV must be one of: development, staging, production, test")
	}

	if c.Simulation.Trials < 0 {
		return fmt.Errorf("SIM_TRIALS must be >= 0")
	}
	if c.Simulation.MaxBins <= 0 {
		return fmt.Errorf("SIM_MAX_BINS must be > 0")
	}

	if c.API.RateLimit <= 0 {
		return fmt.Errorf("API_RATE_LIMIT must be > 0")
	}
	if c.API.RateBurst <= 0 {
		return fmt.Errorf("API_RATE_BURST must be > 0")
	}
	if c.API.MaxTrials <= 0 {
		return fmt.Errorf("API_MAX_TRIALS must be > 0")
	}

	if c.Refresh.Enabled && c.Refresh.Schedule == "" {
		return fmt.Errorf("REFRESH_SCHEDULE is required when REFRESH_ENABLED=true")
	}
	if c.Refresh.Retries < 0 {
		return fmt.Errorf("REFRESH_RETRIES must be >= 0")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to default
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
