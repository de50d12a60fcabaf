package config

import (
	"os"
	"strconv"

	"incomedash/internal/errors"
)

// DefaultDataFile is where the uploaded history dataset lives by convention
const DefaultDataFile = "data/uploaded_data_history.csv"

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Dashboard DashboardConfig
	Profiling ProfilingConfig
	LogLevel  string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds the dataset source settings
type DataConfig struct {
	File string
}

// DashboardConfig holds rendering limits
type DashboardConfig struct {
	ScatterSampleLimit int
	PreviewRows        int
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:    *loadServerConfig(),
		Data:      *loadDataConfig(),
		Dashboard: *loadDashboardConfig(),
		Profiling: *loadProfilingConfig(),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Default returns the configuration used when no environment is set
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Port: "8080", GinMode: "debug"},
		Data:      DataConfig{File: DefaultDataFile},
		Dashboard: DashboardConfig{ScatterSampleLimit: 5000, PreviewRows: 5},
		Profiling: ProfilingConfig{Port: "6060"},
		LogLevel:  "INFO",
	}
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		File: getEnvOrDefault("DATA_FILE", DefaultDataFile),
	}
}

func loadDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		ScatterSampleLimit: getEnvIntOrDefault("SCATTER_SAMPLE_LIMIT", 5000),
		PreviewRows:        getEnvIntOrDefault("PREVIEW_ROWS", 5),
	}
}

func loadProfilingConfig() *ProfilingConfig {
	return &ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
	}
}

func validateConfig(config *Config) error {
	if config.Data.File == "" {
		return errors.ConfigInvalid("DATA_FILE must not be empty")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric, got " + strconv.Quote(config.Server.Port))
	}
	if config.Dashboard.ScatterSampleLimit < 0 {
		return errors.ConfigInvalid("SCATTER_SAMPLE_LIMIT must be >= 0")
	}
	if config.Dashboard.PreviewRows < 0 {
		return errors.ConfigInvalid("PREVIEW_ROWS must be >= 0")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
