package config

import (
	"os"
	"strconv"

	"datareport/domain/table"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	Report ReportConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// UploadConfig holds dataset upload limits
type UploadConfig struct {
	MaxBytes    int64
	PreviewRows int
}

// ReportConfig holds the default report front matter, used when an upload
// or CLI invocation supplies none
type ReportConfig struct {
	Defaults table.ReportMetadata
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	defaults := table.DefaultMetadata()
	if v := os.Getenv("REPORT_TITLE"); v != "" {
		defaults.Title = v
	}
	if v := os.Getenv("REPORT_PREPARED_BY"); v != "" {
		defaults.PreparedBy = v
	}
	if v := os.Getenv("REPORT_PREPARED_FOR"); v != "" {
		defaults.PreparedFor = v
	}

	return &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Upload: UploadConfig{
			MaxBytes:    getEnvInt64OrDefault("UPLOAD_MAX_BYTES", 32<<20),
			PreviewRows: getEnvIntOrDefault("PREVIEW_ROWS", 5),
		},
		Report: ReportConfig{Defaults: defaults},
	}, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64OrDefault(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
