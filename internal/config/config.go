package config

import (
	"os"
	"strconv"
)

type Config struct {
	APIPort  string
	LogLevel string

	ElasticURL    string
	ElasticIndex  string
	ElasticAPIKey string

	GoogleProjectID         string
	GoogleCloudCredentials  string
	DriveServiceAccountJSON string

	UploadTimeoutSeconds int
	VisionTimeoutSeconds int

	APIRateLimitRPS   int
	APIRateLimitBurst int

	BreakerMinRequests      int
	BreakerFailureRatio     float64
	BreakerOpenTimeoutSecs  int
	BreakerHalfOpenMaxCalls int
}

func Load() Config {
	return Config{
		APIPort:  mustEnv("API_PORT", "8080"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		ElasticURL:    mustEnv("ELASTICSEARCH_URL", ""),
		ElasticIndex:  mustEnv("ELASTICSEARCH_INDEX", "azocr-items"),
		ElasticAPIKey: mustEnv("ELASTICSEARCH_API_KEY", ""),

		GoogleProjectID:         mustEnv("GOOGLE_PROJECT_ID", ""),
		GoogleCloudCredentials:  mustEnv("GOOGLE_CLOUD_CREDENTIALS", ""),
		DriveServiceAccountJSON: mustEnv("GOOGLE_DRIVE_SERVICE_ACCOUNT_JSON", ""),

		UploadTimeoutSeconds: mustEnvInt("UPLOAD_TIMEOUT_SECONDS", 10),
		VisionTimeoutSeconds: mustEnvInt("VISION_TIMEOUT_SECONDS", 20),

		APIRateLimitRPS:   mustEnvInt("API_RATE_LIMIT_RPS", 0),
		APIRateLimitBurst: mustEnvInt("API_RATE_LIMIT_BURST", 0),

		BreakerMinRequests:      mustEnvInt("BREAKER_MIN_REQUESTS", 5),
		BreakerFailureRatio:     mustEnvFloat("BREAKER_FAILURE_RATIO", 0.5),
		BreakerOpenTimeoutSecs:  mustEnvInt("BREAKER_OPEN_TIMEOUT_SECONDS", 30),
		BreakerHalfOpenMaxCalls: mustEnvInt("BREAKER_HALF_OPEN_MAX_CALLS", 2),
	}
}

// IsSearchConfigured reports whether the remote full-text index is reachable
// by configuration. Decided once at process start; absence is not an error,
// it selects the catalog fallback.
func (c Config) IsSearchConfigured() bool {
	return c.ElasticURL != ""
}

func (c Config) IsVisionConfigured() bool {
	return c.GoogleProjectID != "" && c.GoogleCloudCredentials != ""
}

func (c Config) IsDriveConfigured() bool {
	return c.DriveServiceAccountJSON != ""
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
