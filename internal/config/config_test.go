package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.APIPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.APIPort)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}
	if cfg.ElasticIndex != "azocr-items" {
		t.Fatalf("expected default index azocr-items, got %q", cfg.ElasticIndex)
	}
	if cfg.UploadTimeoutSeconds != 10 || cfg.VisionTimeoutSeconds != 20 {
		t.Fatalf("unexpected timeout defaults: %d/%d", cfg.UploadTimeoutSeconds, cfg.VisionTimeoutSeconds)
	}
	if cfg.APIRateLimitRPS != 0 {
		t.Fatalf("rate limiting must be off by default, got %d", cfg.APIRateLimitRPS)
	}
	if cfg.BreakerMinRequests != 5 || cfg.BreakerFailureRatio != 0.5 {
		t.Fatalf("unexpected breaker defaults: %d/%v", cfg.BreakerMinRequests, cfg.BreakerFailureRatio)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("ELASTICSEARCH_URL", "http://localhost:9200")
	t.Setenv("UPLOAD_TIMEOUT_SECONDS", "3")
	t.Setenv("BREAKER_FAILURE_RATIO", "0.75")

	cfg := Load()
	if cfg.APIPort != "9090" {
		t.Fatalf("expected port override, got %q", cfg.APIPort)
	}
	if cfg.ElasticURL != "http://localhost:9200" {
		t.Fatalf("expected elastic url override, got %q", cfg.ElasticURL)
	}
	if cfg.UploadTimeoutSeconds != 3 {
		t.Fatalf("expected timeout override, got %d", cfg.UploadTimeoutSeconds)
	}
	if cfg.BreakerFailureRatio != 0.75 {
		t.Fatalf("expected ratio override, got %v", cfg.BreakerFailureRatio)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("UPLOAD_TIMEOUT_SECONDS", "ten")
	t.Setenv("BREAKER_FAILURE_RATIO", "half")

	cfg := Load()
	if cfg.UploadTimeoutSeconds != 10 {
		t.Fatalf("malformed int must fall back to the default, got %d", cfg.UploadTimeoutSeconds)
	}
	if cfg.BreakerFailureRatio != 0.5 {
		t.Fatalf("malformed float must fall back to the default, got %v", cfg.BreakerFailureRatio)
	}
}

func TestGatewayConfigurationFlags(t *testing.T) {
	cfg := Load()
	if cfg.IsSearchConfigured() || cfg.IsVisionConfigured() || cfg.IsDriveConfigured() {
		t.Fatalf("no gateway should be configured by default")
	}

	t.Setenv("ELASTICSEARCH_URL", "http://localhost:9200")
	t.Setenv("GOOGLE_PROJECT_ID", "demo-project")
	t.Setenv("GOOGLE_CLOUD_CREDENTIALS", `{"type":"service_account"}`)
	t.Setenv("GOOGLE_DRIVE_SERVICE_ACCOUNT_JSON", `{"type":"service_account"}`)

	cfg = Load()
	if !cfg.IsSearchConfigured() || !cfg.IsVisionConfigured() || !cfg.IsDriveConfigured() {
		t.Fatalf("expected all gateways configured: %+v", cfg)
	}
}

func TestVisionNeedsProjectAndCredentials(t *testing.T) {
	t.Setenv("GOOGLE_PROJECT_ID", "demo-project")

	cfg := Load()
	if cfg.IsVisionConfigured() {
		t.Fatalf("project id alone must not enable the vision gateway")
	}
}
