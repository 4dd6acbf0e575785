package gdrive

import (
	"context"
	"testing"

	"github.com/azocr/boq-insight/internal/infrastructure/resilience"
)

func TestNewRejectsMalformedCredentials(t *testing.T) {
	breaker := resilience.NewBreaker(resilience.DefaultConfig())

	if _, err := New(context.Background(), []byte("not json"), breaker); err == nil {
		t.Fatalf("expected an error for malformed credentials")
	}
	if _, err := New(context.Background(), []byte(`{"type":"unknown"}`), breaker); err == nil {
		t.Fatalf("expected an error for non service-account credentials")
	}
}
