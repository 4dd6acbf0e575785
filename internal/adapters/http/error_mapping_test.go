package httpadapter

import (
	"errors"
	"net/http"
	"testing"

	"github.com/azocr/boq-insight/internal/core/domain"
)

func TestMapErrorToHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", domain.WrapError(domain.ErrInvalidInput, "parse workbook", errors.New("bad zip")), http.StatusBadRequest},
		{"not found", domain.WrapError(domain.ErrNotFound, "lookup", errors.New("missing")), http.StatusNotFound},
		{"temporary", domain.WrapError(domain.ErrTemporary, "remote call", errors.New("timeout")), http.StatusServiceUnavailable},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapErrorToHTTPStatus(tc.err); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
