package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/azocr/boq-insight/internal/core/domain"
)

type searchIndexFake struct {
	items   []domain.Item
	err     error
	queries []string
	limits  []int
}

func (f *searchIndexFake) IndexItems(ctx context.Context, items []domain.Item) error {
	return nil
}

func (f *searchIndexFake) Search(ctx context.Context, query string, limit int) ([]domain.Item, error) {
	f.queries = append(f.queries, query)
	f.limits = append(f.limits, limit)
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func searchCatalogFake() *normalizeCatalogFake {
	return &normalizeCatalogFake{items: []domain.Item{
		{ID: "ITM-001", Description: "توريد وصب خرسانة مسلحة", Category: "خرسانة", Quantity: 100, UnitPrice: 350},
		{ID: "ITM-002", Description: "أعمال حفر وردم", Category: "أعمال ترابية", Quantity: 50, UnitPrice: 80},
		{ID: "ITM-003", Description: "توريد حديد تسليح", Category: "تسليح", Quantity: 12, UnitPrice: 2600},
	}}
}

func TestSearchWithoutIndexMatchesCatalog(t *testing.T) {
	uc := NewSearchUseCase(nil, searchCatalogFake())

	result, err := uc.Search(context.Background(), "خرسانة")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.UsedFallback {
		t.Fatalf("expected fallback result without an index")
	}
	if len(result.Items) != 1 || result.Items[0].ID != "ITM-001" {
		t.Fatalf("unexpected match set: %+v", result.Items)
	}
}

func TestSearchCatalogMatchesIDCaseInsensitive(t *testing.T) {
	uc := NewSearchUseCase(nil, searchCatalogFake())

	result, err := uc.Search(context.Background(), "itm-003")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].ID != "ITM-003" {
		t.Fatalf("unexpected match set: %+v", result.Items)
	}
}

func TestSearchRemoteTagsProvenance(t *testing.T) {
	index := &searchIndexFake{items: []domain.Item{
		{ID: "ITM-009", Description: "بند من الفهرس البعيد"},
	}}
	uc := NewSearchUseCase(index, searchCatalogFake())

	result, err := uc.Search(context.Background(), "  بند  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.UsedFallback {
		t.Fatalf("expected remote result")
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(result.Items))
	}
	if !strings.HasSuffix(result.Items[0].Description, " (ElasticSearch)") {
		t.Fatalf("missing provenance suffix: %q", result.Items[0].Description)
	}
	if len(index.queries) != 1 || index.queries[0] != "بند" {
		t.Fatalf("expected trimmed query, got %v", index.queries)
	}
	if index.limits[0] != remoteSearchLimit {
		t.Fatalf("expected remote limit %d, got %d", remoteSearchLimit, index.limits[0])
	}
}

func TestSearchRemoteErrorDegradesToCatalog(t *testing.T) {
	index := &searchIndexFake{err: errors.New("connection refused")}
	uc := NewSearchUseCase(index, searchCatalogFake())

	result, err := uc.Search(context.Background(), "حديد")
	if err != nil {
		t.Fatalf("degraded search must not surface the remote error, got %v", err)
	}
	if !result.UsedFallback {
		t.Fatalf("expected fallback after remote failure")
	}
	if len(result.Items) != 1 || result.Items[0].ID != "ITM-003" {
		t.Fatalf("unexpected match set: %+v", result.Items)
	}
}

func TestSearchCatalogCapsResults(t *testing.T) {
	items := make([]domain.Item, 30)
	for i := range items {
		items[i] = domain.Item{ID: "ITM", Description: "بند مشترك"}
	}
	uc := NewSearchUseCase(nil, &normalizeCatalogFake{items: items})

	result, _ := uc.Search(context.Background(), "بند")
	if len(result.Items) != fallbackSearchLimit {
		t.Fatalf("expected %d results, got %d", fallbackSearchLimit, len(result.Items))
	}
}
