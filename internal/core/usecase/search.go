package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/azocr/boq-insight/internal/core/domain"
	"github.com/azocr/boq-insight/internal/core/ports"
)

const (
	remoteSearchLimit   = 15
	fallbackSearchLimit = 10

	// remoteProvenanceSuffix tags results served by the remote index.
	remoteProvenanceSuffix = " (ElasticSearch)"
)

// SearchUseCase resolves queries against the remote full-text index when one
// is configured, or against the reference catalog otherwise. Remote failures
// degrade to the catalog path; the same policy all gateways share.
type SearchUseCase struct {
	index   ports.SearchIndex
	catalog ports.ItemCatalog
}

// NewSearchUseCase accepts a nil index, which means remote search is not
// configured and every query is served from the catalog.
func NewSearchUseCase(index ports.SearchIndex, catalog ports.ItemCatalog) *SearchUseCase {
	return &SearchUseCase{
		index:   index,
		catalog: catalog,
	}
}

func (uc *SearchUseCase) Search(ctx context.Context, query string) (domain.SearchResult, error) {
	normalized := strings.TrimSpace(query)

	if uc.index == nil {
		return uc.searchCatalog(normalized), nil
	}

	items, err := uc.index.Search(ctx, normalized, remoteSearchLimit)
	if err != nil {
		slog.Warn("remote search failed, serving catalog fallback", "error", err)
		return uc.searchCatalog(normalized), nil
	}

	out := make([]domain.Item, 0, len(items))
	for _, item := range items {
		out = append(out, item.WithProvenance(remoteProvenanceSuffix))
	}
	return domain.SearchResult{Items: out, UsedFallback: false}, nil
}

func (uc *SearchUseCase) searchCatalog(query string) domain.SearchResult {
	needle := strings.ToLower(query)
	matched := make([]domain.Item, 0, fallbackSearchLimit)
	for _, item := range uc.catalog.Items() {
		if strings.Contains(strings.ToLower(item.Description), needle) ||
			strings.Contains(strings.ToLower(item.Category), needle) ||
			strings.Contains(strings.ToLower(item.ID), needle) {
			matched = append(matched, item)
			if len(matched) >= fallbackSearchLimit {
				break
			}
		}
	}
	return domain.SearchResult{Items: matched, UsedFallback: true}
}
