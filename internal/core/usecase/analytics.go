package usecase

import (
	"github.com/azocr/boq-insight/internal/core/domain"
	"github.com/azocr/boq-insight/internal/core/ports"
)

// AnalyticsUseCase renders the dashboard summary from the reference catalog.
// Aggregates are rebuilt on every call, never cached.
type AnalyticsUseCase struct {
	catalog ports.ItemCatalog
}

func NewAnalyticsUseCase(catalog ports.ItemCatalog) *AnalyticsUseCase {
	return &AnalyticsUseCase{catalog: catalog}
}

func (uc *AnalyticsUseCase) Report() domain.AnalyticsReport {
	items := uc.catalog.Items()
	return domain.AnalyticsReport{
		Items:            items,
		CategoryTotals:   domain.AggregateByCategory(items),
		CompanyOffers:    uc.catalog.CompanyOffers(),
		DashboardMetrics: uc.catalog.DashboardMetrics(),
		TotalValue:       domain.TotalValue(items),
	}
}
