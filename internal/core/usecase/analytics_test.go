package usecase

import (
	"testing"
)

func analyticsCatalogFake() *normalizeCatalogFake {
	fake := searchCatalogFake()
	fake.items[0].Quantity = 10
	fake.items[0].UnitPrice = 100
	fake.items[1].Quantity = 5
	fake.items[1].UnitPrice = 40
	fake.items[2].Quantity = 2
	fake.items[2].UnitPrice = 400
	return fake
}

func TestReportAggregatesCatalog(t *testing.T) {
	uc := NewAnalyticsUseCase(analyticsCatalogFake())

	report := uc.Report()
	if len(report.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(report.Items))
	}
	if report.TotalValue != 2000 {
		t.Fatalf("expected total value 2000, got %v", report.TotalValue)
	}
	concrete, ok := report.CategoryTotals["خرسانة"]
	if !ok {
		t.Fatalf("missing concrete aggregate: %v", report.CategoryTotals)
	}
	if concrete.Quantity != 10 || concrete.Total != 1000 {
		t.Fatalf("unexpected concrete aggregate %+v", concrete)
	}
}

func TestReportRebuiltPerCall(t *testing.T) {
	fake := analyticsCatalogFake()
	uc := NewAnalyticsUseCase(fake)

	first := uc.Report()
	first.Items[0].Description = "mutated"

	second := uc.Report()
	if second.Items[0].Description == "mutated" {
		t.Fatalf("report items must not be shared between calls")
	}
}

func TestReportEmptyCatalog(t *testing.T) {
	uc := NewAnalyticsUseCase(&normalizeCatalogFake{})

	report := uc.Report()
	if report.TotalValue != 0 {
		t.Fatalf("expected zero total, got %v", report.TotalValue)
	}
	if len(report.CategoryTotals) != 0 {
		t.Fatalf("expected no aggregates, got %v", report.CategoryTotals)
	}
	if report.Items == nil {
		// Items serializes as [] rather than null.
		t.Fatalf("expected a non-nil item slice")
	}
}
