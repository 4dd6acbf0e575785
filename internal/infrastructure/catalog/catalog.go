// Package catalog holds the static reference data set: sample line items,
// company offers and dashboard metrics. The catalog seeds upload
// normalization and serves as the local search corpus.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/azocr/boq-insight/internal/core/domain"
)

//go:embed catalog.yaml
var catalogYAML []byte

type Catalog struct {
	items   []domain.Item
	offers  []domain.CompanyOffer
	metrics []domain.DashboardMetric
}

type itemRecord struct {
	ID          string  `yaml:"id"`
	Description string  `yaml:"description"`
	Unit        string  `yaml:"unit"`
	Quantity    float64 `yaml:"quantity"`
	UnitPrice   float64 `yaml:"unitPrice"`
	Category    string  `yaml:"category"`
}

type offerRecord struct {
	Company    string   `yaml:"company"`
	Total      float64  `yaml:"total"`
	Score      float64  `yaml:"score"`
	Highlights []string `yaml:"highlights"`
}

type metricRecord struct {
	Label   string  `yaml:"label"`
	Value   string  `yaml:"value"`
	Trend   float64 `yaml:"trend"`
	Variant string  `yaml:"variant"`
}

type catalogFile struct {
	Items            []itemRecord   `yaml:"items"`
	CompanyOffers    []offerRecord  `yaml:"companyOffers"`
	DashboardMetrics []metricRecord `yaml:"dashboardMetrics"`
}

// Load parses the embedded reference data. A parse failure is a build
// defect, so callers treat the error as fatal at startup.
func Load() (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(catalogYAML, &file); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	if len(file.Items) == 0 {
		return nil, fmt.Errorf("embedded catalog has no items")
	}

	cat := &Catalog{
		items:   make([]domain.Item, 0, len(file.Items)),
		offers:  make([]domain.CompanyOffer, 0, len(file.CompanyOffers)),
		metrics: make([]domain.DashboardMetric, 0, len(file.DashboardMetrics)),
	}
	for _, rec := range file.Items {
		cat.items = append(cat.items, domain.Item{
			ID:          rec.ID,
			Description: rec.Description,
			Unit:        rec.Unit,
			Quantity:    rec.Quantity,
			UnitPrice:   rec.UnitPrice,
			Category:    rec.Category,
		})
	}
	for _, rec := range file.CompanyOffers {
		cat.offers = append(cat.offers, domain.CompanyOffer{
			Company:    rec.Company,
			Total:      rec.Total,
			Score:      rec.Score,
			Highlights: rec.Highlights,
		})
	}
	for _, rec := range file.DashboardMetrics {
		cat.metrics = append(cat.metrics, domain.DashboardMetric{
			Label:   rec.Label,
			Value:   rec.Value,
			Trend:   rec.Trend,
			Variant: rec.Variant,
		})
	}
	return cat, nil
}

// Items returns a copy so callers can annotate items without mutating the seed.
func (c *Catalog) Items() []domain.Item {
	out := make([]domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) CompanyOffers() []domain.CompanyOffer {
	out := make([]domain.CompanyOffer, len(c.offers))
	copy(out, c.offers)
	return out
}

func (c *Catalog) DashboardMetrics() []domain.DashboardMetric {
	out := make([]domain.DashboardMetric, len(c.metrics))
	copy(out, c.metrics)
	return out
}
