package domain

// CategoryAggregate accumulates quantity and monetary totals for one category.
type CategoryAggregate struct {
	Quantity float64 `json:"quantity"`
	Total    float64 `json:"total"`
}

// AggregateByCategory groups items by category and sums quantity and
// quantity×unitPrice per bucket. Pure and order-independent.
func AggregateByCategory(items []Item) map[string]CategoryAggregate {
	out := make(map[string]CategoryAggregate, len(items))
	for _, item := range items {
		bucket := out[item.Category]
		bucket.Quantity += item.Quantity
		bucket.Total += item.Total()
		out[item.Category] = bucket
	}
	return out
}

// AnalyticsReport is the server-rendered summary of the current catalog.
type AnalyticsReport struct {
	Items            []Item                       `json:"items"`
	CategoryTotals   map[string]CategoryAggregate `json:"categoryTotals"`
	CompanyOffers    []CompanyOffer               `json:"companyOffers"`
	DashboardMetrics []DashboardMetric            `json:"dashboardMetrics"`
	TotalValue       float64                      `json:"totalValue"`
}

// TotalValue sums quantity×unitPrice across all items.
func TotalValue(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.Total()
	}
	return total
}
