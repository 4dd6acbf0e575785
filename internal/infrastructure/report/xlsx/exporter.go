// Package xlsx renders the analytics report as a downloadable workbook.
package xlsx

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/azocr/boq-insight/internal/core/domain"
)

const (
	itemsSheet      = "Items"
	categoriesSheet = "Categories"
)

type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

// AnalyticsWorkbook writes items and per-category totals into a two-sheet
// workbook.
func (e *Exporter) AnalyticsWorkbook(report domain.AnalyticsReport) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	if err := file.SetSheetName(sheet, itemsSheet); err != nil {
		return nil, fmt.Errorf("rename items sheet: %w", err)
	}

	itemsHeader := []any{"code", "description", "unit", "qty", "unitPrice", "category", "total"}
	if err := file.SetSheetRow(itemsSheet, "A1", &itemsHeader); err != nil {
		return nil, fmt.Errorf("write items header: %w", err)
	}
	for i, item := range report.Items {
		row := []any{
			item.ID,
			item.Description,
			item.Unit,
			item.Quantity,
			item.UnitPrice,
			item.Category,
			item.Total(),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(itemsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write item row %d: %w", i+1, err)
		}
	}

	if _, err := file.NewSheet(categoriesSheet); err != nil {
		return nil, fmt.Errorf("create categories sheet: %w", err)
	}
	categoriesHeader := []any{"category", "quantity", "total"}
	if err := file.SetSheetRow(categoriesSheet, "A1", &categoriesHeader); err != nil {
		return nil, fmt.Errorf("write categories header: %w", err)
	}

	categories := make([]string, 0, len(report.CategoryTotals))
	for category := range report.CategoryTotals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for i, category := range categories {
		aggregate := report.CategoryTotals[category]
		row := []any{category, aggregate.Quantity, aggregate.Total}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(categoriesSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write category row %d: %w", i+1, err)
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
