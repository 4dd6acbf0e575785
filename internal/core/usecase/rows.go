package usecase

import (
	"fmt"
	"strconv"

	"github.com/azocr/boq-insight/internal/core/domain"
	"github.com/azocr/boq-insight/internal/core/ports"
)

// Defaults applied when a spreadsheet row omits a column.
const (
	unknownDescription = "بند غير معروف"
	defaultUnit        = "وحدة"
	defaultCategory    = "متنوع"
)

// RowNormalizeUseCase turns real workbook rows into canonical line items.
// Unlike the upload normalizer this path does read actual content; it covers
// spreadsheets exported with the code/description/unit/qty/unitPrice/category
// header convention.
type RowNormalizeUseCase struct {
	reader ports.SpreadsheetReader
}

func NewRowNormalizeUseCase(reader ports.SpreadsheetReader) *RowNormalizeUseCase {
	return &RowNormalizeUseCase{reader: reader}
}

func (uc *RowNormalizeUseCase) NormalizeRows(content []byte) ([]domain.Item, error) {
	rows, err := uc.reader.Rows(content)
	if err != nil {
		return nil, domain.WrapError(domain.ErrInvalidInput, "parse workbook", err)
	}

	items := make([]domain.Item, 0, len(rows))
	for idx, row := range rows {
		item := domain.Item{
			ID:          row["code"],
			Description: row["description"],
			Unit:        row["unit"],
			Quantity:    parseNumber(row["qty"]),
			UnitPrice:   parseNumber(row["unitPrice"]),
			Category:    row["category"],
		}
		if item.ID == "" {
			item.ID = fmt.Sprintf("XLS-%d", idx+1)
		}
		if item.Description == "" {
			item.Description = unknownDescription
		}
		if item.Unit == "" {
			item.Unit = defaultUnit
		}
		if item.Category == "" {
			item.Category = defaultCategory
		}
		items = append(items, item)
	}
	return items, nil
}

func parseNumber(raw string) float64 {
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}
