package ports

import (
	"context"

	"github.com/azocr/boq-insight/internal/core/domain"
)

// SearchIndex is the remote full-text index over line items.
type SearchIndex interface {
	IndexItems(ctx context.Context, items []domain.Item) error
	Search(ctx context.Context, query string, limit int) ([]domain.Item, error)
}

// FileStore lists file metadata from the remote document store.
type FileStore interface {
	ListFiles(ctx context.Context, limit int) ([]domain.DriveFile, error)
}

// VisionOCR runs remote document text detection with language hints.
type VisionOCR interface {
	DetectDocumentText(ctx context.Context, content []byte, languageHints []string) (domain.DocumentScan, error)
}

// ItemCatalog is the static reference catalog used as normalization seed and
// local search corpus.
type ItemCatalog interface {
	Items() []domain.Item
	CompanyOffers() []domain.CompanyOffer
	DashboardMetrics() []domain.DashboardMetric
}

// NumericFieldExtractor derives numeric signal from raw upload bytes.
type NumericFieldExtractor interface {
	Fields(content []byte) []float64
	ScanTokens(text string, limit int) []float64
}

// ReportExporter renders an analytics report into a downloadable workbook.
type ReportExporter interface {
	AnalyticsWorkbook(report domain.AnalyticsReport) ([]byte, error)
}

// SpreadsheetReader extracts tabular rows from workbook bytes.
type SpreadsheetReader interface {
	Rows(content []byte) ([]map[string]string, error)
}

// PlainTextExtractor recovers plain text from structured document bytes.
type PlainTextExtractor interface {
	PlainText(content []byte) (string, error)
}
