package ports

import (
	"context"

	"github.com/azocr/boq-insight/internal/core/domain"
)

// UploadOrchestrator is the inbound contract for upload processing.
type UploadOrchestrator interface {
	BuildUploadResult(fileName string, size int64, contentType string, content []byte) domain.UploadResult
}

// ItemSearcher resolves a text query against the remote index or the local
// catalog fallback.
type ItemSearcher interface {
	Search(ctx context.Context, query string) (domain.SearchResult, error)
}

// FileLister lists remote files or the demo fallback set.
type FileLister interface {
	List(ctx context.Context) (domain.DriveListing, error)
}

// DocumentScanner produces OCR insight for an uploaded buffer.
type DocumentScanner interface {
	Scan(ctx context.Context, content []byte) domain.OcrInsight
}

// ReportBuilder renders the dashboard summary.
type ReportBuilder interface {
	Report() domain.AnalyticsReport
}

// RowNormalizer maps raw spreadsheet rows onto canonical line items.
type RowNormalizer interface {
	NormalizeRows(content []byte) ([]domain.Item, error)
}
