package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/azocr/boq-insight/internal/config"
	"github.com/azocr/boq-insight/internal/core/ports"
	"github.com/azocr/boq-insight/internal/core/usecase"
	"github.com/azocr/boq-insight/internal/infrastructure/catalog"
	"github.com/azocr/boq-insight/internal/infrastructure/drive/gdrive"
	"github.com/azocr/boq-insight/internal/infrastructure/extractor/numeric"
	"github.com/azocr/boq-insight/internal/infrastructure/extractor/pdftext"
	"github.com/azocr/boq-insight/internal/infrastructure/extractor/spreadsheet"
	"github.com/azocr/boq-insight/internal/infrastructure/report/xlsx"
	"github.com/azocr/boq-insight/internal/infrastructure/resilience"
	"github.com/azocr/boq-insight/internal/infrastructure/search/elastic"
	"github.com/azocr/boq-insight/internal/infrastructure/vision/gvision"
	"github.com/azocr/boq-insight/internal/observability/metrics"
)

type App struct {
	Config  config.Config
	Metrics *metrics.HTTPServerMetrics

	Upload    ports.UploadOrchestrator
	Search    ports.ItemSearcher
	Drive     ports.FileLister
	Vision    ports.DocumentScanner
	Analytics ports.ReportBuilder
	Rows      ports.RowNormalizer
	Exporter  ports.ReportExporter
}

// New wires every gateway once at startup. Remote clients are built only
// when their configuration is present; a nil client pins the gateway to its
// local fallback for the process lifetime.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load reference catalog: %w", err)
	}

	breaker := resilience.NewBreaker(resilience.Config{
		MinRequests:      uint32(cfg.BreakerMinRequests),
		FailureRatio:     cfg.BreakerFailureRatio,
		OpenTimeout:      time.Duration(cfg.BreakerOpenTimeoutSecs) * time.Second,
		HalfOpenMaxCalls: uint32(cfg.BreakerHalfOpenMaxCalls),
	})

	var searchIndex ports.SearchIndex
	if cfg.IsSearchConfigured() {
		client := elastic.New(cfg.ElasticURL, cfg.ElasticIndex, cfg.ElasticAPIKey, breaker)
		seedIndex(ctx, client, cat)
		searchIndex = client
	}

	var fileStore ports.FileStore
	if cfg.IsDriveConfigured() {
		client, err := gdrive.New(ctx, []byte(cfg.DriveServiceAccountJSON), breaker)
		if err != nil {
			slog.Error("drive client init failed, gateway pinned to demo files", "error", err)
		} else {
			fileStore = client
		}
	}

	var ocr ports.VisionOCR
	if cfg.IsVisionConfigured() {
		client, err := gvision.New(ctx, []byte(cfg.GoogleCloudCredentials), breaker)
		if err != nil {
			slog.Error("vision client init failed, gateway pinned to local preview", "error", err)
		} else {
			ocr = client
		}
	}

	extractor := numeric.NewExtractor()
	normalizer := usecase.NewNormalizer(cat)

	return &App{
		Config:  cfg,
		Metrics: metrics.NewHTTPServerMetrics("api"),

		Upload:    usecase.NewUploadUseCase(extractor, normalizer),
		Search:    usecase.NewSearchUseCase(searchIndex, cat),
		Drive:     usecase.NewDriveUseCase(fileStore),
		Vision:    usecase.NewVisionUseCase(ocr, extractor, pdftext.NewExtractor()),
		Analytics: usecase.NewAnalyticsUseCase(cat),
		Rows:      usecase.NewRowNormalizeUseCase(spreadsheet.NewReader()),
		Exporter:  xlsx.NewExporter(),
	}, nil
}

// seedIndex bulk-indexes the catalog so the remote index can answer from the
// same corpus the fallback uses. Best effort: a failure leaves the index
// empty but the service up.
func seedIndex(ctx context.Context, index ports.SearchIndex, cat *catalog.Catalog) {
	seedCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := index.IndexItems(seedCtx, cat.Items()); err != nil {
		slog.Warn("seeding search index failed", "error", err)
	}
}
