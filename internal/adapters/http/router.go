package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/azocr/boq-insight/internal/config"
	"github.com/azocr/boq-insight/internal/core/domain"
	"github.com/azocr/boq-insight/internal/core/ports"
	"github.com/azocr/boq-insight/internal/observability/metrics"
)

// Localized boundary rejections, matching the client-facing language.
const (
	msgNoFileReceived  = "لم يتم استلام أي ملف"
	msgAttachPDFOrScan = "يرجى إرفاق ملف PDF أو صورة"
	msgBadWorkbook     = "تعذر قراءة جدول البيانات"
)

const serviceName = "api"

type Router struct {
	cfg     config.Config
	metrics *metrics.HTTPServerMetrics

	uploader ports.UploadOrchestrator
	searcher ports.ItemSearcher
	lister   ports.FileLister
	scanner  ports.DocumentScanner
	reports  ports.ReportBuilder
	rows     ports.RowNormalizer
	exporter ports.ReportExporter
}

func NewRouter(
	cfg config.Config,
	m *metrics.HTTPServerMetrics,
	uploader ports.UploadOrchestrator,
	searcher ports.ItemSearcher,
	lister ports.FileLister,
	scanner ports.DocumentScanner,
	reports ports.ReportBuilder,
	rows ports.RowNormalizer,
	exporter ports.ReportExporter,
) *Router {
	return &Router{
		cfg:      cfg,
		metrics:  m,
		uploader: uploader,
		searcher: searcher,
		lister:   lister,
		scanner:  scanner,
		reports:  reports,
		rows:     rows,
		exporter: exporter,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/analytics", rt.analytics)
	mux.HandleFunc("/analytics/export", rt.analyticsExport)
	mux.HandleFunc("/search", rt.search)
	mux.HandleFunc("/drive", rt.drive)
	mux.HandleFunc("/upload", rt.upload)
	mux.HandleFunc("/vision", rt.vision)
	mux.HandleFunc("/normalize", rt.normalize)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	handler = rateLimitMiddleware(handler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) analytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, rt.reports.Report())
}

func (rt *Router) analyticsExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}

	data, err := rt.exporter.AnalyticsWorkbook(rt.reports.Report())
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="analytics.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (rt *Router) search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}

	query := r.URL.Query().Get("q")
	if strings.TrimSpace(query) == "" {
		// Blank queries never reach the gateway.
		writeJSON(w, http.StatusOK, domain.SearchResult{Items: []domain.Item{}, UsedFallback: true})
		return
	}

	result, err := rt.searcher.Search(r.Context(), query)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	rt.recordGateway("search", result.UsedFallback)
	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) drive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}

	listing, err := rt.lister.List(r.Context())
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	rt.recordGateway("drive", listing.UsedFallback)
	writeJSON(w, http.StatusOK, listing)
}

func (rt *Router) upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	ctx, cancel := requestCeiling(r, rt.cfg.UploadTimeoutSeconds)
	defer cancel()
	r = r.WithContext(ctx)

	fileName, contentType, content, ok := readMultipartFile(w, r, msgNoFileReceived)
	if !ok {
		return
	}

	result := rt.uploader.BuildUploadResult(fileName, int64(len(content)), contentType, content)
	if rt.metrics != nil {
		rt.metrics.RecordUpload(serviceName, len(result.NumericFields))
	}
	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) vision(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	ctx, cancel := requestCeiling(r, rt.cfg.VisionTimeoutSeconds)
	defer cancel()
	r = r.WithContext(ctx)

	_, _, content, ok := readMultipartFile(w, r, msgAttachPDFOrScan)
	if !ok {
		return
	}

	insight := rt.scanner.Scan(r.Context(), content)
	rt.recordGateway("vision", insight.UsedFallback)
	writeJSON(w, http.StatusOK, insight)
}

func (rt *Router) normalize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	_, _, content, ok := readMultipartFile(w, r, msgNoFileReceived)
	if !ok {
		return
	}

	items, err := rt.rows.NormalizeRows(content)
	if err != nil {
		status := mapErrorToHTTPStatus(err)
		if status == http.StatusBadRequest {
			writeJSON(w, status, map[string]string{"message": msgBadWorkbook})
			return
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (rt *Router) recordGateway(gateway string, usedFallback bool) {
	if rt.metrics == nil {
		return
	}
	rt.metrics.RecordGatewayOutcome(serviceName, gateway, usedFallback)
}

// readMultipartFile pulls the mandatory "file" form field and rejects the
// request with a localized 400 when it is missing or unreadable.
func readMultipartFile(w http.ResponseWriter, r *http.Request, rejection string) (fileName, contentType string, content []byte, ok bool) {
	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": rejection})
		return "", "", nil, false
	}
	defer file.Close()

	content, err = io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": rejection})
		return "", "", nil, false
	}

	contentType = fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return fileHeader.Filename, contentType, content, true
}

// requestCeiling bounds one request by the configured time ceiling. The core
// carries no timeout logic of its own; exceeding the ceiling abandons the
// request at this boundary.
func requestCeiling(r *http.Request, seconds int) (context.Context, context.CancelFunc) {
	if seconds <= 0 {
		return r.Context(), func() {}
	}
	return context.WithTimeout(r.Context(), time.Duration(seconds)*time.Second)
}

func writeMethodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
