package usecase

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/azocr/boq-insight/internal/core/domain"
	"github.com/azocr/boq-insight/internal/core/ports"
)

const (
	remoteAmountsCap   = 50
	fallbackAmountsCap = 20
	previewWindow      = 240

	previewPrefix     = "معاينة أولية من المحتوى: "
	emptyPreviewText  = "تعذر استخراج نص واضح من الملف، تم استخدام عينة الرأس فقط."
	noRemoteTextFound = "لم يتم العثور على نص واضح في المستند."
)

var ocrLanguageHints = []string{"ar", "en"}

var pdfMagic = []byte("%PDF")

// VisionUseCase submits a buffer to the remote OCR service when configured
// and degrades to a local text/number preview when the service is missing or
// the call fails.
type VisionUseCase struct {
	ocr       ports.VisionOCR
	extractor ports.NumericFieldExtractor
	pdfText   ports.PlainTextExtractor
}

// NewVisionUseCase accepts a nil ocr client (unconfigured) and a nil pdfText
// extractor (the fallback then always previews raw header bytes).
func NewVisionUseCase(ocr ports.VisionOCR, extractor ports.NumericFieldExtractor, pdfText ports.PlainTextExtractor) *VisionUseCase {
	return &VisionUseCase{
		ocr:       ocr,
		extractor: extractor,
		pdfText:   pdfText,
	}
}

func (uc *VisionUseCase) Scan(ctx context.Context, content []byte) domain.OcrInsight {
	if uc.ocr == nil {
		return uc.fallbackInsight(content)
	}

	scan, err := uc.ocr.DetectDocumentText(ctx, content, ocrLanguageHints)
	if err != nil {
		slog.Warn("remote ocr failed, serving local preview", "error", err)
		return uc.fallbackInsight(content)
	}

	text := scan.Text
	amounts := uc.extractor.ScanTokens(text, remoteAmountsCap)
	if text == "" {
		text = noRemoteTextFound
	}
	return domain.OcrInsight{
		Text:          text,
		Amounts:       amounts,
		PageCount:     scan.PageCount,
		LanguageHints: ocrLanguageHints,
		UsedFallback:  false,
	}
}

func (uc *VisionUseCase) fallbackInsight(content []byte) domain.OcrInsight {
	preview := uc.previewText(content)
	amounts := uc.extractor.ScanTokens(preview, fallbackAmountsCap)

	text := emptyPreviewText
	if preview != "" {
		text = previewPrefix + preview
	}
	return domain.OcrInsight{
		Text:          text,
		Amounts:       amounts,
		PageCount:     1,
		LanguageHints: ocrLanguageHints,
		UsedFallback:  true,
	}
}

// previewText decodes the header window as text. PDF buffers get a real
// plain-text pass first since their raw header is binary noise.
func (uc *VisionUseCase) previewText(content []byte) string {
	if uc.pdfText != nil && bytes.HasPrefix(content, pdfMagic) {
		if text, err := uc.pdfText.PlainText(content); err == nil && text != "" {
			if len(text) > previewWindow {
				text = text[:previewWindow]
			}
			return text
		}
	}

	window := content
	if len(window) > previewWindow {
		window = window[:previewWindow]
	}
	return string(window)
}
