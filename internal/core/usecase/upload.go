package usecase

import (
	"github.com/azocr/boq-insight/internal/core/domain"
	"github.com/azocr/boq-insight/internal/core/ports"
)

// uploadSummary is the fixed human-readable note attached to every upload
// result. Real text extraction happens only on the OCR path.
const uploadSummary = "نموذج لاستخراج النصوص والأرقام من ملفات PDF أو Excel باستخدام OCR و DocumentAI. " +
	"تمت قراءة رأس الملف وتحويله إلى سمات منظمة جاهزة للتحليل."

// UploadUseCase composes the numeric extractor and the item normalizer into a
// single upload-result record. Neither sub-step can fail, so the result is
// total over any input the boundary lets through.
type UploadUseCase struct {
	extractor  ports.NumericFieldExtractor
	normalizer *Normalizer
}

func NewUploadUseCase(extractor ports.NumericFieldExtractor, normalizer *Normalizer) *UploadUseCase {
	return &UploadUseCase{
		extractor:  extractor,
		normalizer: normalizer,
	}
}

func (uc *UploadUseCase) BuildUploadResult(fileName string, size int64, contentType string, content []byte) domain.UploadResult {
	return domain.UploadResult{
		FileName:        fileName,
		Size:            size,
		Type:            contentType,
		ExtractedText:   uploadSummary,
		NumericFields:   uc.extractor.Fields(content),
		NormalizedItems: uc.normalizer.NormalizeUpload(fileName),
	}
}
