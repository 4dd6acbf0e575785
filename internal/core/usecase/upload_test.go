package usecase

import (
	"strings"
	"testing"
)

type extractorFake struct {
	fields []float64
	tokens []float64
	gotten [][]byte
}

func (f *extractorFake) Fields(content []byte) []float64 {
	f.gotten = append(f.gotten, content)
	return f.fields
}

func (f *extractorFake) ScanTokens(text string, limit int) []float64 {
	if limit < len(f.tokens) {
		return f.tokens[:limit]
	}
	return f.tokens
}

func TestBuildUploadResultComposesExtractorAndNormalizer(t *testing.T) {
	extractor := &extractorFake{fields: []float64{10, 45.5, 455}}
	uc := NewUploadUseCase(extractor, NewNormalizer(sevenItemCatalog()))

	content := []byte("qty:10 price:45.5 total:455")
	result := uc.BuildUploadResult("BOQ.pdf", int64(len(content)), "application/pdf", content)

	if result.FileName != "BOQ.pdf" {
		t.Fatalf("unexpected file name %q", result.FileName)
	}
	if result.Size != int64(len(content)) {
		t.Fatalf("expected size %d, got %d", len(content), result.Size)
	}
	if result.Type != "application/pdf" {
		t.Fatalf("unexpected type %q", result.Type)
	}
	if len(result.NumericFields) != 3 {
		t.Fatalf("expected 3 numeric fields, got %v", result.NumericFields)
	}
	if len(extractor.gotten) != 1 || string(extractor.gotten[0]) != string(content) {
		t.Fatalf("extractor did not receive the uploaded bytes")
	}
	if len(result.NormalizedItems) != 7 {
		t.Fatalf("expected 7 normalized items, got %d", len(result.NormalizedItems))
	}
	for idx, item := range result.NormalizedItems {
		if !strings.Contains(item.Description, "BOQ.pdf") {
			t.Fatalf("item %d missing source tag: %q", idx, item.Description)
		}
	}
	if result.ExtractedText == "" {
		t.Fatalf("expected a non-empty summary text")
	}
}

func TestBuildUploadResultEmptyContent(t *testing.T) {
	uc := NewUploadUseCase(&extractorFake{}, NewNormalizer(sevenItemCatalog()))

	result := uc.BuildUploadResult("empty.pdf", 0, "application/pdf", nil)
	if len(result.NumericFields) != 0 {
		t.Fatalf("expected no numeric fields, got %v", result.NumericFields)
	}
	if len(result.NormalizedItems) != 7 {
		t.Fatalf("normalization must not depend on content, got %d items", len(result.NormalizedItems))
	}
}
