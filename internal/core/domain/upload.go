package domain

// UploadResult is built once per upload request and never persisted.
type UploadResult struct {
	FileName        string    `json:"fileName"`
	Size            int64     `json:"size"`
	Type            string    `json:"type"`
	ExtractedText   string    `json:"extractedText"`
	NumericFields   []float64 `json:"numericFields"`
	NormalizedItems []Item    `json:"normalizedItems"`
}

// OcrInsight is the outcome of one OCR request. UsedFallback reports whether
// the local heuristic produced it instead of the remote service.
type OcrInsight struct {
	Text          string    `json:"text"`
	Amounts       []float64 `json:"amounts"`
	PageCount     int       `json:"pageCount"`
	LanguageHints []string  `json:"languageHints"`
	UsedFallback  bool      `json:"usedFallback"`
}

type SearchResult struct {
	Items        []Item `json:"items"`
	UsedFallback bool   `json:"usedFallback"`
}

type DriveListing struct {
	Files        []DriveFile `json:"files"`
	UsedFallback bool        `json:"usedFallback"`
}

// DocumentScan is the raw outcome of remote document text detection.
type DocumentScan struct {
	Text      string
	PageCount int
}
