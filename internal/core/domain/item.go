package domain

// Item is a priced line item from a bill of quantities.
type Item struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Category    string  `json:"category"`
}

// Total is derived at read time, never stored.
func (i Item) Total() float64 {
	return i.Quantity * i.UnitPrice
}

// WithProvenance returns a copy whose description records the source that
// produced or touched the item.
func (i Item) WithProvenance(suffix string) Item {
	out := i
	out.Description = i.Description + suffix
	return out
}

type CompanyOffer struct {
	Company    string   `json:"company"`
	Total      float64  `json:"total"`
	Score      float64  `json:"score"`
	Highlights []string `json:"highlights"`
}

type DashboardMetric struct {
	Label   string  `json:"label"`
	Value   string  `json:"value"`
	Trend   float64 `json:"trend"`
	Variant string  `json:"variant,omitempty"`
}

// DriveFile mirrors the remote file store's metadata. Size stays a string
// because the store may omit it entirely.
type DriveFile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MimeType    string `json:"mimeType"`
	Size        string `json:"size,omitempty"`
	WebViewLink string `json:"webViewLink,omitempty"`
}
