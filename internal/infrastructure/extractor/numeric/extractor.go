// Package numeric recovers plausible numeric values from raw upload bytes.
// It is a heuristic proxy for document parsing: a structured token scan over
// the header text, with a raw byte-value sampling fallback so some numeric
// signal comes back regardless of format.
package numeric

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	// headerWindow bounds the text scan to the file header.
	headerWindow = 512
	// byteWindow bounds the raw byte sampling fallback.
	byteWindow = 256
	// promotionThreshold is the minimum token count for the text scan to win.
	promotionThreshold = 5
	// maxFields caps the returned sequence.
	maxFields = 25
)

var tokenPattern = regexp.MustCompile(`[-+]?[0-9]*\.?[0-9]+`)

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// ScanTokens extracts numeric tokens from text in source order, capped at
// limit (0 means uncapped). Comma grouping characters are stripped before
// parsing and tokens that do not parse to a finite number are dropped.
func (e *Extractor) ScanTokens(text string, limit int) []float64 {
	matches := tokenPattern.FindAllString(text, -1)
	out := make([]float64, 0, len(matches))
	for _, token := range matches {
		value, err := strconv.ParseFloat(strings.ReplaceAll(token, ",", ""), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		out = append(out, value)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// Fields derives up to 25 numeric values from a raw buffer. The header text
// scan wins when it recovers at least 5 tokens; otherwise the first 256 raw
// byte values above zero are used. Never fails: any buffer yields a finite,
// possibly empty sequence.
func (e *Extractor) Fields(content []byte) []float64 {
	head := content
	if len(head) > headerWindow {
		head = head[:headerWindow]
	}

	fromHeader := e.ScanTokens(string(head), 0)
	if len(fromHeader) >= promotionThreshold {
		if len(fromHeader) > maxFields {
			fromHeader = fromHeader[:maxFields]
		}
		return fromHeader
	}

	window := content
	if len(window) > byteWindow {
		window = window[:byteWindow]
	}
	out := make([]float64, 0, maxFields)
	for _, b := range window {
		if b == 0 {
			continue
		}
		out = append(out, float64(b))
		if len(out) >= maxFields {
			break
		}
	}
	return out
}
