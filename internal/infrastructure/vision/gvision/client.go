// Package gvision submits document buffers to the Google Cloud Vision
// images:annotate API for document text detection.
package gvision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/azocr/boq-insight/internal/core/domain"
	"github.com/azocr/boq-insight/internal/infrastructure/resilience"
)

const (
	annotateEndpoint = "https://vision.googleapis.com/v1/images:annotate"
	visionScope      = "https://www.googleapis.com/auth/cloud-platform"
)

type Client struct {
	httpClient *http.Client
	breaker    *resilience.Breaker
}

// New builds an authorized client from Google Cloud credentials JSON. The
// token source is constructed once and reused across requests.
func New(ctx context.Context, credentialsJSON []byte, breaker *resilience.Breaker) (*Client, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, visionScope)
	if err != nil {
		return nil, fmt.Errorf("parse vision credentials: %w", err)
	}

	httpClient := oauth2.NewClient(ctx, creds.TokenSource)
	httpClient.Timeout = 30 * time.Second

	return &Client{
		httpClient: httpClient,
		breaker:    breaker,
	}, nil
}

// DetectDocumentText runs DOCUMENT_TEXT_DETECTION over the buffer with the
// given language hints.
func (c *Client) DetectDocumentText(ctx context.Context, content []byte, languageHints []string) (domain.DocumentScan, error) {
	reqBody := map[string]any{
		"requests": []map[string]any{
			{
				"image": map[string]any{
					"content": base64.StdEncoding.EncodeToString(content),
				},
				"features": []map[string]any{
					{"type": "DOCUMENT_TEXT_DETECTION"},
				},
				"imageContext": map[string]any{
					"languageHints": languageHints,
				},
			},
		},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return domain.DocumentScan{}, fmt.Errorf("marshal annotate body: %w", err)
	}

	var scan domain.DocumentScan
	err = c.breaker.Do(ctx, "vision.annotate", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, annotateEndpoint, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("create annotate request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("vision annotate request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			if msg := strings.TrimSpace(string(raw)); msg != "" {
				return fmt.Errorf("vision annotate status: %s: %s", resp.Status, msg)
			}
			return fmt.Errorf("vision annotate status: %s", resp.Status)
		}

		var annotateResp struct {
			Responses []struct {
				FullTextAnnotation struct {
					Text  string           `json:"text"`
					Pages []map[string]any `json:"pages"`
				} `json:"fullTextAnnotation"`
				Error struct {
					Message string `json:"message"`
				} `json:"error"`
			} `json:"responses"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&annotateResp); err != nil {
			return fmt.Errorf("decode annotate response: %w", err)
		}
		if len(annotateResp.Responses) == 0 {
			return fmt.Errorf("vision annotate returned no responses")
		}

		first := annotateResp.Responses[0]
		if first.Error.Message != "" {
			return fmt.Errorf("vision annotate error: %s", first.Error.Message)
		}

		scan = domain.DocumentScan{
			Text:      first.FullTextAnnotation.Text,
			PageCount: len(first.FullTextAnnotation.Pages),
		}
		return nil
	})
	if err != nil {
		return domain.DocumentScan{}, err
	}
	return scan, nil
}
