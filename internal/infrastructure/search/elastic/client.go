// Package elastic talks to the remote full-text index over its REST API.
package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/azocr/boq-insight/internal/core/domain"
	"github.com/azocr/boq-insight/internal/infrastructure/resilience"
)

type Client struct {
	baseURL    string
	index      string
	apiKey     string
	httpClient *http.Client
	breaker    *resilience.Breaker
}

func New(baseURL, index, apiKey string, breaker *resilience.Breaker) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		index:      index,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		breaker:    breaker,
	}
}

// IndexItems bulk-upserts items keyed by their identifier.
func (c *Client) IndexItems(ctx context.Context, items []domain.Item) error {
	if len(items) == 0 {
		return nil
	}

	var body bytes.Buffer
	encoder := json.NewEncoder(&body)
	for _, item := range items {
		action := map[string]any{
			"index": map[string]any{
				"_index": c.index,
				"_id":    item.ID,
			},
		}
		if err := encoder.Encode(action); err != nil {
			return fmt.Errorf("encode bulk action: %w", err)
		}
		if err := encoder.Encode(item); err != nil {
			return fmt.Errorf("encode bulk document: %w", err)
		}
	}

	return c.breaker.Do(ctx, "elastic.bulk", func(ctx context.Context) error {
		url := fmt.Sprintf("%s/_bulk", c.baseURL)
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body.Bytes()))
		if err != nil {
			return fmt.Errorf("create bulk request: %w", err)
		}
		req.Header.Set("Content-Type", "application/x-ndjson")
		c.authorize(req)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("elastic bulk request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			return formatStatusError("bulk", resp)
		}

		var bulkResp struct {
			Errors bool `json:"errors"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&bulkResp); err != nil {
			return fmt.Errorf("decode bulk response: %w", err)
		}
		if bulkResp.Errors {
			return fmt.Errorf("elastic bulk reported item errors")
		}
		return nil
	})
}

// Search runs a multi-field fuzzy match weighted toward the description.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.Item, error) {
	reqBody := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"description^3", "category", "id"},
				"fuzziness": "AUTO",
			},
		},
		"size": limit,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal search body: %w", err)
	}

	var items []domain.Item
	err = c.breaker.Do(ctx, "elastic.search", func(ctx context.Context) error {
		url := fmt.Sprintf("%s/%s/_search", c.baseURL, c.index)
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("create search request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		c.authorize(req)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("elastic search request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			return formatStatusError("search", resp)
		}

		var searchResp struct {
			Hits struct {
				Hits []struct {
					Source domain.Item `json:"_source"`
				} `json:"hits"`
			} `json:"hits"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
			return fmt.Errorf("decode search response: %w", err)
		}

		items = make([]domain.Item, 0, len(searchResp.Hits.Hits))
		for _, hit := range searchResp.Hits.Hits {
			if hit.Source.ID == "" {
				continue
			}
			items = append(items, hit.Source)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "ApiKey "+c.apiKey)
	}
}

func formatStatusError(operation string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return fmt.Errorf("elastic %s status: %s", operation, resp.Status)
	}
	return fmt.Errorf("elastic %s status: %s: %s", operation, resp.Status, msg)
}
