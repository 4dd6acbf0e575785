// Package gdrive lists file metadata from Google Drive using a read-only
// service account.
package gdrive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2/google"

	"github.com/azocr/boq-insight/internal/core/domain"
	"github.com/azocr/boq-insight/internal/infrastructure/resilience"
)

const (
	filesEndpoint = "https://www.googleapis.com/drive/v3/files"
	readonlyScope = "https://www.googleapis.com/auth/drive.readonly"

	folderMimeType = "application/vnd.google-apps.folder"
)

type Client struct {
	httpClient *http.Client
	breaker    *resilience.Breaker
}

// New builds an authorized client from service-account credentials JSON.
// The token source is constructed once and reused across requests.
func New(ctx context.Context, credentialsJSON []byte, breaker *resilience.Breaker) (*Client, error) {
	conf, err := google.JWTConfigFromJSON(credentialsJSON, readonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parse drive service account: %w", err)
	}

	httpClient := conf.Client(ctx)
	httpClient.Timeout = 15 * time.Second

	return &Client{
		httpClient: httpClient,
		breaker:    breaker,
	}, nil
}

// ListFiles returns up to limit non-folder files, most recently modified
// first.
func (c *Client) ListFiles(ctx context.Context, limit int) ([]domain.DriveFile, error) {
	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(limit))
	params.Set("fields", "files(id, name, mimeType, size, webViewLink)")
	params.Set("q", fmt.Sprintf("mimeType!='%s'", folderMimeType))
	params.Set("orderBy", "modifiedTime desc")

	var files []domain.DriveFile
	err := c.breaker.Do(ctx, "drive.list", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, filesEndpoint+"?"+params.Encode(), nil)
		if err != nil {
			return fmt.Errorf("create list request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("drive list request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			if msg := strings.TrimSpace(string(body)); msg != "" {
				return fmt.Errorf("drive list status: %s: %s", resp.Status, msg)
			}
			return fmt.Errorf("drive list status: %s", resp.Status)
		}

		var listResp struct {
			Files []struct {
				ID          string `json:"id"`
				Name        string `json:"name"`
				MimeType    string `json:"mimeType"`
				Size        string `json:"size"`
				WebViewLink string `json:"webViewLink"`
			} `json:"files"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
			return fmt.Errorf("decode list response: %w", err)
		}

		files = make([]domain.DriveFile, 0, len(listResp.Files))
		for _, f := range listResp.Files {
			files = append(files, domain.DriveFile{
				ID:          f.ID,
				Name:        f.Name,
				MimeType:    f.MimeType,
				Size:        f.Size,
				WebViewLink: f.WebViewLink,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
