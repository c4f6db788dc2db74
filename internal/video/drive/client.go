package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/weddingspa/service/internal/upstream"
)

const provider = "drive"

// File is the subset of a Drive file resource used by the listing.
type File struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ThumbnailLink string `json:"thumbnailLink"`
}

// FileMetadata is the body of a resumable upload initiation.
type FileMetadata struct {
	Name          string            `json:"name"`
	MimeType      string            `json:"mimeType"`
	Parents       []string          `json:"parents,omitempty"`
	AppProperties map[string]string `json:"appProperties,omitempty"`
}

// Client issues raw Drive v3 REST calls with a caller-supplied bearer token.
type Client struct {
	http    *http.Client
	apiBase string
}

// NewClient creates a Client rooted at apiBase (https://www.googleapis.com in production).
func NewClient(apiBase string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = upstream.NewHTTPClient()
	}
	return &Client{http: httpClient, apiBase: strings.TrimRight(apiBase, "/")}
}

// StartResumableUpload opens an upload session and returns its location URL.
func (c *Client) StartResumableUpload(ctx context.Context, token string, meta FileMetadata) (string, error) {
	body, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("drive: encode metadata: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/upload/drive/v3/files?uploadType=resumable", token, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	req.Header.Set("X-Upload-Content-Type", meta.MimeType)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("drive: start upload: %w", err)
	}
	defer resp.Body.Close()

	if err := upstream.Check(provider, resp); err != nil {
		return "", fmt.Errorf("start upload: %w", err)
	}
	location := resp.Header.Get("Location")
	if location == "" {
		return "", fmt.Errorf("start upload: %s: no session location", provider)
	}
	return location, nil
}

// ListByDevice returns untrashed files in folderID tagged with deviceID.
func (c *Client) ListByDevice(ctx context.Context, token, folderID, deviceID string) ([]File, error) {
	q := url.Values{
		"q":      {DeviceQuery(folderID, deviceID)},
		"fields": {"files(id, name, thumbnailLink)"},
		"spaces": {"drive"},
	}
	var out struct {
		Files []File `json:"files"`
	}
	if err := c.getJSON(ctx, "/drive/v3/files?"+q.Encode(), token, &out); err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return out.Files, nil
}

// AppProperties returns the application-scoped properties of a file.
func (c *Client) AppProperties(ctx context.Context, token, fileID string) (map[string]string, error) {
	var out struct {
		AppProperties map[string]string `json:"appProperties"`
	}
	if err := c.getJSON(ctx, "/drive/v3/files/"+url.PathEscape(fileID)+"?fields=appProperties", token, &out); err != nil {
		return nil, fmt.Errorf("get file properties: %w", err)
	}
	return out.AppProperties, nil
}

// Delete permanently removes a file.
func (c *Client) Delete(ctx context.Context, token, fileID string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/drive/v3/files/"+url.PathEscape(fileID), token, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("drive: delete file: %w", err)
	}
	defer resp.Body.Close()

	if err := upstream.Check(provider, resp); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

// DeviceQuery builds the Drive search expression for a device's videos.
func DeviceQuery(folderID, deviceID string) string {
	return fmt.Sprintf("'%s' in parents and appProperties has { key='deviceId' and value='%s' } and trashed = false",
		quoteEscape(folderID), quoteEscape(deviceID))
}

func quoteEscape(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `'`, `\'`)
}

func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", provider, err)
	}
	defer resp.Body.Close()

	if err := upstream.Check(provider, resp); err != nil {
		return err
	}
	return upstream.DecodeJSON(provider, resp, out)
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", provider, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req, nil
}
