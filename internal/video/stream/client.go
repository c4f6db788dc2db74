// Package stream brokers direct creator uploads to the video hosting
// provider (Cloudflare Stream) and lists the videos tagged with a device.
package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/weddingspa/service/internal/upstream"
)

const provider = "stream"

// MaxDurationSeconds caps each guest clip.
const MaxDurationSeconds = 120

// ErrNotConfigured is returned when the account id or API token is missing.
var ErrNotConfigured = errors.New("stream: account credentials are not configured")

// Client talks to the provider's REST API for a single account.
type Client struct {
	http      *http.Client
	baseURL   string
	accountID string
	token     string
}

// NewClient creates a Client. A nil httpClient falls back to upstream.NewHTTPClient.
func NewClient(baseURL, accountID, apiToken string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = upstream.NewHTTPClient()
	}
	return &Client{
		http:      httpClient,
		baseURL:   strings.TrimRight(baseURL, "/"),
		accountID: accountID,
		token:     apiToken,
	}
}

// Configured reports whether the account credentials are present.
func (c *Client) Configured() bool {
	return c.accountID != "" && c.token != ""
}

// DirectUpload is a provider-issued one-time upload slot.
type DirectUpload struct {
	UID       string `json:"uid"`
	UploadURL string `json:"uploadURL"`
}

// Video is the subset of a provider video record the front-end needs.
type Video struct {
	UID       string `json:"uid"`
	Preview   string `json:"preview"`
	Thumbnail string `json:"thumbnail"`
	Playback  struct {
		HLS  string `json:"hls"`
		DASH string `json:"dash"`
	} `json:"playback"`
	Status struct {
		State string `json:"state"`
	} `json:"status"`
}

type envelope[T any] struct {
	Success bool `json:"success"`
	Result  T    `json:"result"`
}

type directUploadRequest struct {
	MaxDurationSeconds int               `json:"maxDurationSeconds"`
	Creator            string            `json:"creator"`
	Meta               map[string]string `json:"meta"`
}

// CreateDirectUpload asks for a one-time upload URL whose video is tagged
// with creator and carries meta.
func (c *Client) CreateDirectUpload(ctx context.Context, creator string, meta map[string]string) (*DirectUpload, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	body, err := json.Marshal(directUploadRequest{
		MaxDurationSeconds: MaxDurationSeconds,
		Creator:            creator,
		Meta:               meta,
	})
	if err != nil {
		return nil, fmt.Errorf("stream: encode request: %w", err)
	}

	var out envelope[DirectUpload]
	if err := c.do(ctx, http.MethodPost, c.accountURL("/stream/direct_upload"), bytes.NewReader(body), &out); err != nil {
		return nil, fmt.Errorf("create direct upload: %w", err)
	}
	if out.Result.UploadURL == "" {
		return nil, fmt.Errorf("create direct upload: %s: empty upload URL", provider)
	}
	return &out.Result, nil
}

// ListByCreator returns the videos whose creator tag equals creator.
func (c *Client) ListByCreator(ctx context.Context, creator string) ([]Video, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	q := url.Values{"creator": {creator}}

	var out envelope[[]Video]
	if err := c.do(ctx, http.MethodGet, c.accountURL("/stream")+"?"+q.Encode(), nil, &out); err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return out.Result, nil
}

func (c *Client) accountURL(path string) string {
	return c.baseURL + "/accounts/" + url.PathEscape(c.accountID) + path
}

func (c *Client) do(ctx context.Context, method, target string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", provider, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

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
