// Package upstream holds the small amount of plumbing shared by the clients
// that talk to third-party HTTP APIs (video hosting, Drive, email).
package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrorBodyLimit bounds how much of a failed response is kept for logging.
const ErrorBodyLimit = 4 << 10

// SuccessBodyLimit bounds a decoded success response.
const SuccessBodyLimit = 1 << 20

// DefaultTimeout is applied to clients built by NewHTTPClient.
const DefaultTimeout = 30 * time.Second

// StatusError reports a non-success response from a provider. Body is meant
// for server-side logs only.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
}

// ResponseTooLargeError reports that the response body exceeded the limit.
type ResponseTooLargeError struct {
	Limit int64
}

func (e ResponseTooLargeError) Error() string {
	return fmt.Sprintf("response body exceeded limit of %d bytes", e.Limit)
}

// NewHTTPClient returns an http.Client with DefaultTimeout.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}

// ReadAllWithLimit reads r up to limit bytes. If limit <= 0 it behaves like io.ReadAll.
func ReadAllWithLimit(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	lr := &io.LimitedReader{R: r, N: limit + 1}
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, ResponseTooLargeError{Limit: limit}
	}
	return data, nil
}

// Check returns a *StatusError carrying a truncated body when resp is not 2xx.
func Check(provider string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, ErrorBodyLimit))
	return &StatusError{Provider: provider, StatusCode: resp.StatusCode, Body: string(body)}
}

// DecodeJSON decodes a successful JSON response body into v. Bodies larger
// than SuccessBodyLimit fail with ResponseTooLargeError.
func DecodeJSON(provider string, resp *http.Response, v any) error {
	data, err := ReadAllWithLimit(resp.Body, SuccessBodyLimit)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", provider, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: decode response: %w", provider, err)
	}
	return nil
}

// Detail returns the provider body of err, if err wraps a *StatusError.
func Detail(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Body
	}
	return ""
}
