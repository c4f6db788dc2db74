// Package rsvp relays RSVP form submissions to the couple's inbox through the
// transactional email provider (Resend).
package rsvp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/weddingspa/service/internal/upstream"
)

const provider = "resend"

// ErrNotConfigured is returned when the API key or the recipient is missing.
var ErrNotConfigured = errors.New("rsvp: email provider is not configured")

// Email is a single outbound message.
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Mailer sends email through the provider's REST API.
type Mailer struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

// NewMailer creates a Mailer. A nil httpClient falls back to upstream.NewHTTPClient.
func NewMailer(baseURL, apiKey string, httpClient *http.Client) *Mailer {
	if httpClient == nil {
		httpClient = upstream.NewHTTPClient()
	}
	return &Mailer{http: httpClient, baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey}
}

// Configured reports whether an API key is present.
func (m *Mailer) Configured() bool {
	return m.apiKey != ""
}

// Send delivers msg.
func (m *Mailer) Send(ctx context.Context, msg Email) error {
	if !m.Configured() {
		return ErrNotConfigured
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("rsvp: encode email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("rsvp: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.http.Do(req)
	if err != nil {
		return fmt.Errorf("rsvp: send email: %w", err)
	}
	defer resp.Body.Close()

	if err := upstream.Check(provider, resp); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
