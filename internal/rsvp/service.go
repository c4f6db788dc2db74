package rsvp

import (
	"context"
	"fmt"
	"html"
	"strings"
)

// Submission is an RSVP as entered by a guest.
type Submission struct {
	Name       string
	GuestCount string
	Comment    string
}

// Sender is the part of Mailer the service depends on.
type Sender interface {
	Configured() bool
	Send(ctx context.Context, msg Email) error
}

// Service turns submissions into notification emails.
type Service struct {
	sender Sender
	from   string
	to     string
}

// NewService creates a Service that mails from -> to.
func NewService(sender Sender, from, to string) *Service {
	return &Service{sender: sender, from: from, to: to}
}

// Configured reports whether both the provider and the recipient are set.
func (s *Service) Configured() bool {
	return s.sender.Configured() && s.to != ""
}

// Submit sends one email describing sub.
func (s *Service) Submit(ctx context.Context, sub Submission) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	return s.sender.Send(ctx, Email{
		From:    s.from,
		To:      []string{s.to},
		Subject: "Wedding RSVP: " + sub.Name,
		HTML:    renderHTML(sub),
	})
}

func renderHTML(sub Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p><strong>Guest:</strong> %s</p>", html.EscapeString(sub.Name))
	fmt.Fprintf(&b, "<p><strong>Party size:</strong> %s</p>", html.EscapeString(sub.GuestCount))
	fmt.Fprintf(&b, "<p><strong>Comment:</strong> %s</p>", html.EscapeString(sub.Comment))
	return b.String()
}
