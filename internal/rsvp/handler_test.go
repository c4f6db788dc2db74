package rsvp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResend(t *testing.T, status int, sent *[]Email) (*Mailer, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		var msg Email
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&msg)) && sent != nil {
			*sent = append(*sent, msg)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	}))
	t.Cleanup(srv.Close)
	return NewMailer(srv.URL, "re_test", srv.Client()), &calls
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/send-rsvp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.Send(w, req)
	return w
}

func TestSend_MissingName(t *testing.T) {
	mailer, calls := newResend(t, http.StatusOK, nil)
	h := NewHandler(NewService(mailer, "from@example.com", "couple@example.com"))

	w := post(h, `{"guestCount":2}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Name is required"}`, w.Body.String())
	assert.Zero(t, calls.Load())
}

func TestSend_DeliversEscapedEmail(t *testing.T) {
	var sent []Email
	mailer, _ := newResend(t, http.StatusOK, &sent)
	h := NewHandler(NewService(mailer, "from@example.com", "couple@example.com"))

	w := post(h, `{"name":"Anna <b>Nowak</b>","guestCount":2,"comment":"See you & dance"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	require.Len(t, sent, 1)
	assert.Equal(t, "from@example.com", sent[0].From)
	assert.Equal(t, []string{"couple@example.com"}, sent[0].To)
	assert.Equal(t, "Wedding RSVP: Anna <b>Nowak</b>", sent[0].Subject)
	assert.Contains(t, sent[0].HTML, "Anna &lt;b&gt;Nowak&lt;/b&gt;")
	assert.Contains(t, sent[0].HTML, "<strong>Party size:</strong> 2</p>")
	assert.Contains(t, sent[0].HTML, "See you &amp; dance")
}

func TestSend_GuestCountAsString(t *testing.T) {
	var sent []Email
	mailer, _ := newResend(t, http.StatusOK, &sent)
	h := NewHandler(NewService(mailer, "f@example.com", "c@example.com"))

	w := post(h, `{"name":"Jan","guestCount":"3"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].HTML, "<strong>Party size:</strong> 3</p>")
}

func TestSend_NotConfigured(t *testing.T) {
	h := NewHandler(NewService(NewMailer("http://unused", "", nil), "f@example.com", "c@example.com"))

	w := post(h, `{"name":"Jan"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestSend_ProviderError(t *testing.T) {
	mailer, _ := newResend(t, http.StatusUnprocessableEntity, nil)
	h := NewHandler(NewService(mailer, "f@example.com", "c@example.com"))

	w := post(h, `{"name":"Jan"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Email provider error"}`, w.Body.String())
}

func TestSend_InvalidJSON(t *testing.T) {
	mailer, _ := newResend(t, http.StatusOK, nil)
	h := NewHandler(NewService(mailer, "f@example.com", "c@example.com"))

	w := post(h, `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "", formatCount(nil))
	assert.Equal(t, "2", formatCount(float64(2)))
	assert.Equal(t, "2.5", formatCount(2.5))
	assert.Equal(t, "four", formatCount("four"))
}
