package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appMiddleware "github.com/weddingspa/service/internal/middleware"
	"github.com/weddingspa/service/internal/photo"
	"github.com/weddingspa/service/internal/rsvp"
	"github.com/weddingspa/service/internal/storage/storagetest"
	"github.com/weddingspa/service/internal/video/drive"
	"github.com/weddingspa/service/internal/video/stream"
)

func newTestServer(t *testing.T) (http.Handler, *storagetest.Memory) {
	t.Helper()
	store := storagetest.NewMemory(nil)
	reg := prometheus.NewRegistry()

	h := Handlers{
		Photos: photo.NewHandler(photo.NewService(store)),
		Stream: stream.NewHandler(stream.NewClient("http://unused", "", "", nil)),
		Drive: drive.NewHandler(drive.NewService(
			drive.NewTokenIssuer("", "http://unused", nil), drive.NewClient("http://unused", nil), "")),
		RSVP: rsvp.NewHandler(rsvp.NewService(rsvp.NewMailer("http://unused", "", nil), "f@example.com", "")),
	}
	return NewRouter(h, appMiddleware.MustNewMetrics(reg), reg), store
}

func TestRouter_Health(t *testing.T) {
	srv, _ := newTestServer(t)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_CORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)
	for _, tc := range []struct{ path, method string }{
		{"/api/upload", http.MethodPost},
		{"/api/delete", http.MethodDelete},
		{"/api/drive/delete", http.MethodDelete},
		{"/api/my-photos", http.MethodGet},
	} {
		req := httptest.NewRequest(http.MethodOptions, tc.path, nil)
		req.Header.Set("Origin", "https://wedding.example")
		req.Header.Set("Access-Control-Request-Method", tc.method)
		w := httptest.NewRecorder()

		srv.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), tc.path)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), tc.method, tc.path)
	}
}

func TestRouter_ErrorResponsesCarryCORS(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/my-photos", nil)
	req.Header.Set("Origin", "https://wedding.example")
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_UploadListServeDelete(t *testing.T) {
	srv, store := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("deviceId", "guest#1"))
	require.NoError(t, mw.WriteField("guestName", "Ala"))
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="a.jpg"`)
	hdr.Set("Content-Type", "image/jpeg")
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, _ = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var up struct{ Key string }
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &up))
	assert.Regexp(t, `^uploads/guest1/[0-9a-f-]{36}\.jpeg$`, up.Key)

	w = httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/my-photos?deviceId=guest1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Photos []struct{ Key, URL string }
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Photos, 1)
	assert.Equal(t, up.Key, list.Photos[0].Key)

	w = httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, list.Photos[0].URL, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpeg-bytes", w.Body.String())

	w = httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/delete?deviceId=guest2&key="+up.Key, nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, store.Has(up.Key))

	w = httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/delete?deviceId=guest1&key="+up.Key, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, store.Has(up.Key))
}

func TestRouter_UnconfiguredProvidersAnswer500(t *testing.T) {
	srv, _ := newTestServer(t)
	for _, target := range []string{"/api/my-videos?deviceId=a", "/api/drive/my-videos?deviceId=a"} {
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code, target)
	}

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/send-rsvp", bytes.NewBufferString(`{"name":"Jan"}`)))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	srv.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `weddingspa_http_requests_total{method="GET",route="/health",status="200"} 1`)
}
