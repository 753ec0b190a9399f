package engine

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *HTTPEngine {
	t.Helper()
	e, err := NewHTTPEngine(5*time.Second, "")
	require.NoError(t, err)
	return e
}

func TestHTTPEngine_FetchSendsHeaders(t *testing.T) {
	var gotLang, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLang = r.Header.Get("Accept-Language")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><head><title> Some Channel - YouTube </title></head><body></body></html>`))
	}))
	defer srv.Close()

	e := newTestEngine(t)
	res, err := e.Fetch(context.Background(), &FetchRequest{
		URL:     srv.URL + "/channel/UC1/videos",
		Headers: map[string]string{"Accept-Language": "fr-FR"},
	})
	require.NoError(t, err)

	assert.Equal(t, "fr-FR", gotLang)
	assert.Equal(t, chromeUA, gotUA)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Some Channel - YouTube", res.Title)
	assert.Equal(t, "http", res.EngineName)
	assert.Contains(t, res.HTML, "<body>")
}

func TestHTTPEngine_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"not found", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
		{"not modified", http.StatusNotModified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestEngine(t).Fetch(context.Background(), &FetchRequest{URL: srv.URL})
			var se *StatusError
			require.True(t, errors.As(err, &se), "want *StatusError, got %v", err)
			assert.Equal(t, tt.status, se.StatusCode)
		})
	}
}

func TestHTTPEngine_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := newTestEngine(t).Fetch(context.Background(), &FetchRequest{
		URL:     srv.URL,
		Timeout: 50 * time.Millisecond,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
}

func TestNewHTTPEngine_RejectsSocksProxy(t *testing.T) {
	_, err := NewHTTPEngine(time.Second, "socks5://127.0.0.1:1080")
	assert.Error(t, err)

	_, err = NewHTTPEngine(time.Second, "http://127.0.0.1:3128")
	assert.NoError(t, err)
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"simple", `<title>Hello</title>`, "Hello"},
		{"nested head", `<html><head><meta charset="utf-8"><title>  Chan  </title></head></html>`, "Chan"},
		{"empty title", `<title></title>`, ""},
		{"none", `<html><body>no title</body></html>`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractTitle(tt.html))
		})
	}
}
