package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vcrobe/folio/internal/config"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.wasm"), []byte("\x00asm"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "gifs"), 0o755))

	cfg := config.Default().Server
	cfg.StaticDir = dir
	s, err := New(cfg, zap.NewNop())
	require.NoError(t, err)
	return s, dir
}

func get(t *testing.T, h http.Handler, target string) *http.Response {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec.Result()
}

func TestServer_RoutesServePrerenderedPage(t *testing.T) {
	s, _ := newTestServer(t)

	for _, path := range []string{"/", "/about", "/projects", "/skills", "/contact"} {
		t.Run(path, func(t *testing.T) {
			res := get(t, s.Handler(), path)
			defer res.Body.Close()

			require.Equal(t, http.StatusOK, res.StatusCode)
			assert.Equal(t, "text/html; charset=utf-8", res.Header.Get("Content-Type"))

			doc, err := goquery.NewDocumentFromReader(res.Body)
			require.NoError(t, err)
			assert.Equal(t, 1, doc.Find("#app nav#navbar").Length())
			assert.Equal(t, 3, doc.Find("#app #projects [data-project-id]").Length())
			assert.Equal(t, 1, doc.Find(`script[src="/wasm_exec.js"]`).Length())
			assert.Equal(t, 1, doc.Find(`script[src="`+bootPath+`"]`).Length())
		})
	}
}

func TestServer_Health(t *testing.T) {
	s, _ := newTestServer(t)

	res := get(t, s.Handler(), "/healthz")
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestServer_StaticFiles(t *testing.T) {
	s, _ := newTestServer(t)

	res := get(t, s.Handler(), wasmPath)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/wasm", res.Header.Get("Content-Type"))
	assert.Equal(t, "public, max-age=3600", res.Header.Get("Cache-Control"))
}

func TestServer_NotFound(t *testing.T) {
	s, _ := newTestServer(t)

	for _, path := range []string{"/blog", "/gifs", "/gifs/", "/missing.png"} {
		t.Run(path, func(t *testing.T) {
			res := get(t, s.Handler(), path)
			defer res.Body.Close()

			assert.Equal(t, http.StatusNotFound, res.StatusCode)
			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), "Page not found")
		})
	}
}

func TestServer_TrailingSlashRedirects(t *testing.T) {
	s, _ := newTestServer(t)

	for _, path := range []string{"/about/", "/contact/"} {
		t.Run(path, func(t *testing.T) {
			res := get(t, s.Handler(), path)
			defer res.Body.Close()

			assert.Equal(t, http.StatusMovedPermanently, res.StatusCode)
			assert.Equal(t, strings.TrimSuffix(path, "/"), res.Header.Get("Location"))
		})
	}
}

func TestServer_Headers(t *testing.T) {
	s, _ := newTestServer(t)

	res := get(t, s.Handler(), "/")
	defer res.Body.Close()

	_, err := uuid.Parse(res.Header.Get(RequestIDHeader))
	assert.NoError(t, err, "expected a generated request id")
	assert.Equal(t, "nosniff", res.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", res.Header.Get("X-Frame-Options"))
	assert.Contains(t, res.Header.Get("Content-Security-Policy"), "'wasm-unsafe-eval'")
}

func TestRequestID_KeepsValidIncomingID(t *testing.T) {
	id := uuid.NewString()
	var seen string
	h := requestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, id)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, id, seen)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))

	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
}

func TestRecoverer_LogsAndAnswers500(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := recoverer(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 1, logs.FilterMessage("handler panic").Len())
}

func TestAccessLog_RecordsStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := accessLog(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tea", nil))

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.Equal(t, "/tea", fields["path"])
}

func TestServer_DevDisablesCaching(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "styles.css"), []byte("body{}"), 0o644))
	cfg := config.Default().Server
	cfg.StaticDir = dir
	cfg.Dev = true
	s, err := New(cfg, nil)
	require.NoError(t, err)

	res := get(t, s.Handler(), "/styles.css")
	defer res.Body.Close()

	assert.Contains(t, res.Header.Get("Cache-Control"), "no-store")
}

func TestServer_ServeStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	s, _ := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	transport := &http.Transport{DisableKeepAlives: true}
	client := &http.Client{Transport: transport, Timeout: 5 * time.Second}
	res, err := client.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	transport.CloseIdleConnections()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestServer_RunFailsOnBusyAddress(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := config.Default().Server
	cfg.Host = "127.0.0.1"
	cfg.Port = ln.Addr().(*net.TCPAddr).Port
	cfg.StaticDir = t.TempDir()
	s, err := New(cfg, nil)
	require.NoError(t, err)

	err = s.Run(context.Background())

	assert.Error(t, err)
}
