package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/valpere/transedge/internal/config"
	"github.com/valpere/transedge/internal/languages"
	"github.com/valpere/transedge/internal/service"
)

func TestRequestID_Generated(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected generated uuid, got %q", seen)
	}
	if rec.Header().Get(RequestIDHeader) != seen {
		t.Errorf("expected response header %q, got %q", seen, rec.Header().Get(RequestIDHeader))
	}
}

func TestRequestID_FromClient(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "abc-123" {
		t.Errorf("expected client id, got %q", seen)
	}

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLength+1))
	h.ServeHTTP(httptest.NewRecorder(), req)
	if _, err := uuid.Parse(seen); err != nil {
		t.Errorf("expected oversized id to be replaced, got %q", seen)
	}
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	if id := RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("expected empty id, got %q", id)
	}
}

func TestRecover_PanicBecomesMaskedError(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	p := &stubProvider{panics: true}
	svc, err := service.NewTranslationService(languages.Default(), p, service.Options{})
	if err != nil {
		t.Fatalf("NewTranslationService error: %v", err)
	}
	h := NewRouter(svc, Options{Logger: zap.New(core)})

	rec := do(h, http.MethodPost, `{"input":"Hello","language":"es"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	assertCORS(t, rec)
	var out map[string]string
	json.NewDecoder(rec.Body).Decode(&out)
	if out["error"] != service.MsgTranslationFailed {
		t.Errorf("expected masked error, got %q", out["error"])
	}
	if logs.FilterMessage("panic recovered").Len() != 1 {
		t.Error("expected panic to be logged")
	}

	// Still serving.
	p.panics = false
	p.text = "Hola"
	if rec := do(h, http.MethodPost, `{"input":"Hello","language":"es"}`); rec.Code != http.StatusOK {
		t.Errorf("expected 200 after panic, got %d", rec.Code)
	}
}

func TestProviderFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p := &stubProvider{err: context.DeadlineExceeded}
	svc, _ := service.NewTranslationService(languages.Default(), p, service.Options{})
	h := NewRouter(svc, Options{Logger: zap.New(core)})

	do(h, http.MethodPost, `{"input":"Hello","language":"es"}`)

	entries := logs.FilterMessage("translation failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one failure log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["language"] != "es" {
		t.Errorf("expected language field, got %v", fields["language"])
	}
	if !strings.Contains(fields["error"].(string), "deadline exceeded") {
		t.Errorf("expected raw cause in log, got %v", fields["error"])
	}

	access := logs.FilterMessage("HTTP request").All()
	if len(access) != 1 {
		t.Fatalf("expected one access log, got %d", len(access))
	}
	if access[0].ContextMap()["status"] != int64(http.StatusInternalServerError) {
		t.Errorf("unexpected logged status %v", access[0].ContextMap()["status"])
	}
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mw("a"), mw("b"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if strings.Join(order, ",") != "a,b,handler" {
		t.Errorf("unexpected order %v", order)
	}
}

func TestStatusRecorder(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
	if rec.Status() != http.StatusOK {
		t.Errorf("expected implicit 200, got %d", rec.Status())
	}
	rec.WriteHeader(http.StatusTeapot)
	rec.WriteHeader(http.StatusOK)
	rec.Write([]byte("abc"))
	if rec.Status() != http.StatusTeapot {
		t.Errorf("expected first status to stick, got %d", rec.Status())
	}
	if rec.bytes != 3 {
		t.Errorf("expected 3 bytes, got %d", rec.bytes)
	}
}

func TestServer_ServeAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}

	p := &stubProvider{text: "Hola"}
	svc, _ := service.NewTranslationService(languages.Default(), p, service.Options{})
	srv := New(config.ServerConfig{ReadTimeout: time.Second, WriteTimeout: time.Second}, NewRouter(svc, Options{}), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Post("http://"+ln.Addr().String()+"/", "application/json", strings.NewReader(`{"input":"Hello","language":"es"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var out map[string]string
	json.NewDecoder(resp.Body).Decode(&out)
	resp.Body.Close()
	if out["translation_text"] != "Hola" {
		t.Errorf("unexpected response %v", out)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected shutdown error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
