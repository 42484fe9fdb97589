package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/ppiankov/cardiorisk/internal/model"
)

func testConfig(url string) model.APIConfig {
	return model.APIConfig{
		BaseURL:          url,
		Timeout:          5 * time.Second,
		UserAgent:        "test-agent",
		BreakerFailures:  2,
		BreakerCooldown:  time.Minute,
		MaxResponseBytes: 1 << 20,
	}
}

func TestPredict_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != PredictPath {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ua := r.Header.Get("User-Agent"); ua != "test-agent" {
			t.Errorf("Expected User-Agent test-agent, got %q", ua)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("Decode body: %v", err)
		}
		if body["ap_hi"] != 140.0 || body["region"] != model.DefaultRegion {
			t.Errorf("Unexpected payload: %v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"risk_probability":0.31,"risk_category":"moderate"}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL+"/"), zerolog.Nop())
	raw, err := client.Predict(context.Background(), model.NewPredictRequest(model.PatientInput{Systolic: model.Float(140)}))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(string(raw), `"moderate"`) {
		t.Errorf("Unexpected body: %s", raw)
	}
}

func TestPredict_NoRetryOnServerError(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		http.Error(w, `{"detail":"model not loaded"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zerolog.Nop())
	_, err := client.Predict(context.Background(), model.PredictRequest{})

	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected StatusError 503, got %v", err)
	}
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("Expected ErrUpstream, got %v", err)
	}
	if attempts.Load() != 1 {
		t.Errorf("Expected 1 attempt, got %d", attempts.Load())
	}
}

func TestPredict_BreakerOpens(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zerolog.Nop())
	for i := 0; i < 2; i++ {
		_, _ = client.Predict(context.Background(), model.PredictRequest{})
	}

	_, err := client.Predict(context.Background(), model.PredictRequest{})
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("Expected ErrCircuitOpen, got %v", err)
	}
	if attempts.Load() != 2 {
		t.Errorf("Expected the open breaker to skip the call, got %d attempts", attempts.Load())
	}
	if MessageKey(err) != "error_network" {
		t.Errorf("Unexpected message key %q", MessageKey(err))
	}
}

func TestPredict_ClientErrorsDoNotTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zerolog.Nop())
	for i := 0; i < 5; i++ {
		_, err := client.Predict(context.Background(), model.PredictRequest{})
		if errors.Is(err, ErrCircuitOpen) {
			t.Fatalf("Breaker opened on client error at attempt %d", i+1)
		}
	}
}

func TestPredict_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, "<html>proxy error</html>")
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zerolog.Nop())
	_, err := client.Predict(context.Background(), model.PredictRequest{})
	if !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("Expected ErrInvalidResponse, got %v", err)
	}
}

func TestPredict_BodyLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintf(w, `{"pad":"%s"}`, strings.Repeat("x", 200))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.MaxResponseBytes = 64
	_, err := NewClient(cfg, zerolog.Nop()).Predict(context.Background(), model.PredictRequest{})
	if !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("Expected ErrInvalidResponse, got %v", err)
	}
}

func TestPredict_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(testConfig(url), zerolog.Nop()).Predict(context.Background(), model.PredictRequest{})
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("Expected ErrNetwork, got %v", err)
	}
	if MessageKey(err) != "error_network" {
		t.Errorf("Unexpected message key %q", MessageKey(err))
	}
}

func TestHealthAndMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case HealthPath:
			_, _ = fmt.Fprint(w, `{"status":"ok","model_loaded":true}`)
		case MetricsPath:
			_, _ = fmt.Fprint(w, `{"requests_total":12}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zerolog.Nop())
	health, err := client.Health(context.Background())
	if err != nil || health["status"] != "ok" {
		t.Fatalf("Unexpected health %v, %v", health, err)
	}
	metrics, err := client.Metrics(context.Background())
	if err != nil || metrics["requests_total"] != 12.0 {
		t.Fatalf("Unexpected metrics %v, %v", metrics, err)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("  short  ", 10); got != "short" {
		t.Errorf("expected trimmed input, got %q", got)
	}

	// "ы" is two bytes; cutting at 3 would split the second rune
	got := truncate("ыыыы", 3)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate produced invalid utf8: %q", got)
	}
	if got != "ы…" {
		t.Errorf("expected cut on rune boundary, got %q", got)
	}
}
