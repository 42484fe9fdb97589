package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/ppiankov/cardiorisk/internal/model"
	"github.com/ppiankov/cardiorisk/internal/util"
)

// Service endpoints
const (
	PredictPath = "/api/predict"
	HealthPath  = "/api/health"
	MetricsPath = "/api/metrics"
)

var (
	// ErrUpstream is any failed call to the prediction service.
	ErrUpstream = errors.New("prediction service error")
	// ErrNetwork is an upstream failure before a response was received.
	ErrNetwork = fmt.Errorf("%w: network", ErrUpstream)
	// ErrInvalidResponse is a response body that is not JSON or carries no
	// risk probability.
	ErrInvalidResponse = errors.New("invalid prediction response")
	// ErrCircuitOpen is returned without calling the service while the
	// breaker is open.
	ErrCircuitOpen = errors.New("prediction service unavailable")
)

// StatusError is a non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("prediction service returned %d", e.Code)
	}
	return fmt.Sprintf("prediction service returned %d: %s", e.Code, e.Body)
}

func (e *StatusError) Unwrap() error { return ErrUpstream }

// MessageKey maps an assessment error onto the translation key shown to the
// user.
func MessageKey(err error) string {
	switch {
	case errors.Is(err, ErrNetwork), errors.Is(err, ErrCircuitOpen):
		return "error_network"
	case errors.Is(err, ErrInvalidResponse):
		return "error_calculation"
	default:
		return "error_api_failed"
	}
}

// Client calls the prediction service. It never retries; repeated failures
// open the breaker so later calls fail fast.
type Client struct {
	http     *resty.Client
	breaker  *gobreaker.CircuitBreaker
	maxBytes int64
	logger   zerolog.Logger
}

// NewClient creates a client for cfg.BaseURL.
func NewClient(cfg model.APIConfig, logger zerolog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetTransport(util.Transport(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy)).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", cfg.UserAgent)

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "prediction-api",
		Timeout: cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// Client errors mean the service is up.
		IsSuccessful: func(err error) bool {
			var se *StatusError
			if errors.As(err, &se) {
				return se.Code < http.StatusInternalServerError
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	})

	maxBytes := cfg.MaxResponseBytes
	if maxBytes <= 0 {
		maxBytes = 1 << 20
	}

	return &Client{
		http:     httpClient,
		breaker:  breaker,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Predict posts the payload and returns the raw JSON response.
func (c *Client) Predict(ctx context.Context, req model.PredictRequest) ([]byte, error) {
	out, err := c.breaker.Execute(func() (any, error) {
		return c.do(ctx, http.MethodPost, PredictPath, req)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}
	if err != nil {
		return nil, err
	}

	body := out.([]byte)
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: body is not JSON", ErrInvalidResponse)
	}
	return body, nil
}

// Health returns the service health document.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	return c.getJSON(ctx, HealthPath)
}

// Metrics returns the service metrics document.
func (c *Client) Metrics(ctx context.Context) (map[string]any, error) {
	return c.getJSON(ctx, MetricsPath)
}

func (c *Client) getJSON(ctx context.Context, path string) (map[string]any, error) {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return doc, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	req := c.http.R().SetContext(ctx).SetDoNotParseResponse(true)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	raw := resp.RawBody()
	defer raw.Close()

	data, err := io.ReadAll(io.LimitReader(raw, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}
	if int64(len(data)) > c.maxBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrInvalidResponse, c.maxBytes)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		c.logger.Debug().
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("prediction service error")
		return nil, &StatusError{Code: resp.StatusCode(), Body: truncate(string(data), 200)}
	}
	return data, nil
}

// truncate cuts s to at most n bytes on a rune boundary.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "…"
}
