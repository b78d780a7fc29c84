package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/stockwellness/stockwellness/config"
	"github.com/stockwellness/stockwellness/internal/cache"
	"github.com/stockwellness/stockwellness/internal/models"
)

// StatusError is a transport-level failure: the analysis service answered
// with a non-success HTTP status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("analysis service returned HTTP %d", e.Code)
}

// ServiceError is a logical failure: the service answered 200 but the body
// carried an explicit error message instead of an analysis.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

// Client performs the /analyze exchange with the StockWellness backend.
// Responses are cached per ticker and day so a repeated analysis inside
// the cache TTL never hits the backend again.
type Client struct {
	http       *resty.Client
	cache      *cache.Store
	minElapsed time.Duration
}

func New(cfg *config.Config) *Client {
	r := resty.New()
	r.SetBaseURL(cfg.BackendURL)
	r.SetTimeout(cfg.RequestTimeout)
	r.SetHeader("User-Agent", "stockwellness-terminal/1.0")

	return &Client{
		http:       r,
		cache:      cache.New(cfg.CacheDir, cfg.CacheTTL, cfg.CacheEnabled),
		minElapsed: cfg.MinLoadingTime,
	}
}

// Analyze submits the ticker as the sole form parameter and decodes the
// response into a validated AnalysisResult. Successful responses are held
// back until the configured minimum elapsed time has passed, so the
// loading sequence is never visibly truncated on fast backends.
func (c *Client) Analyze(ctx context.Context, symbol string) (*models.AnalysisResult, error) {
	start := time.Now()

	result, err := c.exchange(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if remaining := c.minElapsed - time.Since(start); remaining > 0 {
		select {
		case <-time.After(remaining):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return result, nil
}

func (c *Client) exchange(ctx context.Context, symbol string) (*models.AnalysisResult, error) {
	if body, ok := c.cache.Get(symbol, time.Now()); ok {
		if result, err := models.ParseResult(body); err == nil {
			return result, nil
		}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{"ticker": symbol}).
		Post("/analyze")
	if err != nil {
		return nil, fmt.Errorf("analysis request failed: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, &StatusError{Code: resp.StatusCode()}
	}

	body := resp.Body()

	// A success status can still carry a logical failure.
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return nil, &ServiceError{Message: envelope.Error}
	}

	result, err := models.ParseResult(body)
	if err != nil {
		return nil, err
	}

	c.cache.Set(symbol, time.Now(), body)
	return result, nil
}
