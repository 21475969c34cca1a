package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mvolkov/kinobot/internal/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

// GatewayError is the uniform failure signal for all catalog calls.
// Network errors, deserialization errors and non-2xx responses are all
// mapped to it at this boundary; nothing else escapes.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("tmdb %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Client handles communication with the TMDB API. Concurrent in-flight
// calls are bounded by a permit pool; callers exceeding the bound suspend
// until a permit frees. No retry happens at this layer.
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	permits    *semaphore.Weighted
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates a new TMDB API client
func NewClient(cfg *config.Config, logger *logrus.Logger) (*Client, error) {
	if cfg.TMDBAPIKey == "" {
		return nil, fmt.Errorf("TMDB API key is required")
	}

	return &Client{
		baseURL:  cfg.TMDBBaseURL,
		apiKey:   cfg.TMDBAPIKey,
		language: cfg.Language,
		permits:  semaphore.NewWeighted(int64(cfg.APIRateLimit)),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}, nil
}

// invoke performs a rate-limited GET against the TMDB API and decodes the
// JSON response into result
func (c *Client) invoke(ctx context.Context, op, path string, params url.Values, result interface{}) error {
	if err := c.permits.Acquire(ctx, 1); err != nil {
		return &GatewayError{Op: op, Err: err}
	}
	defer c.permits.Release(1)

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)

	fullURL := c.baseURL + path + "?" + params.Encode()

	c.logger.WithFields(logrus.Fields{
		"op":   op,
		"path": path,
	}).Debug("Making TMDB API request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return &GatewayError{Op: op, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("op", op).Error("TMDB request failed")
		return &GatewayError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.WithFields(logrus.Fields{
			"op":          op,
			"status_code": resp.StatusCode,
		}).Error("TMDB API returned non-OK status")
		return &GatewayError{
			Op:  op,
			Err: fmt.Errorf("status %d: %s", resp.StatusCode, string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &GatewayError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return nil
}
