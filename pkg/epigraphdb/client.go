// Package epigraphdb is a client for the EpiGraphDB REST API
// (https://api.epigraphdb.org). Each endpoint is exposed as a function
// returning typed rows; the API's {"metadata": ..., "results": [...]} envelope
// is unwrapped so callers only see the tabular results.
package epigraphdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/mrcieu/epigraphdb-go/pkg/errors"
	"github.com/mrcieu/epigraphdb-go/pkg/logger"
)

// DefaultURL is the public EpiGraphDB API
const DefaultURL = "https://api.epigraphdb.org"

const userAgent = "epigraphdb-go"

// Client handles communication with the EpiGraphDB API
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxRetries int
	logger     *zap.Logger
}

// NewClient creates a client for the given base URL with default timeout and
// retry settings. Pass an empty URL to use the public API.
func NewClient(baseURL string) *Client {
	return NewClientWithOptions(baseURL, 30*time.Second, 3)
}

// NewClientWithOptions creates a client with an explicit request timeout and
// retry budget
func NewClientWithOptions(baseURL string, timeout time.Duration, maxRetries int) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxRetries: maxRetries,
		logger:     logger.Named("epigraphdb"),
	}
}

// envelope is the response wrapper the API puts around every result set
type envelope struct {
	Metadata json.RawMessage `json:"metadata"`
	Results  json.RawMessage `json:"results"`
}

// getResults performs a GET request and decodes the envelope's results into out
func (c *Client) getResults(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, endpoint, params, nil, out)
}

// postResults performs a POST request with a JSON payload and decodes the
// envelope's results into out
func (c *Client) postResults(ctx context.Context, endpoint string, payload interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPost, endpoint, nil, payload, out)
}

func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values, payload interface{}, out interface{}) error {
	requestURL := c.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var encoded []byte
	if payload != nil {
		var err error
		encoded, err = json.Marshal(payload)
		if err != nil {
			return apperrors.NewAPIRequestFailed(endpoint, 0, fmt.Errorf("failed to encode payload: %w", err))
		}
	}

	requestID := uuid.NewString()

	// Retry on transport errors and 5xx responses with linear backoff
	var body []byte
	var status int
	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * time.Second
			c.logger.Warn("Retrying request",
				zap.String("endpoint", endpoint),
				zap.String("request_id", requestID),
				zap.Int("attempt", attempt+1),
				zap.Duration("backoff", backoff),
			)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return apperrors.NewContextCancelled(endpoint, ctx.Err())
			}
		}

		body, status, lastErr = c.roundTrip(ctx, method, requestURL, encoded, requestID)
		if lastErr == nil && status < http.StatusInternalServerError {
			break
		}
		if ctx.Err() != nil {
			return apperrors.NewContextCancelled(endpoint, ctx.Err())
		}

		c.logger.Error("Request failed",
			zap.String("endpoint", endpoint),
			zap.String("request_id", requestID),
			zap.Int("attempt", attempt+1),
			zap.Int("status", status),
			zap.Error(lastErr),
		)
	}
	if lastErr != nil {
		return apperrors.NewAPIRequestFailed(endpoint, 0, fmt.Errorf("request failed after %d attempts: %w", c.maxRetries, lastErr))
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return apperrors.NewAPIRequestFailed(endpoint, status, fmt.Errorf("unexpected status %d: %s", status, truncate(string(body), 200)))
	}

	// Some endpoints (e.g. /ping) reply with a bare value, no envelope
	results := json.RawMessage(body)
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Results != nil {
		results = env.Results
	}
	if err := json.Unmarshal(results, out); err != nil {
		return apperrors.NewAPIDecodeFailed(endpoint, err)
	}

	c.logger.Debug("Request completed",
		zap.String("endpoint", endpoint),
		zap.String("request_id", requestID),
		zap.Int("status", status),
	)
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, requestURL string, payload []byte, requestID string) ([]byte, int, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
