package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ersbot/internal/domain"

	"go.uber.org/zap"
)

const (
	signupPath      = "/api/signup"
	maxResponseSize = 1 << 20
)

// APIError is returned when the signup endpoint answers with a non-2xx status
type APIError struct {
	StatusCode int
	Message    string
	Body       json.RawMessage
}

func (e *APIError) Error() string {
	return e.Message
}

// Response is a successful answer of the signup endpoint
type Response struct {
	StatusCode int
	Body       json.RawMessage
}

// Client talks to the account signup endpoint
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a client for the API rooted at baseURL
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With(zap.String("component", "signup_client")),
	}
}

// Signup posts the registration payload. The response body is decoded as
// JSON whatever the status; non-2xx statuses yield *APIError.
func (c *Client) Signup(ctx context.Context, requestID string, payload domain.SignupRequest) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := c.baseURL + signupPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("signup_request_failed",
			zap.String("url", url),
			zap.String("request_id", requestID),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var decoded json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}

	c.logger.Debug("signup_request_completed",
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    ErrorMessage(decoded),
			Body:       decoded,
		}
	}

	return &Response{StatusCode: resp.StatusCode, Body: decoded}, nil
}

// ErrorMessage derives the text shown for a failed signup: the body's
// "detail" field when it is set, otherwise the whole body as compact JSON.
func ErrorMessage(body json.RawMessage) string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err == nil {
		if raw, ok := obj["detail"]; ok {
			var detail interface{}
			if err := json.Unmarshal(raw, &detail); err == nil && truthy(detail) {
				if s, ok := detail.(string); ok {
					return s
				}
				return compact(raw)
			}
		}
	}
	return compact(body)
}

// truthy reports whether a decoded JSON value counts as set: null, false,
// zero and the empty string do not
func truthy(v interface{}) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	default:
		return true
	}
}

func compact(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
