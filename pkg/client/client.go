// Package client talks to the FitFusion REST API.
// Every successful response is wrapped as {"data": ...}, failures as {"code", "message"}.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/fitfusion/pkg/entity"
	"github.com/limbo/fitfusion/pkg/errorvalues"
	"github.com/limbo/fitfusion/pkg/httputil"
)

const (
	DefaultTimeout = 10 * time.Second

	ActivitiesResource = "activities"
	GoalsResource      = "goals"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(slog.String("component", "api_client"))
	return c
}

func (c *Client) Activities() *Collection[entity.Activity, entity.ActivityDraft] {
	return NewCollection[entity.Activity, entity.ActivityDraft](c, ActivitiesResource)
}

func (c *Client) Goals() *Collection[entity.Goal, entity.GoalDraft] {
	return NewCollection[entity.Goal, entity.GoalDraft](c, GoalsResource)
}

// do performs one request and returns the raw body of a 2xx response.
// Nothing is retried.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("building %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("api request error",
			slog.String("method", method), slog.String("path", path), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %s %s: %w", errorvalues.ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s %s response: %w", errorvalues.ErrNetwork, method, path, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		respErr := newResponseError(resp.StatusCode, raw)
		c.logger.Warn("api responded with error",
			slog.String("method", method), slog.String("path", path),
			slog.Int("status", resp.StatusCode), slog.String("message", respErr.Message))
		return nil, respErr
	}
	return raw, nil
}

func resourcePath(resource string, id ...string) string {
	path := "/" + resource
	for _, part := range id {
		path += "/" + url.PathEscape(part)
	}
	return path
}

func decodeData[T any](raw []byte) (T, error) {
	var env struct {
		Data *T `json:"data"`
	}
	var zero T
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return zero, fmt.Errorf("%w: %w", errorvalues.ErrDecode, err)
	}
	if env.Data == nil {
		return zero, fmt.Errorf("%w: response has no data field", errorvalues.ErrDecode)
	}
	return *env.Data, nil
}

// ResponseError is a non-2xx answer. It unwraps to ErrNotFound, ErrValidation or ErrNetwork
type ResponseError struct {
	StatusCode int
	Message    string
}

func newResponseError(status int, raw []byte) *ResponseError {
	var body httputil.ErrorResponse
	if err := sonic.Unmarshal(raw, &body); err != nil || body.Message == "" {
		body.Message = http.StatusText(status)
	}
	return &ResponseError{
		StatusCode: status,
		Message:    body.Message,
	}
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (e *ResponseError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return errorvalues.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errorvalues.ErrValidation
	default:
		return errorvalues.ErrNetwork
	}
}
