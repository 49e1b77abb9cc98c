// Package client reads parsed rows from the analytics API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"social-analytics-dashboard/internal/analytics/core/domain"

	"github.com/valyala/fasthttp"
)

const AnalyticsPath = "/api/analytics"

var ErrMissingData = errors.New("response has no data")

// APIError is a non-success answer from the analytics API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("analytics api: %d %s", e.StatusCode, fasthttp.StatusMessage(e.StatusCode))
	}
	return fmt.Sprintf("analytics api: %d: %s", e.StatusCode, e.Message)
}

type analyticsPayload struct {
	Data  *[]domain.Row `json:"data"`
	Error string        `json:"error"`
}

type Client struct {
	url     string
	timeout time.Duration
	http    *fasthttp.Client
}

const defaultTimeout = 10 * time.Second

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		url:     strings.TrimRight(baseURL, "/") + AnalyticsPath,
		timeout: timeout,
		http:    &fasthttp.Client{Name: "social-analytics-dashboard"},
	}
}

func (c *Client) FetchRows(ctx context.Context) ([]domain.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	if err := c.http.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, fmt.Errorf("analytics api: %w", err)
	}

	var payload analyticsPayload
	decodeErr := json.Unmarshal(resp.Body(), &payload)

	if code := resp.StatusCode(); code != fasthttp.StatusOK {
		return nil, &APIError{StatusCode: code, Message: payload.Error}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("analytics api: decode: %w", decodeErr)
	}
	if payload.Data == nil {
		return nil, ErrMissingData
	}

	return *payload.Data, nil
}
