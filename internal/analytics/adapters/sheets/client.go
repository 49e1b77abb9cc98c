package sheets

import (
	"context"
	"time"

	"social-analytics-dashboard/internal/analytics/core/ports"

	"github.com/valyala/fasthttp"
)

type Client struct {
	url          string
	maxRedirects int
	http         *fasthttp.Client
}

var _ ports.SheetSourcePort = (*Client)(nil)

// NewClient returns a CSV source for url. Google export links answer with a
// redirect, so maxRedirects should stay above zero for them.
func NewClient(url string, timeout time.Duration, maxRedirects int) *Client {
	return &Client{
		url:          url,
		maxRedirects: maxRedirects,
		http: &fasthttp.Client{
			Name:                "social-analytics-dashboard",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxConnWaitTimeout:  timeout,
			MaxIdleConnDuration: time.Minute,
		},
	}
}

func (c *Client) FetchCSV(ctx context.Context) (string, error) {
	// fasthttp has no context support; a cancelled caller skips the request
	if err := ctx.Err(); err != nil {
		return "", &ports.FetchError{Err: err}
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodGet)

	var err error
	if c.maxRedirects > 0 {
		err = c.http.DoRedirects(req, resp, c.maxRedirects)
	} else {
		err = c.http.Do(req, resp)
	}
	if err != nil {
		return "", &ports.FetchError{Err: err}
	}

	code := resp.StatusCode()
	if code < fasthttp.StatusOK || code >= fasthttp.StatusMultipleChoices {
		return "", &ports.FetchError{StatusCode: code, Status: fasthttp.StatusMessage(code)}
	}

	return string(resp.Body()), nil
}
