package remote

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"mixget/internal/metrics"
)

const (
	// DefaultMaxAttempts bounds retries of transport failures.
	DefaultMaxAttempts = 10
	// DefaultPace is slept after every attempt.
	DefaultPace = 3 * time.Second
	// DefaultTimeout caps a single attempt.
	DefaultTimeout = 30 * time.Second
)

// Request describes one logical call; it may be attempted several times.
type Request struct {
	Method string
	URL    string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool { return r.StatusCode/100 == 2 }

// Client retries transport failures and paces every attempt.
type Client struct {
	HTTP        *http.Client
	MaxAttempts int
	Pace        time.Duration
	Timeout     time.Duration

	// Sleep waits between attempts; tests replace it.
	Sleep   func(ctx context.Context, d time.Duration) error
	Metrics *metrics.Recorder
}

// NewClient returns a Client with the default retry budget and pacing.
func NewClient(hc *http.Client, m *metrics.Recorder) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		HTTP:        hc,
		MaxAttempts: DefaultMaxAttempts,
		Pace:        DefaultPace,
		Timeout:     DefaultTimeout,
		Sleep:       SleepContext,
		Metrics:     m,
	}
}

// Do performs req, retrying transport failures. Any HTTP status, including
// 4xx and 5xx, is returned as a Response without retry.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	target := req.URL
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}
	attempts := c.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := c.Sleep
	if sleep == nil {
		sleep = SleepContext
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		resp, err := c.attempt(ctx, req.Method, target, req.Header, req.Body)
		c.Metrics.ObserveAttempt(req.Method, err)
		if serr := sleep(ctx, c.Pace); serr != nil {
			return nil, serr
		}
		if err == nil {
			return resp, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
	}
	return nil, &TransportError{Method: req.Method, URL: target, Attempts: attempts, Err: lastErr}
}

func (c *Client) attempt(ctx context.Context, method, target string, header http.Header, body []byte) (*Response, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	hreq, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		return nil, err
	}
	for k, vs := range header {
		for _, v := range vs {
			hreq.Header.Add(k, v)
		}
	}
	hresp, err := c.HTTP.Do(hreq)
	if err != nil {
		return nil, err
	}
	defer hresp.Body.Close()
	b, err := io.ReadAll(hresp.Body)
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode: hresp.StatusCode,
		Status:     hresp.Status,
		Header:     hresp.Header,
		Body:       b,
	}, nil
}

// SleepContext waits for d or until ctx is done.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
