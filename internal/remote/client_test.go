package remote_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"mixget/internal/remote"
)

// flakyTransport fails the first `failures` round trips at the transport level.
type flakyTransport struct {
	failures int
	calls    int
	status   int
}

func (f *flakyTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("connection reset by peer")
	}
	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader("body")),
		Request:    r,
	}, nil
}

// newTestClient returns a client whose sleeps are counted instead of waited.
func newTestClient(rt http.RoundTripper, sleeps *[]time.Duration) *remote.Client {
	c := remote.NewClient(&http.Client{Transport: rt}, nil)
	c.Sleep = func(ctx context.Context, d time.Duration) error {
		*sleeps = append(*sleeps, d)
		return ctx.Err()
	}
	return c
}

func TestClient_SucceedsOnLastAttempt(t *testing.T) {
	rt := &flakyTransport{failures: 9}
	var sleeps []time.Duration
	c := newTestClient(rt, &sleeps)

	resp, err := c.Do(context.Background(), remote.Request{Method: http.MethodGet, URL: "http://svc.test/x"})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if string(resp.Body) != "body" {
		t.Fatalf("body = %q", resp.Body)
	}
	if rt.calls != 10 {
		t.Fatalf("calls = %d, want 10", rt.calls)
	}
	if len(sleeps) != 10 {
		t.Fatalf("sleeps = %d, want one per attempt (10)", len(sleeps))
	}
	for _, d := range sleeps {
		if d != remote.DefaultPace {
			t.Fatalf("pace = %v, want %v", d, remote.DefaultPace)
		}
	}
}

func TestClient_ExhaustedAttemptsNameURL(t *testing.T) {
	rt := &flakyTransport{failures: 10}
	var sleeps []time.Duration
	c := newTestClient(rt, &sleeps)

	_, err := c.Do(context.Background(), remote.Request{Method: http.MethodGet, URL: "http://svc.test/never"})
	var terr *remote.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v, want *TransportError", err)
	}
	if terr.Attempts != 10 || rt.calls != 10 {
		t.Fatalf("attempts = %d calls = %d, want 10", terr.Attempts, rt.calls)
	}
	if !strings.Contains(err.Error(), "http://svc.test/never") {
		t.Fatalf("error %q does not name the URL", err)
	}
}

func TestClient_ErrorStatusNotRetried(t *testing.T) {
	rt := &flakyTransport{status: http.StatusInternalServerError}
	var sleeps []time.Duration
	c := newTestClient(rt, &sleeps)

	resp, err := c.Do(context.Background(), remote.Request{Method: http.MethodGet, URL: "http://svc.test/boom"})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError || resp.OK() {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if rt.calls != 1 || len(sleeps) != 1 {
		t.Fatalf("calls = %d sleeps = %d, want 1 and 1", rt.calls, len(sleeps))
	}
}

func TestClient_CancelledContextStopsRetrying(t *testing.T) {
	rt := &flakyTransport{failures: 10}
	ctx, cancel := context.WithCancel(context.Background())
	c := remote.NewClient(&http.Client{Transport: rt}, nil)
	c.Sleep = func(context.Context, time.Duration) error {
		cancel()
		return context.Canceled
	}

	_, err := c.Do(ctx, remote.Request{Method: http.MethodGet, URL: "http://svc.test/x"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if rt.calls != 1 {
		t.Fatalf("calls = %d, want 1", rt.calls)
	}
}

func TestClient_QueryEncoded(t *testing.T) {
	var got string
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		got = r.URL.String()
		return &http.Response{StatusCode: 200, Status: "200 OK", Header: http.Header{}, Body: io.NopCloser(strings.NewReader("")), Request: r}, nil
	})
	var sleeps []time.Duration
	c := newTestClient(rt, &sleeps)

	_, err := c.Do(context.Background(), remote.Request{
		Method: http.MethodGet,
		URL:    "http://svc.test/products",
		Query:  map[string][]string{"page": {"2"}, "query": {"run fast"}},
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got != "http://svc.test/products?page=2&query=run+fast" {
		t.Fatalf("url = %q", got)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
