// Package remote is the HTTP side of mixget: a retrying, paced client and a
// typed client for the animation service's REST API built on top of it.
//
// Client wraps one shared *http.Client. Every attempt is followed by a fixed
// pacing delay, success or not, so the overall call rate stays at what the
// service expects. Transport failures (timeouts, resets) are retried up to
// MaxAttempts; HTTP error statuses are not retried.
//
// API adds the service's fixed headers to JSON calls and turns non-2xx
// statuses into *RejectedError with the method, full URL and status text.
// Signed download URLs are fetched without those headers.
package remote
