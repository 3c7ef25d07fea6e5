package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"mixget/internal/domain"
)

const (
	// DefaultBaseURL is the service's API root.
	DefaultBaseURL = "https://www.mixamo.com/api/v1/"
	// DefaultAPIKey is the key the service's own web client sends.
	DefaultAPIKey = "mixamo2"

	// searchType restricts product search to motion animations.
	searchType = "Motion"

	maxErrorBody = 512
)

// API is a typed client for the animation service.
type API struct {
	Base   string
	APIKey string
	Token  string
	Client *Client
}

// NewAPI returns an API rooted at base. An empty base or key falls back to
// the defaults.
func NewAPI(base, apiKey, token string, c *Client) *API {
	if base == "" {
		base = DefaultBaseURL
	}
	if apiKey == "" {
		apiKey = DefaultAPIKey
	}
	return &API{
		Base:   strings.TrimRight(base, "/") + "/",
		APIKey: apiKey,
		Token:  token,
		Client: c,
	}
}

var _ domain.AnimationAPI = (*API)(nil)

// PrimaryCharacter returns the session's primary character. A session without
// one yields a zero Character and no error.
func (a *API) PrimaryCharacter(ctx context.Context) (domain.Character, error) {
	var out domain.Character
	if err := a.getJSON(ctx, "characters/primary", nil, &out); err != nil {
		return domain.Character{}, err
	}
	return out, nil
}

// SearchProducts fetches one page of motion products matching query.
func (a *API) SearchProducts(ctx context.Context, query string, page, limit int) (domain.SearchPage, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("page", strconv.Itoa(page))
	q.Set("type", searchType)
	q.Set("query", query)

	var out domain.SearchPage
	if err := a.getJSON(ctx, "products", q, &out); err != nil {
		return domain.SearchPage{}, err
	}
	return out, nil
}

// Product fetches the detail record of one animation as retargeted for
// characterID.
func (a *API) Product(ctx context.Context, id domain.AnimationID, characterID domain.CharacterID) (domain.AnimationDescriptor, error) {
	q := url.Values{}
	q.Set("similar", "0")
	q.Set("character_id", characterID.String())

	var out domain.AnimationDescriptor
	if err := a.getJSON(ctx, "products/"+url.PathEscape(id.String()), q, &out); err != nil {
		return domain.AnimationDescriptor{}, err
	}
	return out, nil
}

// Export submits an export job. The response body carries nothing we use.
func (a *API) Export(ctx context.Context, payload domain.ExportPayload) error {
	return a.post(ctx, "animations/export", payload, nil)
}

// Monitor returns the state of the character's current export job.
func (a *API) Monitor(ctx context.Context, characterID domain.CharacterID) (domain.MonitorStatus, error) {
	var out domain.MonitorStatus
	if err := a.getJSON(ctx, "characters/"+url.PathEscape(characterID.String())+"/monitor", nil, &out); err != nil {
		return domain.MonitorStatus{}, err
	}
	return out, nil
}

// Download fetches a signed job-result URL. No API headers are sent.
func (a *API) Download(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := a.Client.Do(ctx, Request{Method: http.MethodGet, URL: rawURL})
	if err != nil {
		var terr *TransportError
		if errors.As(err, &terr) {
			terr.URL = redactURL(terr.URL)
			var uerr *url.Error
			if errors.As(terr.Err, &uerr) {
				uerr.URL = redactURL(uerr.URL)
			}
		}
		return nil, err
	}
	if !resp.OK() {
		return nil, &RejectedError{Method: http.MethodGet, URL: redactURL(rawURL), StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return resp.Body, nil
}

// redactURL drops the query of a signed link so its credentials stay out of
// error messages.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	u.RawQuery = ""
	u.Fragment = ""
	u.User = nil
	return u.String()
}

func (a *API) headers() http.Header {
	h := http.Header{}
	h.Set("Accept", "application/json")
	h.Set("Content-Type", "application/json")
	h.Set("X-Api-Key", a.APIKey)
	h.Set("X-Requested-With", "XMLHttpRequest")
	if a.Token != "" {
		h.Set("Authorization", "Bearer "+a.Token)
	}
	return h
}

func (a *API) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	return a.call(ctx, Request{
		Method: http.MethodPost,
		URL:    a.Base + path,
		Header: a.headers(),
		Body:   buf.Bytes(),
	}, out)
}

func (a *API) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	return a.call(ctx, Request{
		Method: http.MethodGet,
		URL:    a.Base + path,
		Query:  q,
		Header: a.headers(),
	}, out)
}

func (a *API) call(ctx context.Context, req Request, out any) error {
	resp, err := a.Client.Do(ctx, req)
	if err != nil {
		return err
	}
	if !resp.OK() {
		target := req.URL
		if len(req.Query) > 0 {
			target += "?" + req.Query.Encode()
		}
		return &RejectedError{
			Method:     req.Method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       truncate(strings.TrimSpace(string(resp.Body)), maxErrorBody),
		}
	}
	if out == nil {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(resp.Body))
	// gms_hash values must keep their numeric form when forwarded.
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", req.Method, req.URL, err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
