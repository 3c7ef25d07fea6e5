package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mixget/internal/domain"
	"mixget/internal/remote"
)

func newAPI(t *testing.T, h http.Handler) *remote.API {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := remote.NewClient(srv.Client(), nil)
	c.Pace = 0
	return remote.NewAPI(srv.URL+"/api/v1", "", "tok", c)
}

func TestAPI_SendsServiceHeaders(t *testing.T) {
	var hdr http.Header
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hdr = r.Header.Clone()
		_, _ = w.Write([]byte(`{"primary_character_id":"c1","primary_character_name":"Y Bot"}`))
	}))

	ch, err := api.PrimaryCharacter(context.Background())
	if err != nil {
		t.Fatalf("PrimaryCharacter: %v", err)
	}
	if ch.ID != "c1" || ch.Name != "Y Bot" {
		t.Fatalf("character = %+v", ch)
	}
	want := map[string]string{
		"Accept":           "application/json",
		"Content-Type":     "application/json",
		"X-Api-Key":        remote.DefaultAPIKey,
		"X-Requested-With": "XMLHttpRequest",
		"Authorization":    "Bearer tok",
	}
	for k, v := range want {
		if got := hdr.Get(k); got != v {
			t.Fatalf("header %s = %q, want %q", k, got, v)
		}
	}
}

func TestAPI_RejectedStatusIsStructured(t *testing.T) {
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))

	_, err := api.Product(context.Background(), "a1", "c1")
	var rerr *remote.RejectedError
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %v, want *RejectedError", err)
	}
	if !rerr.NotFound() || rerr.Method != http.MethodGet || rerr.Body != "nope" {
		t.Fatalf("rejected = %+v", rerr)
	}
}

func TestAPI_ProductKeepsNumbers(t *testing.T) {
	var query string
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/products/a1" {
			http.NotFound(w, r)
			return
		}
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"id":"a1","description":"Walk","type":"Motion",
			"details":{"gms_hash":{"model-id":42,"trim":[0,100],"params":[["Posture",50]],"overdrive":0.5}}}`))
	}))

	d, err := api.Product(context.Background(), "a1", "c1")
	if err != nil {
		t.Fatalf("Product: %v", err)
	}
	if query != "character_id=c1&similar=0" {
		t.Fatalf("query = %q", query)
	}
	if d.Description != "Walk" || d.Type != "Motion" {
		t.Fatalf("descriptor = %+v", d)
	}
	if n, ok := d.Details.GMSHash["model-id"].(json.Number); !ok || n.String() != "42" {
		t.Fatalf("model-id = %#v, want json.Number 42", d.Details.GMSHash["model-id"])
	}
}

func TestAPI_SearchQueryParams(t *testing.T) {
	var got map[string]string
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = map[string]string{}
		for k := range r.URL.Query() {
			got[k] = r.URL.Query().Get(k)
		}
		_, _ = w.Write([]byte(`{"results":[{"id":"a1","description":"Walk"}],"pagination":{"num_pages":1}}`))
	}))

	page, err := api.SearchProducts(context.Background(), "walk", 2, 96)
	if err != nil {
		t.Fatalf("SearchProducts: %v", err)
	}
	if len(page.Results) != 1 || page.Pagination.NumPages != 1 {
		t.Fatalf("page = %+v", page)
	}
	want := map[string]string{"limit": "96", "page": "2", "type": "Motion", "query": "walk"}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("param %s = %q, want %q", k, got[k], v)
		}
	}
}

func TestAPI_ExportPostsPayload(t *testing.T) {
	var body domain.ExportPayload
	var method string
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &body)
		w.WriteHeader(http.StatusAccepted)
	}))

	err := api.Export(context.Background(), domain.ExportPayload{CharacterID: "c1", ProductName: "Walk", Type: "Motion"})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if method != http.MethodPost || body.ProductName != "Walk" || body.CharacterID != "c1" {
		t.Fatalf("method = %s body = %+v", method, body)
	}
}

func TestAPI_DownloadSkipsServiceHeaders(t *testing.T) {
	var key string
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key = r.Header.Get("X-Api-Key")
		_, _ = w.Write([]byte("FBX-BYTES"))
	}))

	b, err := api.Download(context.Background(), strings.TrimSuffix(api.Base, "api/v1/")+"signed/file")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if string(b) != "FBX-BYTES" {
		t.Fatalf("body = %q", b)
	}
	if key != "" {
		t.Fatalf("download sent X-Api-Key %q", key)
	}
}

func TestAPI_NumericIDsDecodeAsText(t *testing.T) {
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/characters/primary"):
			_, _ = w.Write([]byte(`{"primary_character_id": 12345, "primary_character_name": "Y Bot"}`))
		case strings.HasSuffix(r.URL.Path, "/products"):
			_, _ = w.Write([]byte(`{"results":[{"id": 777, "description": "Walk"},{"id": "a-2", "description": "Run"}],` +
				`"pagination":{"page":1,"limit":96,"num_pages":1,"num_results":2}}`))
		case strings.HasSuffix(r.URL.Path, "/products/777"):
			if r.URL.Query().Get("character_id") != "12345" {
				http.Error(w, "bad character", http.StatusBadRequest)
				return
			}
			_, _ = w.Write([]byte(`{"id": 777, "description": "Walk", "type": "Motion", "details": {"gms_hash": {}}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	ctx := context.Background()

	ch, err := api.PrimaryCharacter(ctx)
	if err != nil {
		t.Fatalf("PrimaryCharacter: %v", err)
	}
	if ch.ID != "12345" || ch.ID.String() != "12345" {
		t.Fatalf("character id = %q", ch.ID)
	}

	page, err := api.SearchProducts(ctx, "walk", 1, 96)
	if err != nil {
		t.Fatalf("SearchProducts: %v", err)
	}
	if len(page.Results) != 2 || page.Results[0].ID != "777" || page.Results[1].ID != "a-2" {
		t.Fatalf("results = %+v", page.Results)
	}

	d, err := api.Product(ctx, page.Results[0].ID, ch.ID)
	if err != nil {
		t.Fatalf("Product: %v", err)
	}
	if d.ID != "777" {
		t.Fatalf("product id = %q", d.ID)
	}
}

func TestAPI_IDRejectsNonScalar(t *testing.T) {
	var ch domain.Character
	if err := json.Unmarshal([]byte(`{"primary_character_id": {"x": 1}}`), &ch); err == nil {
		t.Fatal("expected error for object id")
	}
	if err := json.Unmarshal([]byte(`{"primary_character_id": null}`), &ch); err != nil || ch.ID != "" {
		t.Fatalf("null id = %q, %v", ch.ID, err)
	}
}

func TestAPI_DownloadErrorOmitsSignedQuery(t *testing.T) {
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "expired", http.StatusForbidden)
	}))
	link := strings.TrimSuffix(api.Base, "api/v1/") + "signed/file.fbx?X-Amz-Signature=secret&X-Amz-Credential=key"

	_, err := api.Download(context.Background(), link)
	var rerr *remote.RejectedError
	if !errors.As(err, &rerr) || rerr.StatusCode != http.StatusForbidden {
		t.Fatalf("err = %v, want 403 *RejectedError", err)
	}
	if strings.Contains(err.Error(), "secret") || strings.Contains(err.Error(), "X-Amz") {
		t.Fatalf("error leaks signed query: %v", err)
	}
	if !strings.Contains(rerr.URL, "/signed/file.fbx") {
		t.Fatalf("url = %q", rerr.URL)
	}
}

func TestAPI_DownloadTransportErrorOmitsSignedQuery(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := remote.NewClient(srv.Client(), nil)
	c.Pace = 0
	c.MaxAttempts = 2
	api := remote.NewAPI(base+"/api/v1/", "", "", c)

	_, err := api.Download(context.Background(), base+"/signed/file.fbx?X-Amz-Signature=secret")
	var terr *remote.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v, want *TransportError", err)
	}
	if strings.Contains(err.Error(), "secret") {
		t.Fatalf("error leaks signed query: %v", err)
	}
}
