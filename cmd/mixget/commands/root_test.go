package commands

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mixget/internal/domain"
)

type closeCounter struct {
	http.RoundTripper
	closes int
}

func (c *closeCounter) CloseIdleConnections() { c.closes++ }

func TestExecute_ClosesClientWhenCommandFails(t *testing.T) {
	chdir(t, t.TempDir())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"primary_character_id":"","primary_character_name":""}`))
	}))
	defer srv.Close()

	tr := &closeCounter{RoundTripper: srv.Client().Transport}
	err := execute([]string{"character", "--base-url", srv.URL + "/api/v1/"}, &http.Client{Transport: tr})
	if !errors.Is(err, domain.ErrNoCharacter) {
		t.Fatalf("err = %v, want ErrNoCharacter", err)
	}
	if tr.closes != 1 {
		t.Fatalf("idle connections closed %d times, want 1", tr.closes)
	}
}
