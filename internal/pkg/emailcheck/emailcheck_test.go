package emailcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestChecker(apiURL string) *Checker {
	return NewChecker(Config{DisposableAPIURL: apiURL, Timeout: 2 * time.Second}, zerolog.Nop())
}

func TestIsDisposableTrue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("email"); got != "x@mailinator.com" {
			t.Errorf("email query = %q, want x@mailinator.com", got)
		}
		w.Write([]byte(`{"disposable":"true"}`))
	}))
	defer srv.Close()

	disposable, err := newTestChecker(srv.URL).IsDisposable(context.Background(), "x@mailinator.com")
	if err != nil {
		t.Fatalf("IsDisposable: %v", err)
	}
	if !disposable {
		t.Error("expected disposable = true")
	}
}

func TestIsDisposableFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"disposable":"false"}`))
	}))
	defer srv.Close()

	disposable, err := newTestChecker(srv.URL).IsDisposable(context.Background(), "hr@acme.com")
	if err != nil {
		t.Fatalf("IsDisposable: %v", err)
	}
	if disposable {
		t.Error("expected disposable = false")
	}
}

func TestIsDisposableFailOpenOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	disposable, err := newTestChecker(srv.URL).IsDisposable(context.Background(), "hr@acme.com")
	if err != nil {
		t.Fatalf("IsDisposable: %v", err)
	}
	if disposable {
		t.Error("lookup failure must not flag the address as disposable")
	}
}

func TestIsDisposableFailOpenOnBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	disposable, err := newTestChecker(srv.URL).IsDisposable(context.Background(), "hr@acme.com")
	if err != nil {
		t.Fatalf("IsDisposable: %v", err)
	}
	if disposable {
		t.Error("undecodable response must not flag the address as disposable")
	}
}

func TestHasMailExchangerMalformedAddress(t *testing.T) {
	c := newTestChecker("http://unused.invalid")

	for _, email := range []string{"no-at-sign", "trailing@"} {
		ok, err := c.HasMailExchanger(context.Background(), email)
		if err != nil {
			t.Fatalf("HasMailExchanger(%q): %v", email, err)
		}
		if ok {
			t.Errorf("HasMailExchanger(%q) = true, want false", email)
		}
	}
}
