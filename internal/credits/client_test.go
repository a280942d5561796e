package credits

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchSuccess(t *testing.T) {
	var gotMethod, gotAuth, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"names":["github","twitter"],"links":["https://github.com/u","https://twitter.com/u"]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-token")
	links, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Fatalf("expected POST, got %s", gotMethod)
	}
	if gotAuth != "Bearer secret-token" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if strings.TrimSpace(gotBody) != "{}" {
		t.Fatalf("expected empty JSON body, got %q", gotBody)
	}
	if len(links.Names) != 2 || links.Names[0] != "github" {
		t.Fatalf("unexpected names: %#v", links.Names)
	}
	if len(links.Links) != 2 || links.Links[1] != "https://twitter.com/u" {
		t.Fatalf("unexpected links: %#v", links.Links)
	}
}

func TestFetchNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "bad-token")
	if _, err := client.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse the connection

	client := NewClient(srv.URL, "token")
	if _, err := client.Fetch(context.Background()); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestFetchMalformedPayloadIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "token")
	if _, err := client.Fetch(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetchMissingEndpointIsError(t *testing.T) {
	client := NewClient("", "token")
	if _, err := client.Fetch(context.Background()); err == nil {
		t.Fatal("expected error without an endpoint")
	}
}
