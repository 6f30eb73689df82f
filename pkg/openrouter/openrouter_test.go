package openrouter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClientWithoutKey(t *testing.T) {
	t.Parallel()

	if client := NewClient(Config{}); client != nil {
		t.Fatal("expected nil client without api key")
	}
}

func TestNewWithoutKey(t *testing.T) {
	t.Parallel()

	cfg := Config{Model: "google/gemini-2.5-flash"}
	if _, err := cfg.New(context.Background()); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("New() error = %v, want ErrMissingAPIKey", err)
	}
}

func TestNewBuildsChatModel(t *testing.T) {
	t.Parallel()

	cfg := Config{
		BaseURL:     "https://openrouter.ai/api/v1/",
		APIKey:      " key ",
		Model:       "google/gemini-2.5-flash",
		Temperature: 0.7,
	}
	m, err := cfg.New(context.Background())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if m == nil {
		t.Fatal("expected chat model")
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/models" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"object":"list","data":[{"id":"google/gemini-2.5-flash","object":"model","created":0,"owned_by":"google"}]}`)
	}))
	t.Cleanup(server.Close)

	if err := Verify(context.Background(), Config{BaseURL: server.URL, APIKey: "key"}); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if gotAuth != "Bearer key" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
}

func TestVerifyRejectedCredential(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"invalid key","code":401}}`)
	}))
	t.Cleanup(server.Close)

	if err := Verify(context.Background(), Config{BaseURL: server.URL, APIKey: "bad"}); err == nil {
		t.Fatal("expected error for rejected credential")
	}
}

func TestVerifyWithoutKey(t *testing.T) {
	t.Parallel()

	if err := Verify(context.Background(), Config{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("Verify() error = %v, want ErrMissingAPIKey", err)
	}
}
