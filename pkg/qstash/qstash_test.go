package qstash

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClientRequiresToken(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(Config{URL: "https://qstash.upstash.io"}); err == nil {
		t.Fatal("expected error for missing token")
	}
}

func TestNewClientRejectsInvalidURL(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(Config{URL: "not a url", Token: "t"}); err == nil {
		t.Fatal("expected error for invalid url")
	}
}

func TestConfigEnabled(t *testing.T) {
	t.Parallel()

	if (Config{Token: "t"}).Enabled() {
		t.Fatal("config without kitchen url must be disabled")
	}
	if !(Config{Token: "t", KitchenURL: "https://kitchen.example/orders"}).Enabled() {
		t.Fatal("config with token and kitchen url must be enabled")
	}
}

func TestPublishSendsPayload(t *testing.T) {
	t.Parallel()

	var (
		gotPath string
		gotAuth string
		gotBody map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		fmt.Fprint(w, `{"messageId":"msg_123"}`)
	}))
	t.Cleanup(server.Close)

	client := MustNew(Config{URL: server.URL, Token: "secret"}, WithHTTPClient(server.Client()))
	resp, err := client.Publish(context.Background(), "https://kitchen.example/orders", map[string]any{"order_id": "abcd1234"})
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if resp.MessageID != "msg_123" {
		t.Fatalf("MessageID = %q, want msg_123", resp.MessageID)
	}
	if !strings.HasPrefix(gotPath, "/v2/publish/") {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("unexpected auth header: %s", gotAuth)
	}
	if gotBody["order_id"] != "abcd1234" {
		t.Fatalf("unexpected body: %#v", gotBody)
	}
}

func TestPublishSurfacesHTTPErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	client := MustNew(Config{URL: server.URL, Token: "bad"}, WithHTTPClient(server.Client()))
	_, err := client.Publish(context.Background(), "https://kitchen.example/orders", map[string]any{})
	if err == nil || !strings.Contains(err.Error(), "status=401") {
		t.Fatalf("Publish() error = %v, want status=401", err)
	}
}

func TestPublishRequiresDestination(t *testing.T) {
	t.Parallel()

	client := MustNew(Config{URL: "https://qstash.upstash.io", Token: "t"})
	if _, err := client.Publish(context.Background(), " ", nil); err == nil {
		t.Fatal("expected error for empty destination")
	}
}
