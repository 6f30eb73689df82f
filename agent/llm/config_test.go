package llm

import (
	"errors"
	"testing"

	contractx "github.com/tanpawarit/namaste-bites-agent/agent/contract"
)

func TestValidateMissingKey(t *testing.T) {
	t.Parallel()

	err := Config{Model: "google/gemini-2.5-flash"}.Validate()
	if !errors.Is(err, contractx.ErrModelUnavailable) {
		t.Fatalf("Validate() error = %v, want ErrModelUnavailable", err)
	}
}

func TestValidateOK(t *testing.T) {
	t.Parallel()

	if err := (Config{APIKey: "k", Model: "m"}).Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestOpenRouterTrimsAndOmitsZeroTokens(t *testing.T) {
	t.Parallel()

	out := Config{APIKey: " k ", Model: " m ", Temperature: 0.7}.OpenRouter()
	if out.APIKey != "k" || out.Model != "m" {
		t.Fatalf("unexpected config: %#v", out)
	}
	if out.MaxCompletionToken != nil {
		t.Fatalf("expected nil max tokens, got %d", *out.MaxCompletionToken)
	}

	out = Config{APIKey: "k", Model: "m", MaxCompletionToken: 512}.OpenRouter()
	if out.MaxCompletionToken == nil || *out.MaxCompletionToken != 512 {
		t.Fatalf("unexpected max tokens: %v", out.MaxCompletionToken)
	}
}
