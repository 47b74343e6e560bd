package provider

import (
	"testing"
	"time"
)

func TestNewProviderOpenAI(t *testing.T) {
	p, err := NewProvider(OpenAI, "sk-test", "gpt-4o-mini", 0.2, 4096, 30*time.Second)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p == nil {
		t.Fatal("nil provider")
	}
}

func TestNewProviderMissingKey(t *testing.T) {
	if _, err := NewProvider(OpenAI, "", "gpt-4o-mini", 0.2, 4096, time.Second); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestNewProviderUnimplemented(t *testing.T) {
	for _, c := range []Client{Anthropic, Gemini, Client("llama")} {
		if _, err := NewProvider(c, "key", "m", 0, 0, time.Second); err == nil {
			t.Fatalf("%s: expected error", c)
		}
	}
}
