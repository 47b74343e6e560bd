package openai_provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCompleteReturnsGeneratedText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("unexpected auth header: %q", got)
		}
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}
		if req.Model != "gpt-4o-mini" {
			t.Errorf("unexpected model: %q", req.Model)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Day 1: arrive in Rome."}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClientWithURL("sk-test", "gpt-4o-mini", 0.2, 4096, 5*time.Second, srv.URL)
	got, err := c.Complete(context.Background(), "plan a trip")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got != "Day 1: arrive in Rome." {
		t.Fatalf("unexpected completion: %q", got)
	}
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit reached"}}`))
	}))
	defer srv.Close()

	c := NewOpenAIClientWithURL("sk-test", "gpt-4o-mini", 0.2, 4096, 5*time.Second, srv.URL)
	_, err := c.Complete(context.Background(), "plan a trip")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "rate limit reached") {
		t.Fatalf("expected provider message in error, got %v", err)
	}
}

func TestCompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClientWithURL("sk-test", "gpt-4o-mini", 0.2, 4096, 5*time.Second, srv.URL)
	if _, err := c.Complete(context.Background(), "p"); err == nil {
		t.Fatal("expected error on empty choices")
	}
}
