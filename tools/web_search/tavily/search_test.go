package tavily

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchDecodesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer key" {
			t.Errorf("unexpected auth header: %q", got)
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if payload["query"] != "best hostels in Italy" {
			t.Errorf("unexpected query: %v", payload["query"])
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"url":"https://a.test","content":"alpha","title":"A"},
			{"url":"https://b.test","content":"beta","title":"B"},
			{"url":"https://c.test","content":"gamma","title":"C"}
		]}`))
	}))
	defer srv.Close()

	s := Search{ApiKey: "key", BaseURL: srv.URL}
	resp, err := s.Search(context.Background(), "best hostels in Italy", 2)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if resp.Raw != "" {
		t.Fatalf("expected structured records, got raw %q", resp.Raw)
	}
	if len(resp.Records) != 2 {
		t.Fatalf("expected 2 records (k limit), got %d", len(resp.Records))
	}
	if resp.Records[0].URL != "https://a.test" || resp.Records[0].Content != "alpha" {
		t.Fatalf("unexpected first record: %+v", resp.Records[0])
	}
}

func TestSearchTextBodyPassedThroughRaw(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain text answer"))
	}))
	defer srv.Close()

	s := Search{ApiKey: "key", BaseURL: srv.URL}
	resp, err := s.Search(context.Background(), "q", 5)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if resp.Records != nil {
		t.Fatalf("expected raw response, got records %+v", resp.Records)
	}
	if resp.Raw != "plain text answer" {
		t.Fatalf("unexpected raw body: %q", resp.Raw)
	}
}

func TestSearchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := Search{ApiKey: "bad", BaseURL: srv.URL}
	if _, err := s.Search(context.Background(), "q", 5); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}
