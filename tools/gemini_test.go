package tools

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGenerateWithoutKey(t *testing.T) {
	client := NewGeminiClient("", time.Second)
	if client.HasKey() {
		t.Error("client without key should report no key")
	}
	if _, err := client.Generate(context.Background(), "gemini-2.5-flash", "hi"); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("err = %v, want ErrNoAPIKey", err)
	}
}

func TestGenerateParsesCandidateText(t *testing.T) {
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  What gives them energy?  "}]}}]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient("test-key", time.Second)
	client.BaseURL = srv.URL

	out, err := client.Generate(context.Background(), "gemini-2.5-flash", "rewrite this question")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out != "What gives them energy?" {
		t.Errorf("out = %q, want trimmed candidate text", out)
	}
	if gotPath != "/v1beta/models/gemini-2.5-flash:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}
}

func TestGenerateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewGeminiClient("test-key", time.Second)
	client.BaseURL = srv.URL

	if _, err := client.Generate(context.Background(), "gemini-2.5-pro", "p"); err == nil {
		t.Fatal("expected error on non-2xx status")
	}
}

func TestGenerateEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient("test-key", time.Second)
	client.BaseURL = srv.URL

	if _, err := client.Generate(context.Background(), "gemini-2.5-pro", "p"); err == nil {
		t.Fatal("expected error on empty candidate list")
	}
}
