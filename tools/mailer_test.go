package tools

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMailerSend(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	m := NewMailer("test-key", "feedback@northstar.local", "Northstar")
	m.BaseURL = srv.URL

	err := m.Send(context.Background(), "Feedback request", "Please click here", "alex@example.com")
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(gotBody), &payload); err != nil {
		t.Fatalf("request body is not json: %v", err)
	}
	if payload["subject"] != "Feedback request" {
		t.Errorf("subject = %v", payload["subject"])
	}
	if !strings.Contains(gotBody, "alex@example.com") {
		t.Errorf("recipient missing from payload: %s", gotBody)
	}
}

func TestMailerSendErrors(t *testing.T) {
	m := NewMailer("", "from@x", "X")
	if err := m.Send(context.Background(), "s", "b", "to@x"); err == nil {
		t.Error("missing api key should fail")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	m = NewMailer("test-key", "from@x", "X")
	m.BaseURL = srv.URL
	if err := m.Send(context.Background(), "s", "b", "to@x"); err == nil {
		t.Error("non-2xx status should fail")
	}
	if err := m.Send(context.Background(), "s", "b"); err == nil {
		t.Error("no recipients should fail")
	}
}
