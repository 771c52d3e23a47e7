package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientComplete(t *testing.T) {
	var gotReq ChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Fatalf("unexpected auth header: %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request failed: %v", err)
		}
		resp := ChatResponse{
			Choices: []Choice{{Message: &Message{Role: "assistant", Content: "Hello there"}}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-key", "test-model", 0.7, 5*time.Second)
	out, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if out != "Hello there" {
		t.Fatalf("unexpected completion: %q", out)
	}
	if gotReq.Model != "test-model" || len(gotReq.Messages) != 1 {
		t.Fatalf("unexpected request: %+v", gotReq)
	}
}

func TestClientCompleteUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Error: &APIError{Message: "rate limited", Type: "rate_limit"}})
	}))
	defer server.Close()

	c := NewClient(server.URL, "k", "m", 0.7, 5*time.Second)
	if _, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatalf("expected error on 429")
	}
}

func TestClientCompleteNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(ChatResponse{})
	}))
	defer server.Close()

	c := NewClient(server.URL, "k", "m", 0.7, 5*time.Second)
	if _, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatalf("expected error on empty choices")
	}
}

func TestClientCompleteUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "k", "m", 0.7, 500*time.Millisecond)
	if _, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatalf("expected transport error")
	}
}

func TestMockClientScript(t *testing.T) {
	m := NewMockClient()
	m.Script = map[string]string{"create a task": `{"action": "CREATE_TASK"}`}

	out, err := m.Complete(context.Background(), []Message{
		{Role: "system", Content: "rules"},
		{Role: "user", Content: "create a task"},
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if out != `{"action": "CREATE_TASK"}` {
		t.Fatalf("unexpected completion: %q", out)
	}

	out, err = m.Complete(context.Background(), []Message{{Role: "user", Content: "anything else"}})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if out != "[MOCK] Received: anything else" {
		t.Fatalf("unexpected fallback: %q", out)
	}
}
