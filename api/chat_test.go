package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tamdao/mytask/assistant"
	"github.com/tamdao/mytask/domain"
	"github.com/tamdao/mytask/llm"
	"github.com/tamdao/mytask/policy"
	"github.com/tamdao/mytask/service"
	"github.com/tamdao/mytask/tests/helpers"
)

func newTestHandler(t *testing.T) (*Handler, *llm.MockClient) {
	t.Helper()

	st := helpers.NewTestStore(t)
	svc := service.New(st)
	mock := llm.NewMockClient()
	mock.Script = map[string]string{}

	guard, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	ast := assistant.New(st, svc, mock, guard, zerolog.Nop(), assistant.Options{Configured: true})
	return NewHandler(svc, ast, zerolog.Nop()), mock
}

func TestChat(t *testing.T) {
	e := echo.New()
	h, mock := newTestHandler(t)
	mock.Script["hello"] = "Hi! How can I help?"

	req := httptest.NewRequest(http.MethodPost, "/v1/assistant/chat", strings.NewReader(`{"message": "hello"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(ownerHeader, "u1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Chat(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["reply"] != "Hi! How can I help?" {
		t.Fatalf("unexpected reply: %q", resp["reply"])
	}
}

func TestChatMissingOwnerHeader(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/assistant/chat", strings.NewReader(`{"message": "hello"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Chat(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestChatEmptyMessage(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/assistant/chat", strings.NewReader(`{"message": "  "}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(ownerHeader, "u1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Chat(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestChatHistory(t *testing.T) {
	e := echo.New()
	h, mock := newTestHandler(t)
	mock.Script["hello"] = "Hi!"

	req := httptest.NewRequest(http.MethodPost, "/v1/assistant/chat", strings.NewReader(`{"message": "hello"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(ownerHeader, "u1")
	rec := httptest.NewRecorder()
	if err := h.Chat(e.NewContext(req, rec)); err != nil {
		t.Fatalf("chat failed: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/assistant/history", nil)
	req.Header.Set(ownerHeader, "u1")
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ChatHistory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Messages []domain.ChatMessage `json:"messages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(resp.Messages))
	}
	if resp.Messages[0].Role != domain.RoleAssistant {
		t.Fatalf("expected assistant turn first, got %s", resp.Messages[0].Role)
	}
}

func TestHealth(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Health(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
