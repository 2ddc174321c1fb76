package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
)

func TestReply(t *testing.T) {
	var gotKey, gotPath, gotModel string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		gotPath = r.URL.Path
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		gotModel, _ = body["model"].(string)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "test-model",
			"content": [{"type": "text", "text": "  Send: split essay into 3 with 10m breaks  "}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 8}
		}`))
	}))
	defer ts.Close()

	c := New("test-key", "test-model", time.UTC, option.WithBaseURL(ts.URL+"/"), option.WithMaxRetries(0))

	reply, err := c.Reply(context.Background(), "how do I break my essay into parts?")
	if err != nil {
		t.Fatalf("Reply() error: %v", err)
	}
	if reply != "Send: split essay into 3 with 10m breaks" {
		t.Errorf("reply = %q", reply)
	}
	if gotKey != "test-key" || !strings.HasSuffix(gotPath, "/v1/messages") || gotModel != "test-model" {
		t.Errorf("request key=%q path=%q model=%q", gotKey, gotPath, gotModel)
	}
}

func TestReply_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"type": "error", "error": {"type": "authentication_error", "message": "invalid x-api-key"}}`))
	}))
	defer ts.Close()

	c := New("bad-key", "", nil, option.WithBaseURL(ts.URL+"/"), option.WithMaxRetries(0))
	if _, err := c.Reply(context.Background(), "hi"); err == nil {
		t.Fatal("expected error for rejected key")
	}
	if c.model != DefaultModel {
		t.Errorf("model = %q, want default", c.model)
	}
}

func TestSystemPrompt(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	c := New("k", "", loc)
	c.now = func() time.Time { return time.Date(2025, 11, 1, 2, 0, 0, 0, time.UTC) }

	prompt := c.systemPrompt()
	if !strings.Contains(prompt, "2025-11-01 (Saturday) 09:00") || !strings.Contains(prompt, "Asia/Ho_Chi_Minh") {
		t.Errorf("prompt does not carry local date and zone:\n%s", prompt)
	}
}
