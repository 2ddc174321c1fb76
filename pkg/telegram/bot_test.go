package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"smart-task-scheduler/pkg/telegram"
)

type payloads struct {
	mu   sync.Mutex
	last map[string]map[string]any
}

func (p *payloads) get(method string) map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last[method]
}

// fakeAPI answers like the Bot API and keeps the last decoded payload per method.
func fakeAPI(t *testing.T) (*httptest.Server, *payloads) {
	t.Helper()
	seen := &payloads{last: make(map[string]map[string]any)}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		seen.mu.Lock()
		seen.last[method] = payload
		seen.mu.Unlock()

		switch {
		case payload["url"] == "http://insecure.example.com/webhook/telegram":
			w.Write([]byte(`{"ok": false, "description": "HTTPS url must be provided for webhook"}`))
		case payload["url"] == "garbage":
			w.Write([]byte(`not json`))
		case payload["text"] == "blocked":
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"ok": false, "description": "Forbidden: bot was blocked by the user"}`))
		default:
			w.Write([]byte(`{"ok": true}`))
		}
	}))
	t.Cleanup(ts.Close)
	return ts, seen
}

func TestSetWebhook(t *testing.T) {
	ts, seen := fakeAPI(t)
	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	tests := []struct {
		name    string
		url     string
		wantErr string
	}{
		{name: "registered", url: "https://scheduler.example.com/webhook/telegram"},
		{name: "rejected by telegram", url: "http://insecure.example.com/webhook/telegram", wantErr: "HTTPS url must be provided"},
		{name: "undecodable response", url: "garbage", wantErr: "decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bot.SetWebhook(context.Background(), tt.url)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("SetWebhook() error = %v", err)
				}
				if seen.get("setWebhook")["url"] != tt.url {
					t.Errorf("sent url = %v, want %q", seen.get("setWebhook")["url"], tt.url)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("SetWebhook() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSendMessage(t *testing.T) {
	ts, seen := fakeAPI(t)
	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)
	ctx := context.Background()

	t.Run("plain", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 4242, "✅ Added \"Study react\""); err != nil {
			t.Fatalf("SendMessage() error = %v", err)
		}
		got := seen.get("sendMessage")
		if got["chat_id"] != float64(4242) || got["text"] != "✅ Added \"Study react\"" {
			t.Errorf("payload = %v", got)
		}
		if _, ok := got["parse_mode"]; ok {
			t.Errorf("plain message should omit parse_mode: %v", got)
		}
	})

	t.Run("markdown", func(t *testing.T) {
		if err := bot.SendMessageWithMode(ctx, 4242, "*Weekly*", "Markdown"); err != nil {
			t.Fatalf("SendMessageWithMode() error = %v", err)
		}
		if seen.get("sendMessage")["parse_mode"] != "Markdown" {
			t.Errorf("payload = %v", seen.get("sendMessage"))
		}
	})

	t.Run("api error", func(t *testing.T) {
		err := bot.SendMessage(ctx, 4242, "blocked")
		if err == nil || !strings.Contains(err.Error(), "403") {
			t.Fatalf("SendMessage() error = %v, want 403", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		if err := bot.SendMessage(cancelled, 4242, "Hello"); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})

	t.Run("unreachable api", func(t *testing.T) {
		down := telegram.NewBot("test-token")
		down.SetAPIURL("http://127.0.0.1:1")
		if err := down.SendMessage(ctx, 4242, "Hello"); err == nil {
			t.Fatal("expected error for unreachable api")
		}
	})
}
