package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/pkg/log"
)

func newTestEngine(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", mw.Auth(), mw.RateLimit(), func(c *gin.Context) {
		sc, ok := GetScope(c)
		ctxScope, ctxOK := GetScopeFromContext(c.Request.Context())
		if !ok || !ctxOK || sc != ctxScope {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, sc.UserID)
	})
	return r
}

func TestAuth(t *testing.T) {
	r := newTestEngine(New(log.NewNop(), 0))

	tests := []struct {
		name     string
		owner    string
		wantCode int
		wantBody string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"blank header", "   ", http.StatusUnauthorized, ""},
		{"owner set", "user-1", http.StatusOK, "user-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.owner != "" {
				req.Header.Set(OwnerHeader, tt.owner)
			}
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	// 10 per minute gives a burst of 1.
	r := newTestEngine(New(log.NewNop(), 10))

	call := func(owner string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(OwnerHeader, owner)
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := call("user-1"); code != http.StatusOK {
		t.Fatalf("first call = %d", code)
	}
	if code := call("user-1"); code != http.StatusTooManyRequests {
		t.Errorf("second call = %d, want 429", code)
	}
	if code := call("user-2"); code != http.StatusOK {
		t.Errorf("other owner = %d, want its own bucket", code)
	}
}

func TestGetScopeFromContext_Empty(t *testing.T) {
	if _, ok := GetScopeFromContext(context.Background()); ok {
		t.Error("empty context should carry no scope")
	}
}
