package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/pkg/response"
)

const (
	// OwnerHeader identifies the owner of every API call.
	OwnerHeader = "X-Owner-ID"

	scopeKey = "scope"
)

type scopeCtxKey struct{}

// Auth requires the owner header and stores the caller's scope on the request.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := strings.TrimSpace(c.GetHeader(OwnerHeader))
		if owner == "" {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: missing %s header on %s", OwnerHeader, c.FullPath())
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc := model.Scope{UserID: owner}
		c.Set(scopeKey, sc)
		c.Request = c.Request.WithContext(SetScopeToContext(c.Request.Context(), sc))
		c.Next()
	}
}

// SetScopeToContext returns a copy of ctx carrying sc.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the scope stored by Auth.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(model.Scope)
	return sc, ok
}

// GetScope returns the scope stored on the gin context by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
