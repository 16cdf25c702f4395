package handler

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the operator or resident id set by the auth proxy
const UserIDHeader = "X-User-ID"

type userIDKey struct{}

// IdentityMiddleware copies the user id header into the request context
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid := strings.TrimSpace(c.GetHeader(UserIDHeader)); uid != "" {
			c.Request = c.Request.WithContext(WithUserID(c.Request.Context(), uid))
		}
		c.Next()
	}
}

// WithUserID returns a context carrying uid
func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userIDKey{}, uid)
}

// ContextIdentity reads the user id placed by IdentityMiddleware
type ContextIdentity struct{}

func (ContextIdentity) CurrentUserID(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(userIDKey{}).(string)
	return uid, ok && uid != ""
}
