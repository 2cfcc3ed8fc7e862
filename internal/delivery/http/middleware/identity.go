package middleware

import (
	"strings"

	"github.com/LavaJover/shvark-storefront-service/internal/delivery/http/resp"
	"github.com/gin-gonic/gin"
)

// Identity headers are set by the upstream gateway after authentication.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	RoleAdmin = "admin"

	ctxUserID = "userId"
	ctxRole   = "role"
)

// Identity rejects requests without a caller id and stores id and role on the context.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			resp.Unauthorized(c, "missing "+HeaderUserID+" header")
			return
		}
		c.Set(ctxUserID, userID)
		c.Set(ctxRole, strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserRole))))
		c.Next()
	}
}

// RequireRole must run after Identity.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentRole(c) != role {
			resp.Forbidden(c, "role "+role+" required")
			return
		}
		c.Next()
	}
}

func CurrentUserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func CurrentRole(c *gin.Context) string {
	return c.GetString(ctxRole)
}

func IsAdmin(c *gin.Context) bool {
	return CurrentRole(c) == RoleAdmin
}
