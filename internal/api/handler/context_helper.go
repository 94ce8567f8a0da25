package handler

import (
	"github.com/gin-gonic/gin"

	"pcm-swm/backend/internal/api/middleware"
	"pcm-swm/backend/pkg/response"
)

// MustGetUserID extracts the authenticated user id from the context.
// Writes a 401 and returns false when the auth middleware did not run.
// Callers should return immediately on ok=false.
func MustGetUserID(c *gin.Context) (string, bool) {
	return mustGetString(c, middleware.ContextUserID)
}

// MustGetUserName extracts the authenticated user's display name, used to
// attribute change-log entries.
func MustGetUserName(c *gin.Context) (string, bool) {
	return mustGetString(c, middleware.ContextUserName)
}

// MustGetRole extracts the authenticated role.
func MustGetRole(c *gin.Context) (string, bool) {
	return mustGetString(c, middleware.ContextRole)
}

func mustGetString(c *gin.Context, key string) (string, bool) {
	v, exists := c.Get(key)
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}
