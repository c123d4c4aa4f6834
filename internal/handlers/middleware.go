package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const userIdCtxKey = "userId"

// userIdMiddleware verifies the bearer token and stores the caller's user
// id in the request context. All failure modes return the same 401 shape.
func (h *Handler) userIdMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	userId, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(userIdCtxKey, userId)
	c.Next()
}

// callerID returns the user id the middleware stored for this request.
func callerID(c *gin.Context) (int, bool) {
	v, ok := c.Get(userIdCtxKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
