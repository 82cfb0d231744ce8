package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"lendit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SharerHeader carries the acting user's ID. There is no session layer:
// callers identify themselves per request and the middleware checks the ID
// against the user directory.
const SharerHeader = "X-Sharer-User-Id"

const ctxUserIDKey = "user_id"

type IdentityMiddleware struct {
	users queries.UserQueries
}

func NewIdentityMiddleware(users queries.UserQueries) *IdentityMiddleware {
	return &IdentityMiddleware{users: users}
}

func (m *IdentityMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.GetHeader(SharerHeader)
		if idStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "X-Sharer-User-Id header required",
			})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(idStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid X-Sharer-User-Id header format",
			})
			c.Abort()
			return
		}

		if _, err := m.users.GetByID(c.Request.Context(), userID); err != nil {
			if errors.Is(err, queries.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{
					"error": "Unknown user",
				})
				c.Abort()
				return
			}
			slog.Warn("user lookup failed in identity middleware", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
