package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"eventboard/internal/domain"
)

// userContextKey carries the resolved user from the gate to downstream handlers.
const userContextKey = "currentUser"

// whitelist holds the path prefixes reachable without authentication.
// Read-only after init, so concurrent reads need no synchronization.
var whitelist = []string{"/login", "/register", "/logout", "/static"}

func isWhitelisted(path string) bool {
	for _, prefix := range whitelist {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RequireUser gates every request. Whitelisted paths pass without touching
// the session; anything else needs a session that resolves to a user, or
// the request is diverted to the login form before any handler runs.
func (h *Handler) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isWhitelisted(c.Request.URL.Path) {
			c.Next()
			return
		}

		user, err := h.identity.Current(c.Request.Context(), sessions.Default(c))
		if err != nil {
			h.serverError(c, err)
			return
		}
		if user == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// currentUser returns the user the gate resolved for this request, or nil
// on whitelisted paths.
func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, ok := v.(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// RequestLogger tags each request with an id and logs its outcome.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start),
		}).Info("request handled")
	}
}
