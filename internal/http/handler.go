// Package http wires the web surface: the authentication gate, the
// credential pages, and the events board.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"eventboard/internal/service"
	"eventboard/internal/session"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth     service.AuthService
	events   service.EventService
	identity *session.Identity
	logger   *logrus.Logger
}

func NewHandler(auth service.AuthService, events service.EventService, identity *session.Identity, logger *logrus.Logger) *Handler {
	return &Handler{
		auth:     auth,
		events:   events,
		identity: identity,
		logger:   logger,
	}
}

// RegisterRoutes installs the gate and the page handlers. The gate runs
// before every route registered here, so no page below is reachable
// without an authenticated session unless its path is whitelisted.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(h.RequireUser())

	router.GET("/register", h.showRegisterForm)
	router.POST("/register", h.processRegisterForm)
	router.GET("/login", h.showLoginForm)
	router.POST("/login", h.processLoginForm)
	router.GET("/logout", h.logout)

	router.GET("/", h.listEvents)
	router.GET("/events", h.listEvents)
	router.GET("/events/create", h.showCreateEventForm)
	router.POST("/events/create", h.processCreateEventForm)
}

func (h *Handler) serverError(c *gin.Context, err error) {
	h.logger.WithError(err).Errorf("%s %s failed", c.Request.Method, c.Request.URL.Path)
	c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{
		"title": "Something went wrong",
	})
	c.Abort()
}
