package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type eventForm struct {
	Name         string `form:"name" binding:"required,max=50"`
	Description  string `form:"description" binding:"max=500"`
	ContactEmail string `form:"contactEmail" binding:"required,email"`
}

func (h *Handler) listEvents(c *gin.Context) {
	events, err := h.events.ListEvents(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "events.tmpl", gin.H{
		"title":  "All Events",
		"user":   currentUser(c),
		"events": events,
	})
}

func (h *Handler) showCreateEventForm(c *gin.Context) {
	c.HTML(http.StatusOK, "event_create.tmpl", gin.H{"title": "Create Event", "form": eventForm{}})
}

func (h *Handler) processCreateEventForm(c *gin.Context) {
	var form eventForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "event_create.tmpl", gin.H{
			"title":  "Create Event",
			"form":   form,
			"errors": fieldErrors(err),
		})
		return
	}

	user := currentUser(c)
	if user == nil {
		// the gate guarantees a user on this path
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	if _, err := h.events.CreateEvent(c.Request.Context(), form.Name, form.Description, form.ContactEmail, user.ID); err != nil {
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/events")
}
