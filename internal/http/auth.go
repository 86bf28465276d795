package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"eventboard/internal/service"
)

type registerForm struct {
	Username       string `form:"username" binding:"required,min=3,max=20"`
	Password       string `form:"password" binding:"required,min=5,max=30"`
	VerifyPassword string `form:"verifyPassword" binding:"required"`
}

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *Handler) showRegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.tmpl", gin.H{"title": "Register", "username": ""})
}

func (h *Handler) processRegisterForm(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "register.tmpl", gin.H{
			"title":    "Register",
			"username": form.Username,
			"errors":   fieldErrors(err),
		})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), form.Username, form.Password, form.VerifyPassword)
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		c.HTML(http.StatusOK, "register.tmpl", gin.H{
			"title":    "Register",
			"username": form.Username,
			"errors":   gin.H{"username": "A user with that username already exists"},
		})
	case errors.Is(err, service.ErrPasswordMismatch):
		c.HTML(http.StatusOK, "register.tmpl", gin.H{
			"title":    "Register",
			"username": form.Username,
			"errors":   gin.H{"password": "Passwords do not match"},
		})
	case err != nil:
		h.serverError(c, err)
	default:
		if err := h.identity.Bind(sessions.Default(c), user); err != nil {
			h.serverError(c, err)
			return
		}
		c.Redirect(http.StatusFound, "/")
	}
}

func (h *Handler) showLoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{"title": "Log In", "username": ""})
}

func (h *Handler) processLoginForm(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{
			"title":    "Log In",
			"username": form.Username,
			"errors":   fieldErrors(err),
		})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), form.Username, form.Password)
	switch {
	case errors.Is(err, service.ErrUnknownUsername):
		c.HTML(http.StatusOK, "login.tmpl", gin.H{
			"title":    "Log In",
			"username": form.Username,
			"errors":   gin.H{"username": "The given username does not exist"},
		})
	case errors.Is(err, service.ErrInvalidPassword):
		c.HTML(http.StatusOK, "login.tmpl", gin.H{
			"title":    "Log In",
			"username": form.Username,
			"errors":   gin.H{"password": "Invalid password"},
		})
	case err != nil:
		h.serverError(c, err)
	default:
		if err := h.identity.Bind(sessions.Default(c), user); err != nil {
			h.serverError(c, err)
			return
		}
		c.Redirect(http.StatusFound, "/")
	}
}

// logout destroys the session unconditionally; logging out without a
// session is not an error.
func (h *Handler) logout(c *gin.Context) {
	if err := h.identity.Clear(sessions.Default(c)); err != nil {
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// fieldErrors turns binding failures into per-field messages for the form
// templates. Validation failures always re-render, never 5xx.
func fieldErrors(err error) map[string]string {
	msgs := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		msgs["form"] = "Invalid form submission"
		return msgs
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs[field] = field + " is required"
		case "min", "max":
			msgs[field] = field + " length is invalid"
		case "email":
			msgs[field] = field + " must be a valid email address"
		default:
			msgs[field] = field + " is invalid"
		}
	}
	return msgs
}
