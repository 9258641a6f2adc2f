package handlers

import (
	"errors"
	"net/http"
	"quillblog/internal/logger"
	"quillblog/internal/services"
	"quillblog/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	msgEmailTaken    = "This email is already registered in our database. Try logging in instead."
	msgWrongPassword = "Incorrect password. Try again"
	msgUnknownEmail  = "There is no account for that user"
)

type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", gin.H{
		"Title":  "Register",
		"Form":   RegisterForm{},
		"Errors": FieldErrors{},
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		form.Password = ""
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Title":  "Register",
			"Form":   form,
			"Errors": fieldErrors(err),
		})
		return
	}

	user, err := h.users.Register(c.Request.Context(), form.Name, form.Email, form.Password)
	if errors.Is(err, services.ErrDuplicateEmail) {
		redirectWithFlash(c, "/login", msgEmailTaken)
		return
	}
	if err != nil {
		logger.Errorf("register %s: %v", form.Email, err)
		InternalError(c)
		return
	}

	if err := session.Start(c, user); err != nil {
		logger.Errorf("start session for user %d: %v", user.ID, err)
		InternalError(c)
		return
	}
	logger.Infof("user %d registered (role %s)", user.ID, user.Role)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{
		"Title":  "Log In",
		"Form":   LoginForm{},
		"Errors": FieldErrors{},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		form.Password = ""
		Render(c, http.StatusBadRequest, "auth/login.html", gin.H{
			"Title":  "Log In",
			"Form":   form,
			"Errors": fieldErrors(err),
		})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownEmail):
			session.AddFlash(c, msgUnknownEmail)
		case errors.Is(err, services.ErrCredentialMismatch):
			session.AddFlash(c, msgWrongPassword)
		default:
			logger.Errorf("login %s: %v", form.Email, err)
			InternalError(c)
			return
		}
		form.Password = ""
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Title":  "Log In",
			"Form":   form,
			"Errors": FieldErrors{},
		})
		return
	}

	if err := session.Start(c, user); err != nil {
		logger.Errorf("start session for user %d: %v", user.ID, err)
		InternalError(c)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := session.End(c); err != nil {
		logger.Warningf("end session: %v", err)
	}
	c.Redirect(http.StatusFound, "/")
}
