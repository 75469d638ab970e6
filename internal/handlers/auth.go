package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rohanjsheth/Paper-Trader/internal/middleware"
	"github.com/rohanjsheth/Paper-Trader/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type RegisterForm struct {
	Username     string `form:"username"`
	Password     string `form:"password"`
	Confirmation string `form:"confirmation"`
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	// Any existing login is forgotten when the login page is reached.
	session := sessions.Default(c)
	session.Clear()
	session.Save()

	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *AuthHandler) Login(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()

	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		apology(c, http.StatusForbidden, "must provide username")
		return
	}

	if form.Username == "" {
		apology(c, http.StatusForbidden, "must provide username")
		return
	}
	if form.Password == "" {
		apology(c, http.StatusForbidden, "must provide password")
		return
	}

	user, err := h.authService.Login(form.Username, form.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apology(c, http.StatusForbidden, "invalid username and/or password")
			return
		}
		apology(c, http.StatusInternalServerError, err.Error())
		return
	}

	session.Set(middleware.SessionUserKey, user.ID)
	session.Save()

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		apology(c, http.StatusBadRequest, "must provide username")
		return
	}

	_, err := h.authService.Register(form.Username, form.Password, form.Confirmation)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameRequired):
			apology(c, http.StatusBadRequest, "must provide username")
		case errors.Is(err, services.ErrUsernameTaken):
			apology(c, http.StatusBadRequest, "sorry, username is taken")
		case errors.Is(err, services.ErrPasswordRequired):
			apology(c, http.StatusBadRequest, "must provide password")
		case errors.Is(err, services.ErrPasswordMismatch):
			apology(c, http.StatusBadRequest, "passwords must match")
		case errors.Is(err, services.ErrPasswordTooShort):
			apology(c, http.StatusBadRequest, "password must have at least 8 characters")
		case errors.Is(err, services.ErrPasswordTooWeak):
			apology(c, http.StatusBadRequest, "password must have at least one special character or one number")
		default:
			apology(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	// No auto-login after registration.
	c.Redirect(http.StatusSeeOther, "/login")
}
