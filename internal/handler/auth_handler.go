package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"plantcare.app/leafclinic/internal/dto"
	"plantcare.app/leafclinic/internal/middleware"
	"plantcare.app/leafclinic/internal/service"
	"plantcare.app/leafclinic/pkg/apperror"
	"plantcare.app/leafclinic/pkg/validator"
	"plantcare.app/leafclinic/pkg/view"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", dto.LoginView{Flash: view.TakeFlash(c)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.tmpl", dto.LoginView{
			Flash: validator.FormatValidationError(err),
			Email: form.Email,
		})
		return
	}

	token, expiresAt, err := h.auth.Login(c.Request.Context(), form)
	if err != nil {
		switch {
		case errors.Is(err, apperror.ErrUnknownEmail):
			h.loginFailed(c, "Email not in database!", form.Email)
		case errors.Is(err, apperror.ErrWrongPassword):
			h.loginFailed(c, "Incorrect Password!", form.Email)
		default:
			renderError(c, err)
		}
		return
	}

	maxAge := int(expiresAt.Sub(timeNow()).Seconds())
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *AuthHandler) loginFailed(c *gin.Context, msg, email string) {
	c.HTML(http.StatusUnauthorized, "login.tmpl", dto.LoginView{
		Flash: msg,
		Email: email,
	})
}

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.tmpl", dto.SignupView{Flash: view.TakeFlash(c)})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var form dto.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "signup.tmpl", dto.SignupView{
			Flash:    validator.FormatValidationError(err),
			Email:    form.Email,
			Username: form.Username,
		})
		return
	}

	if _, err := h.auth.Signup(c.Request.Context(), form); err != nil {
		if errors.Is(err, apperror.ErrDuplicateEmail) {
			c.HTML(http.StatusBadRequest, "signup.tmpl", dto.SignupView{
				Flash:    "That email is already registered.",
				Email:    form.Email,
				Username: form.Username,
			})
			return
		}
		renderError(c, err)
		return
	}

	view.SetFlash(c, "Account created. Please log in.")
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}
