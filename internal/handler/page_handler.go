package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"plantcare.app/leafclinic/internal/dto"
	"plantcare.app/leafclinic/internal/service"
	"plantcare.app/leafclinic/pkg/view"
)

type PageHandler struct {
	auth service.AuthService
}

func NewPageHandler(auth service.AuthService) *PageHandler {
	return &PageHandler{auth: auth}
}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.tmpl", dto.HomeView{Flash: view.TakeFlash(c)})
}

func (h *PageHandler) About(c *gin.Context) {
	h.renderStatic(c, "aboutus.tmpl")
}

func (h *PageHandler) Profile(c *gin.Context) {
	h.renderStatic(c, "profile.tmpl")
}

func (h *PageHandler) renderStatic(c *gin.Context, template string) {
	userID, err := currentUserID(c)
	if err != nil {
		renderError(c, err)
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), userID.String())
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, template, dto.StaticView{
		Flash:    view.TakeFlash(c),
		Username: user.Username,
	})
}
