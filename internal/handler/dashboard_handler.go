package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"plantcare.app/leafclinic/internal/dto"
	"plantcare.app/leafclinic/internal/model"
	"plantcare.app/leafclinic/internal/service"
	"plantcare.app/leafclinic/pkg/view"
)

type DashboardHandler struct {
	auth   service.AuthService
	upload service.UploadService
}

func NewDashboardHandler(auth service.AuthService, upload service.UploadService) *DashboardHandler {
	return &DashboardHandler{auth: auth, upload: upload}
}

func (h *DashboardHandler) Show(c *gin.Context) {
	user, err := h.resolveUser(c)
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "dashboard.tmpl", dto.DashboardView{
		Flash:    view.TakeFlash(c),
		Username: user.Username,
	})
}

func (h *DashboardHandler) Upload(c *gin.Context) {
	user, err := h.resolveUser(c)
	if err != nil {
		renderError(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.HTML(http.StatusBadRequest, "dashboard.tmpl", dto.DashboardView{
			Flash:    "Please choose an image to upload.",
			Username: user.Username,
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		renderError(c, err)
		return
	}
	defer file.Close()

	record, err := h.upload.Upload(c.Request.Context(), user, fileHeader.Filename, file)
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "dashboard.tmpl", dto.DashboardView{
		Username:  user.Username,
		Uploaded:  true,
		ImageName: record.FileName,
	})
}

func (h *DashboardHandler) resolveUser(c *gin.Context) (*model.User, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.auth.CurrentUser(c.Request.Context(), userID.String())
}
