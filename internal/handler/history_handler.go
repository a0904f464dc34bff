package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"plantcare.app/leafclinic/internal/dto"
	"plantcare.app/leafclinic/internal/service"
	"plantcare.app/leafclinic/pkg/apperror"
	"plantcare.app/leafclinic/pkg/view"
)

type HistoryHandler struct {
	history service.HistoryService
}

func NewHistoryHandler(history service.HistoryService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

func (h *HistoryHandler) List(c *gin.Context) {
	var filter dto.HistoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		renderError(c, fmt.Errorf("%w: %v", apperror.ErrInvalidInput, err))
		return
	}

	if filter.Page == 0 {
		filter.Page = service.DefaultHistoryPage
	}
	if filter.PerPage == 0 {
		filter.PerPage = service.DefaultHistoryPerPage
	}

	userID, err := currentUserID(c)
	if err != nil {
		renderError(c, err)
		return
	}

	records, meta, err := h.history.List(c.Request.Context(), userID, filter.Page, filter.PerPage)
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "history.tmpl", dto.HistoryView{
		Flash:   view.TakeFlash(c),
		Records: records,
		Meta:    meta,
		// show only changes what the view renders (delete controls), never
		// which records are queried.
		ShowAll: showAll(filter.Show),
	})
}

func (h *HistoryHandler) Delete(c *gin.Context) {
	var form dto.DeleteForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, fmt.Errorf("%w: %v", apperror.ErrInvalidInput, err))
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		renderError(c, err)
		return
	}

	remaining, err := h.history.Delete(c.Request.Context(), userID, form.IDs)
	if err != nil {
		renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/history?per_page=%d&show=true", remaining))
}

func showAll(show string) bool {
	return show == "true" || show == "True"
}
