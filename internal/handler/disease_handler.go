package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"plantcare.app/leafclinic/internal/dto"
	"plantcare.app/leafclinic/internal/service"
	"plantcare.app/leafclinic/pkg/view"
)

type DiseaseHandler struct {
	catalog service.CatalogService
}

func NewDiseaseHandler(catalog service.CatalogService) *DiseaseHandler {
	return &DiseaseHandler{catalog: catalog}
}

func (h *DiseaseHandler) ListAll(c *gin.Context) {
	diseases, err := h.catalog.ListAll(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "diseases.tmpl", dto.DiseasesView{
		Flash:    view.TakeFlash(c),
		Diseases: diseases,
	})
}

func (h *DiseaseHandler) Search(c *gin.Context) {
	var query dto.DiseaseQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		renderError(c, err)
		return
	}

	diseases, err := h.catalog.Search(c.Request.Context(), query.Disease)
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "diseases.tmpl", dto.DiseasesView{
		Diseases: diseases,
		Searched: true,
		Query:    query.Disease,
	})
}
