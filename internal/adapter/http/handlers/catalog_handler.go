package handlers

import (
	"log"
	"net/http"

	response "auto_service_queue/internal/adapter/http/dto/response"
	"auto_service_queue/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListServices godoc
// @Summary      List service types
// @Tags         services
// @Produce      json
// @Success      200  {array}   response.ServiceTypeResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	items, err := h.usecase.ListServiceTypes(c.Request.Context())
	if err != nil {
		log.Printf("[catalog][handler] list failed err=%v", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceTypes(items))
}
