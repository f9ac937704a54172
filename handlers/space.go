package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	spaceRepo "quickcowork/database/repository/space"
	"quickcowork/models"
	"quickcowork/services/catalog"
	"quickcowork/utils"
)

// SpaceHandler serves the browse surface.
type SpaceHandler struct {
	Catalog catalog.CatalogService
}

func NewSpaceHandler(svc catalog.CatalogService) *SpaceHandler {
	return &SpaceHandler{Catalog: svc}
}

// SearchSpacesHandler lists the catalog, applying any filter/sort/search
// query parameters. With no parameters it returns the full catalog in
// display order.
func (h *SpaceHandler) SearchSpacesHandler(c *gin.Context) {
	var criteria models.FilterCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter parameters", err.Error())
		return
	}

	spaces := h.Catalog.Search(criteria)
	c.JSON(http.StatusOK, gin.H{"spaces": spaces, "count": len(spaces)})
}

// GetSpaceByIDHandler returns a single catalog space. An unknown id is a
// 404 so the client can render its not-found state.
func (h *SpaceHandler) GetSpaceByIDHandler(c *gin.Context) {
	id := c.Param("id")
	space, err := h.Catalog.GetSpace(id)
	if err == spaceRepo.ErrSpaceNotFound {
		utils.JSONError(c, http.StatusNotFound, "Space not found", "no space with id "+id)
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load space", err.Error())
		return
	}
	c.JSON(http.StatusOK, space)
}
