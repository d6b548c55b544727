package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pushkov-fedor/course-selection/internal/app/services"
	"github.com/pushkov-fedor/course-selection/internal/middleware"
	"github.com/pushkov-fedor/course-selection/internal/pkg/helpers"
)

// CatalogController serves the merged course catalog
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetCatalog retrieves the merged, ordered catalog
// @Summary Get the course catalog
// @Description Returns active courses merged with their offerings, with derived status and availability, in display order
// @Tags catalog
// @Produce json
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} models.DisplayCourse "Catalog retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /catalog [get]
func (c *CatalogController) GetCatalog(ctx *gin.Context) {
	limit, offset := helpers.ParseLimitOffset(ctx)

	catalog, err := c.catalogService.GetCatalog(ctx, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, catalog)
}
