package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pushkov-fedor/course-selection/internal/app/models/dto"
	"github.com/pushkov-fedor/course-selection/internal/app/services"
	"github.com/pushkov-fedor/course-selection/internal/middleware"
	"github.com/pushkov-fedor/course-selection/internal/pkg/helpers"
)

// OfferingController handles course offering administration
type OfferingController struct {
	offeringService services.OfferingService
}

// NewOfferingController creates a new OfferingController
func NewOfferingController(offeringService services.OfferingService) *OfferingController {
	return &OfferingController{
		offeringService: offeringService,
	}
}

// CreateOffering handles offering creation
// @Summary Create a course offering
// @Description Creates an offering of an existing course; enrolled starts at zero
// @Tags course-offerings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateOfferingRequest true "Offering information"
// @Success 201 {object} models.CourseOffering "Offering created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course-offering [post]
func (c *OfferingController) CreateOffering(ctx *gin.Context) {
	var req dto.CreateOfferingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid offering data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	offering, err := c.offeringService.CreateOffering(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, offering)
}

// GetOfferingByID retrieves an offering by ID
// @Summary Get offering details
// @Tags course-offerings
// @Produce json
// @Param id path string true "Offering ID" Format(uuid)
// @Success 200 {object} models.CourseOffering "Offering retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course-offering/{id} [get]
func (c *OfferingController) GetOfferingByID(ctx *gin.Context) {
	offering, err := c.offeringService.GetOfferingByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, offering)
}

// GetAllOfferings retrieves offerings with pagination
// @Summary List course offerings
// @Tags course-offerings
// @Produce json
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} models.CourseOffering "Offerings retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course-offering [get]
func (c *OfferingController) GetAllOfferings(ctx *gin.Context) {
	limit, offset := helpers.ParseLimitOffset(ctx)

	offerings, err := c.offeringService.GetAllOfferings(ctx, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, offerings)
}

// UpdateOffering handles a partial offering update
// @Summary Update a course offering
// @Description Applies a partial update; the enrolled count cannot be set through this endpoint
// @Tags course-offerings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID" Format(uuid)
// @Param request body dto.UpdateOfferingRequest true "Fields to update"
// @Success 200 {object} models.CourseOffering "Offering updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course-offering/{id} [patch]
func (c *OfferingController) UpdateOffering(ctx *gin.Context) {
	var req dto.UpdateOfferingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid offering data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	offering, err := c.offeringService.UpdateOffering(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, offering)
}

// DeleteOffering handles offering deletion
// @Summary Delete a course offering
// @Tags course-offerings
// @Security BearerAuth
// @Param id path string true "Offering ID" Format(uuid)
// @Success 204 "Offering deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course-offering/{id} [delete]
func (c *OfferingController) DeleteOffering(ctx *gin.Context) {
	if err := c.offeringService.DeleteOffering(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
