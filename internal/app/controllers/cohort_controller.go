package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pushkov-fedor/course-selection/internal/app/models/dto"
	"github.com/pushkov-fedor/course-selection/internal/app/services"
	"github.com/pushkov-fedor/course-selection/internal/middleware"
	"github.com/pushkov-fedor/course-selection/internal/pkg/helpers"
)

// CohortController handles cohort and cohort semester administration
type CohortController struct {
	cohortService services.CohortService
}

// NewCohortController creates a new CohortController
func NewCohortController(cohortService services.CohortService) *CohortController {
	return &CohortController{
		cohortService: cohortService,
	}
}

// CreateCohort handles cohort creation
// @Summary Create a cohort
// @Tags cohorts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCohortRequest true "Cohort information"
// @Success 201 {object} models.Cohort "Cohort created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cohort [post]
func (c *CohortController) CreateCohort(ctx *gin.Context) {
	var req dto.CreateCohortRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid cohort data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	cohort, err := c.cohortService.CreateCohort(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, cohort)
}

// GetCohortByID retrieves a cohort by ID
// @Summary Get cohort details
// @Tags cohorts
// @Produce json
// @Param id path string true "Cohort ID" Format(uuid)
// @Success 200 {object} models.Cohort "Cohort retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Cohort not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cohort/{id} [get]
func (c *CohortController) GetCohortByID(ctx *gin.Context) {
	cohort, err := c.cohortService.GetCohortByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cohort)
}

// GetAllCohorts retrieves cohorts with pagination
// @Summary List cohorts
// @Tags cohorts
// @Produce json
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} models.Cohort "Cohorts retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cohort [get]
func (c *CohortController) GetAllCohorts(ctx *gin.Context) {
	limit, offset := helpers.ParseLimitOffset(ctx)

	cohorts, err := c.cohortService.GetAllCohorts(ctx, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cohorts)
}

// UpdateCohort handles a partial cohort update
// @Summary Update a cohort
// @Tags cohorts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cohort ID" Format(uuid)
// @Param request body dto.UpdateCohortRequest true "Fields to update"
// @Success 200 {object} models.Cohort "Cohort updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Cohort not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cohort/{id} [patch]
func (c *CohortController) UpdateCohort(ctx *gin.Context) {
	var req dto.UpdateCohortRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid cohort data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	cohort, err := c.cohortService.UpdateCohort(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cohort)
}

// DeleteCohort handles cohort deletion
// @Summary Delete a cohort
// @Description Removes a cohort that has no semesters
// @Tags cohorts
// @Security BearerAuth
// @Param id path string true "Cohort ID" Format(uuid)
// @Success 204 "Cohort deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Cohort not found"
// @Failure 409 {object} dto.ErrorResponse "Cohort has semesters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cohort/{id} [delete]
func (c *CohortController) DeleteCohort(ctx *gin.Context) {
	if err := c.cohortService.DeleteCohort(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CreateSemester handles cohort semester creation
// @Summary Create a cohort semester
// @Tags cohort-semesters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCohortSemesterRequest true "Semester information"
// @Success 201 {object} models.CohortSemester "Semester created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Cohort not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cohort-semesters [post]
func (c *CohortController) CreateSemester(ctx *gin.Context) {
	var req dto.CreateCohortSemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid semester data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	semester, err := c.cohortService.CreateSemester(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, semester)
}

// GetSemesterByID retrieves a cohort semester by ID
// @Summary Get cohort semester details
// @Tags cohort-semesters
// @Produce json
// @Param id path string true "Semester ID" Format(uuid)
// @Success 200 {object} models.CohortSemester "Semester retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cohort-semesters/{id} [get]
func (c *CohortController) GetSemesterByID(ctx *gin.Context) {
	semester, err := c.cohortService.GetSemesterByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, semester)
}

// GetAllSemesters retrieves cohort semesters
// @Summary List cohort semesters
// @Description Retrieves cohort semesters with pagination, optionally filtered by cohort_id
// @Tags cohort-semesters
// @Produce json
// @Param cohort_id query string false "Cohort ID" Format(uuid)
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} models.CohortSemester "Semesters retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cohort-semesters [get]
func (c *CohortController) GetAllSemesters(ctx *gin.Context) {
	limit, offset := helpers.ParseLimitOffset(ctx)

	semesters, err := c.cohortService.GetAllSemesters(ctx, ctx.Query("cohort_id"), limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, semesters)
}

// UpdateSemester handles a partial semester update
// @Summary Update a cohort semester
// @Tags cohort-semesters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Semester ID" Format(uuid)
// @Param request body dto.UpdateCohortSemesterRequest true "Fields to update"
// @Success 200 {object} models.CohortSemester "Semester updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cohort-semesters/{id} [patch]
func (c *CohortController) UpdateSemester(ctx *gin.Context) {
	var req dto.UpdateCohortSemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid semester data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	semester, err := c.cohortService.UpdateSemester(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, semester)
}

// DeleteSemester handles semester deletion
// @Summary Delete a cohort semester
// @Tags cohort-semesters
// @Security BearerAuth
// @Param id path string true "Semester ID" Format(uuid)
// @Success 204 "Semester deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cohort-semesters/{id} [delete]
func (c *CohortController) DeleteSemester(ctx *gin.Context) {
	if err := c.cohortService.DeleteSemester(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
