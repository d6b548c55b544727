package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pushkov-fedor/course-selection/internal/app/models/dto"
	"github.com/pushkov-fedor/course-selection/internal/app/services"
	"github.com/pushkov-fedor/course-selection/internal/middleware"
)

// EnrollmentController handles enrollment request submission and lookup
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// CreateRequest handles enrollment request submission
// @Summary Submit an enrollment request
// @Description Records the request and processes it synchronously; seat counts move only here
// @Tags enrollment
// @Accept json
// @Produce json
// @Param request body dto.CreateEnrollmentRequestRequest true "Enrollment request"
// @Success 201 {object} dto.CreateEnrollmentRequestResponse "Request accepted and processed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Cohort semester not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollment-request [post]
func (c *EnrollmentController) CreateRequest(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeRequestMalformed, "Invalid enrollment request")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	request, err := c.enrollmentService.CreateRequest(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateEnrollmentRequestResponse{ID: request.ID})
}

// GetRequest retrieves a student's latest enrollment request for a semester
// @Summary Get the latest enrollment request
// @Description Returns the most recent request the student submitted for the cohort semester
// @Tags enrollment
// @Produce json
// @Param student_id query string true "Student ID" Format(uuid)
// @Param cohort_semester_id query string true "Cohort semester ID" Format(uuid)
// @Success 200 {object} models.EnrollmentRequest "Request retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 404 {object} dto.ErrorResponse "No request exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollment-request [get]
func (c *EnrollmentController) GetRequest(ctx *gin.Context) {
	request, err := c.enrollmentService.GetLatestRequest(ctx, ctx.Query("student_id"), ctx.Query("cohort_semester_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, request)
}
