package dto

import "github.com/pushkov-fedor/course-selection/internal/app/models"

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Code        string             `json:"code"`
	Title       string             `json:"title"`
	Description models.Description `json:"description"`
	IsActive    bool               `json:"is_active"`
}

// UpdateCourseRequest represents a partial course update; nil fields are
// left untouched.
type UpdateCourseRequest struct {
	Code        *string             `json:"code"`
	Title       *string             `json:"title"`
	Description *models.Description `json:"description"`
	IsActive    *bool               `json:"is_active"`
}

// CreateOfferingRequest represents course offering creation data
type CreateOfferingRequest struct {
	CourseID        string      `json:"course_id" binding:"required"`
	Capacity        int         `json:"capacity" binding:"required,gte=1"`
	Year            int         `json:"year" binding:"required"`
	Term            models.Term `json:"term" binding:"required"`
	EnrollmentOpen  string      `json:"enrollment_open" binding:"required"`
	EnrollmentClose string      `json:"enrollment_close" binding:"required"`
}

// UpdateOfferingRequest represents a partial offering update. The enrolled
// count is deliberately absent: it is owned by enrollment processing.
type UpdateOfferingRequest struct {
	Capacity        *int         `json:"capacity"`
	Year            *int         `json:"year"`
	Term            *models.Term `json:"term"`
	EnrollmentOpen  *string      `json:"enrollment_open"`
	EnrollmentClose *string      `json:"enrollment_close"`
}
