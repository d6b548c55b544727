package dto

import "github.com/pushkov-fedor/course-selection/internal/app/models"

// CreateCohortRequest represents cohort creation data
type CreateCohortRequest struct {
	Name           string `json:"name" binding:"required"`
	AdmissionYear  int    `json:"admission_year" binding:"required"`
	GraduationYear int    `json:"graduation_year" binding:"required"`
}

// UpdateCohortRequest represents a partial cohort update
type UpdateCohortRequest struct {
	Name           *string `json:"name"`
	AdmissionYear  *int    `json:"admission_year"`
	GraduationYear *int    `json:"graduation_year"`
}

// CreateCohortSemesterRequest represents cohort semester creation data
type CreateCohortSemesterRequest struct {
	CohortID        string      `json:"cohort_id" binding:"required"`
	Number          int         `json:"number" binding:"required,gte=1"`
	Term            models.Term `json:"term" binding:"required"`
	EnrollmentOpen  string      `json:"enrollment_open" binding:"required"`
	EnrollmentClose string      `json:"enrollment_close" binding:"required"`
}

// UpdateCohortSemesterRequest represents a partial cohort semester update
type UpdateCohortSemesterRequest struct {
	Number          *int         `json:"number"`
	Term            *models.Term `json:"term"`
	EnrollmentOpen  *string      `json:"enrollment_open"`
	EnrollmentClose *string      `json:"enrollment_close"`
}
