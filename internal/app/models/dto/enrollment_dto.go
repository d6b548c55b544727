package dto

import "github.com/pushkov-fedor/course-selection/internal/app/models"

// EnrollmentCourseChoice is one selected offering inside a new request.
type EnrollmentCourseChoice struct {
	CourseOfferingID string          `json:"course_offering_id" binding:"required"`
	Type             models.ItemType `json:"type" binding:"required"`
}

// CreateEnrollmentRequestRequest is the body of POST /enrollment-request.
// For type "new" the courses list drives processing; for type "switch" the
// switch pairs do and courses must be empty.
type CreateEnrollmentRequestRequest struct {
	StudentID        string                   `json:"student_id" binding:"required"`
	CohortSemesterID string                   `json:"cohort_semester_id" binding:"required"`
	Courses          []EnrollmentCourseChoice `json:"courses"`
	Type             models.RequestType       `json:"type" binding:"required"`
	Switch           []models.SwitchPair      `json:"switch"`
}

// CreateEnrollmentRequestResponse returns the id of the created request.
type CreateEnrollmentRequestResponse struct {
	ID string `json:"id"`
}
