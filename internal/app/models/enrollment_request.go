package models

import "time"

// EnrollmentRequest is a student's submitted course selection for a cohort
// semester. It is the only entity clients create; seat counts are adjusted
// server-side while the request is processed.
type EnrollmentRequest struct {
	ID               string                  `json:"id" db:"id"`
	StudentID        string                  `json:"student_id" db:"student_id"`
	CohortSemesterID string                  `json:"cohort_semester_id" db:"cohort_semester_id"`
	Courses          []EnrollmentRequestItem `json:"courses"`
	Status           RequestStatus           `json:"status" db:"status"`
	Error            string                  `json:"error,omitempty" db:"error"`
	Type             RequestType             `json:"type" db:"type"`
	Switch           []SwitchPair            `json:"switch,omitempty"`
	CreatedAt        time.Time               `json:"created_at" db:"created_at"`
}

// EnrollmentRequestItem is one course choice inside a request with its
// individual processing outcome.
type EnrollmentRequestItem struct {
	ID                  string     `json:"ID" db:"id"`
	CourseOfferingID    string     `json:"CourseOfferingID" db:"course_offering_id"`
	StudentID           string     `json:"StudentID" db:"student_id"`
	EnrollmentRequestID string     `json:"EnrollmentRequestID" db:"enrollment_request_id"`
	Type                ItemType   `json:"Type" db:"type"`
	Status              ItemStatus `json:"Status" db:"status"`
	CommentOnStatus     string     `json:"CommentOnStatus,omitempty" db:"comment_on_status"`
	CreatedAt           time.Time  `json:"CreatedAt" db:"created_at"`
}

// SwitchPair asks the server to replace one enrolled offering with another.
type SwitchPair struct {
	FromCourseOfferingID string `json:"from_course_offering_id" db:"from_course_offering_id"`
	ToCourseOfferingID   string `json:"to_course_offering_id" db:"to_course_offering_id"`
}
