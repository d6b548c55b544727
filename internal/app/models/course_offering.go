package models

import "time"

// CourseOffering represents a scheduled instance of a course for a specific
// year and term with its own capacity and enrollment window. The server is
// the sole writer of Enrolled; clients never mutate seat counts.
type CourseOffering struct {
	ID              string    `json:"id" db:"id"`
	CourseID        string    `json:"course_id" db:"course_id"`
	Capacity        int       `json:"capacity" db:"capacity"`
	Enrolled        int       `json:"enrolled" db:"enrolled"`
	EnrollmentOpen  time.Time `json:"enrollment_open" db:"enrollment_open"`
	EnrollmentClose time.Time `json:"enrollment_close" db:"enrollment_close"`
	Year            int       `json:"year" db:"year"`
	Term            Term      `json:"term" db:"term"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
