package models

import "time"

// DisplayCourse is the merged, display-ready projection of a Course and one
// of its offerings. It is derived on every merge and never persisted;
// AvailableSeats in particular is always recomputed from its inputs.
type DisplayCourse struct {
	ID              string       `json:"id"`
	Code            string       `json:"code,omitempty"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	IsActive        bool         `json:"is_active"`
	OfferingID      string       `json:"offering_id"`
	Capacity        int          `json:"capacity"`
	Enrolled        int          `json:"enrolled"`
	EnrollmentOpen  time.Time    `json:"enrollment_open"`
	EnrollmentClose time.Time    `json:"enrollment_close"`
	Year            int          `json:"year"`
	Term            Term         `json:"term"`
	Status          CourseStatus `json:"status"`
	AvailableSeats  int          `json:"available_seats"`
}
