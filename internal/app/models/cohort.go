package models

import "time"

// Cohort groups students admitted in the same year.
type Cohort struct {
	ID             string `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	AdmissionYear  int    `json:"admission_year" db:"admission_year"`
	GraduationYear int    `json:"graduation_year" db:"graduation_year"`
}

// CohortSemester is one semester in a cohort's sequence, carrying its own
// enrollment window. Same role as an offering's window, scoped to the cohort.
type CohortSemester struct {
	ID              string    `json:"id" db:"id"`
	CohortID        string    `json:"cohort_id" db:"cohort_id"`
	Number          int       `json:"number" db:"number"`
	Term            Term      `json:"term" db:"term"`
	EnrollmentOpen  time.Time `json:"enrollment_open" db:"enrollment_open"`
	EnrollmentClose time.Time `json:"enrollment_close" db:"enrollment_close"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
