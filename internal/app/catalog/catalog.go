// Package catalog contains the pure derivation layer that turns flat Course
// and CourseOffering records into display-ready aggregates: status
// derivation, the course/offering merge and the canonical catalog ordering.
package catalog

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
)

// DeriveStatus computes the enrollment status of an offering at a given
// instant. Fullness wins over the time window: a full course outside its
// window is reported "full", not "closed". A malformed window (zero values
// or open after close) makes every instant fall outside the window, so it
// silently yields "closed".
func DeriveStatus(offering *models.CourseOffering, now time.Time) models.CourseStatus {
	if offering.Enrolled >= offering.Capacity {
		return models.StatusFull
	}
	if now.Before(offering.EnrollmentOpen) || now.After(offering.EnrollmentClose) {
		return models.StatusClosed
	}
	return models.StatusOpen
}

// MergeOne joins a course with one of its offerings into a DisplayCourse.
// AvailableSeats is capacity minus enrolled, exactly: no clamping, so a
// server-side overbooking bug surfaces as a negative seat count instead of
// being hidden.
func MergeOne(course *models.Course, offering *models.CourseOffering, now time.Time) models.DisplayCourse {
	title := course.Title
	if title == "" {
		title = "Untitled course"
	}

	return models.DisplayCourse{
		ID:              course.ID,
		Code:            course.Code,
		Title:           title,
		Description:     course.Description.String(),
		IsActive:        course.IsActive,
		OfferingID:      offering.ID,
		Capacity:        offering.Capacity,
		Enrolled:        offering.Enrolled,
		EnrollmentOpen:  offering.EnrollmentOpen,
		EnrollmentClose: offering.EnrollmentClose,
		Year:            offering.Year,
		Term:            offering.Term,
		Status:          DeriveStatus(offering, now),
		AvailableSeats:  offering.Capacity - offering.Enrolled,
	}
}

// Merge joins every offering with its course, keyed by course_id over a map
// built once from the course list. An offering whose course is missing
// (deleted or unpublished) is dropped from the result with a diagnostic,
// not treated as an error. Output order is unspecified; callers impose
// ordering with Sort.
func Merge(courses []*models.Course, offerings []*models.CourseOffering, now time.Time, lgr zerolog.Logger) []models.DisplayCourse {
	courseByID := make(map[string]*models.Course, len(courses))
	for _, c := range courses {
		courseByID[c.ID] = c
	}

	result := make([]models.DisplayCourse, 0, len(offerings))
	for _, offering := range offerings {
		course, ok := courseByID[offering.CourseID]
		if !ok {
			lgr.Warn().
				Str("offeringId", offering.ID).
				Str("courseId", offering.CourseID).
				Msg("Dropping offering without matching course")
			continue
		}
		result = append(result, MergeOne(course, offering, now))
	}

	return result
}

// Sort orders the catalog: year descending, then spring before fall within
// the same year, then title. The sort is stable so equal entries never
// reorder between calls.
func Sort(courses []models.DisplayCourse) {
	sort.SliceStable(courses, func(i, j int) bool {
		a, b := courses[i], courses[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if a.Term != b.Term {
			return a.Term == models.TermSpring
		}
		return a.Title < b.Title
	})
}
