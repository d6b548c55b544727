package wizard

import (
	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/pkg/schedule"
)

// Summary totals the selection for the sidebar display. Priority is only
// set when the selection is projected from a wizard in progress.
type Summary struct {
	Courses        int
	TotalSeats     int
	SeatsRemaining int
	Full           int
	Priority       int
}

// Selection is the ephemeral wizard-time choice set: selected offering ids
// projected over the catalog. It is recomputed on every change and never
// persisted.
type Selection struct {
	Courses []models.DisplayCourse
	Summary Summary
}

// Project builds the selection view for the given offering ids. Unknown ids
// are skipped; the result preserves catalog order.
func Project(catalog []models.DisplayCourse, selectedOfferingIDs []string) Selection {
	selected := make(map[string]bool, len(selectedOfferingIDs))
	for _, id := range selectedOfferingIDs {
		selected[id] = true
	}

	var sel Selection
	for _, course := range catalog {
		if !selected[course.OfferingID] {
			continue
		}
		sel.Courses = append(sel.Courses, course)
		sel.Summary.Courses++
		sel.Summary.TotalSeats += course.Capacity
		sel.Summary.SeatsRemaining += course.AvailableSeats
		if course.Status == models.StatusFull {
			sel.Summary.Full++
		}
	}
	return sel
}

// ProjectWizard builds the confirmation view for a wizard in progress,
// carrying the chosen priority into the summary.
func ProjectWizard(w *Wizard, catalog []models.DisplayCourse) Selection {
	ids := make([]string, 0, len(w.Courses))
	for _, choice := range w.Courses {
		ids = append(ids, choice.CourseOfferingID)
	}
	sel := Project(catalog, ids)
	sel.Summary.Priority = w.Priority
	return sel
}

// ConflictsFor reports schedule collisions among the selected offerings over
// the weeks spanned by their date ranges. Purely informational for display.
func ConflictsFor(schedules []schedule.CourseSchedule, selectedOfferingIDs []string) []schedule.Conflict {
	selected := make(map[string]bool, len(selectedOfferingIDs))
	for _, id := range selectedOfferingIDs {
		selected[id] = true
	}

	var chosen []schedule.CourseSchedule
	var from, to *schedule.CourseSchedule
	for i := range schedules {
		s := schedules[i]
		if !selected[s.OfferingID] {
			continue
		}
		chosen = append(chosen, s)
		if from == nil || s.StartDate.Before(from.StartDate) {
			from = &schedules[i]
		}
		if to == nil || s.EndDate.After(to.EndDate) {
			to = &schedules[i]
		}
	}
	if len(chosen) < 2 {
		return nil
	}

	weeks := schedule.Weeks(from.StartDate, to.EndDate)
	return schedule.Conflicts(chosen, weeks)
}
