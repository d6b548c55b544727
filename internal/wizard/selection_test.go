package wizard

import (
	"testing"
	"time"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/app/models/dto"
	"github.com/pushkov-fedor/course-selection/internal/pkg/schedule"
)

func TestProjectPreservesCatalogOrder(t *testing.T) {
	catalog := []models.DisplayCourse{
		{OfferingID: "o1", Title: "Algorithms", Capacity: 40, AvailableSeats: 10, Status: models.StatusOpen},
		{OfferingID: "o2", Title: "Databases", Capacity: 30, AvailableSeats: 0, Status: models.StatusFull},
		{OfferingID: "o3", Title: "Networks", Capacity: 20, AvailableSeats: 5, Status: models.StatusOpen},
	}

	sel := Project(catalog, []string{"o3", "o1", "unknown"})

	if len(sel.Courses) != 2 {
		t.Fatalf("got %d courses, want 2", len(sel.Courses))
	}
	if sel.Courses[0].OfferingID != "o1" || sel.Courses[1].OfferingID != "o3" {
		t.Errorf("order not preserved: %s, %s", sel.Courses[0].OfferingID, sel.Courses[1].OfferingID)
	}
	if sel.Summary.Courses != 2 || sel.Summary.TotalSeats != 60 || sel.Summary.SeatsRemaining != 15 {
		t.Errorf("wrong summary: %+v", sel.Summary)
	}
}

func TestProjectCountsFullCourses(t *testing.T) {
	catalog := []models.DisplayCourse{
		{OfferingID: "o1", Status: models.StatusFull},
	}

	sel := Project(catalog, []string{"o1"})
	if sel.Summary.Full != 1 {
		t.Errorf("got %d full, want 1", sel.Summary.Full)
	}
}

func TestProjectWizardCarriesPriority(t *testing.T) {
	catalog := []models.DisplayCourse{
		{OfferingID: "o1", Title: "Algorithms", Capacity: 40, AvailableSeats: 10, Status: models.StatusOpen},
		{OfferingID: "o2", Title: "Databases", Capacity: 30, AvailableSeats: 0, Status: models.StatusFull},
	}

	w := New("s1", "cs1", []dto.EnrollmentCourseChoice{
		{CourseOfferingID: "o2", Type: models.ItemTypeMain},
	})
	w.Priority = 4

	sel := ProjectWizard(w, catalog)
	if sel.Summary.Courses != 1 || sel.Summary.Priority != 4 {
		t.Errorf("wrong summary: %+v", sel.Summary)
	}
	if sel.Courses[0].OfferingID != "o2" {
		t.Errorf("got offering %s, want o2", sel.Courses[0].OfferingID)
	}
}

func TestConflictsForSelectedOnly(t *testing.T) {
	start := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 2, 0)
	monday := schedule.Slot{Day: time.Monday, Start: "10:00", End: "12:00"}

	schedules := []schedule.CourseSchedule{
		{OfferingID: "a", StartDate: start, EndDate: end, Slots: []schedule.Slot{monday}},
		{OfferingID: "b", StartDate: start, EndDate: end, Slots: []schedule.Slot{monday}},
		{OfferingID: "c", StartDate: start, EndDate: end, Slots: []schedule.Slot{monday}},
	}

	// Conflicting course "c" is not selected, so it must not appear.
	conflicts := ConflictsFor(schedules, []string{"a", "b"})
	if len(conflicts) == 0 {
		t.Fatal("expected conflicts between a and b")
	}
	for _, c := range conflicts {
		if c.OfferingA == "c" || c.OfferingB == "c" {
			t.Errorf("unselected offering leaked into conflicts: %+v", c)
		}
	}
}

func TestConflictsForSingleSelection(t *testing.T) {
	start := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	schedules := []schedule.CourseSchedule{
		{OfferingID: "a", StartDate: start, EndDate: start.AddDate(0, 1, 0),
			Slots: []schedule.Slot{{Day: time.Monday, Start: "10:00", End: "12:00"}}},
	}

	if got := ConflictsFor(schedules, []string{"a"}); got != nil {
		t.Errorf("one course cannot conflict, got %+v", got)
	}
}
