package catalog

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return parsed
}

func TestDeriveStatus(t *testing.T) {
	open := "2026-01-01T00:00:00Z"
	close := "2026-02-01T00:00:00Z"

	tests := []struct {
		name     string
		capacity int
		enrolled int
		now      string
		want     models.CourseStatus
	}{
		{"full within window", 30, 30, "2026-01-15T00:00:00Z", models.StatusFull},
		{"overbooked counts as full", 30, 31, "2026-01-15T00:00:00Z", models.StatusFull},
		{"full outside window still full", 30, 30, "2026-03-01T00:00:00Z", models.StatusFull},
		{"open inside window", 30, 10, "2026-01-15T00:00:00Z", models.StatusOpen},
		{"closed after window", 30, 10, "2026-03-01T00:00:00Z", models.StatusClosed},
		{"closed before window", 30, 10, "2025-12-31T00:00:00Z", models.StatusClosed},
		{"open exactly at open instant", 30, 10, open, models.StatusOpen},
		{"open exactly at close instant", 30, 10, close, models.StatusOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offering := &models.CourseOffering{
				Capacity:        tt.capacity,
				Enrolled:        tt.enrolled,
				EnrollmentOpen:  mustTime(t, open),
				EnrollmentClose: mustTime(t, close),
			}
			if got := DeriveStatus(offering, mustTime(t, tt.now)); got != tt.want {
				t.Errorf("DeriveStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeriveStatusMalformedWindow(t *testing.T) {
	// Open after close means no instant is inside the window.
	offering := &models.CourseOffering{
		Capacity:        10,
		Enrolled:        0,
		EnrollmentOpen:  mustTime(t, "2026-02-01T00:00:00Z"),
		EnrollmentClose: mustTime(t, "2026-01-01T00:00:00Z"),
	}
	for _, now := range []string{"2025-06-01T00:00:00Z", "2026-01-15T00:00:00Z", "2026-06-01T00:00:00Z"} {
		if got := DeriveStatus(offering, mustTime(t, now)); got != models.StatusClosed {
			t.Errorf("DeriveStatus(now=%s) = %q, want %q", now, got, models.StatusClosed)
		}
	}
}

func TestMergeDropsUnmatchedOfferings(t *testing.T) {
	now := mustTime(t, "2026-01-15T00:00:00Z")
	courses := []*models.Course{
		{ID: "c1", Title: "Algorithms", IsActive: true},
	}
	offerings := []*models.CourseOffering{
		{ID: "o1", CourseID: "c1", Capacity: 30, Enrolled: 10, EnrollmentOpen: mustTime(t, "2026-01-01T00:00:00Z"), EnrollmentClose: mustTime(t, "2026-02-01T00:00:00Z"), Year: 2026, Term: models.TermSpring},
		{ID: "o2", CourseID: "ghost", Capacity: 30, Enrolled: 0, Year: 2026, Term: models.TermFall},
	}

	merged := Merge(courses, offerings, now, zerolog.Nop())
	if len(merged) != 1 {
		t.Fatalf("Merge() returned %d courses, want 1", len(merged))
	}
	got := merged[0]
	if got.OfferingID != "o1" {
		t.Errorf("OfferingID = %q, want %q", got.OfferingID, "o1")
	}
	if got.AvailableSeats != 20 {
		t.Errorf("AvailableSeats = %d, want 20", got.AvailableSeats)
	}
	if got.Status != models.StatusOpen {
		t.Errorf("Status = %q, want %q", got.Status, models.StatusOpen)
	}
}

func TestMergeSeatsAreExact(t *testing.T) {
	now := mustTime(t, "2026-01-15T00:00:00Z")
	courses := []*models.Course{{ID: "c1", Title: "DB"}}

	// Overbooked offering: seats must go negative, not clamp to zero.
	offerings := []*models.CourseOffering{
		{ID: "o1", CourseID: "c1", Capacity: 30, Enrolled: 32},
	}
	merged := Merge(courses, offerings, now, zerolog.Nop())
	if merged[0].AvailableSeats != -2 {
		t.Errorf("AvailableSeats = %d, want -2", merged[0].AvailableSeats)
	}
}

func TestMergeNormalizesMissingTitle(t *testing.T) {
	now := mustTime(t, "2026-01-15T00:00:00Z")
	merged := Merge(
		[]*models.Course{{ID: "c1"}},
		[]*models.CourseOffering{{ID: "o1", CourseID: "c1", Capacity: 1}},
		now, zerolog.Nop(),
	)
	if merged[0].Title == "" {
		t.Error("merged title is empty, want placeholder")
	}
}

func TestSortCatalogOrder(t *testing.T) {
	courses := []models.DisplayCourse{
		{OfferingID: "a", Year: 2025, Term: models.TermFall, Title: "Zeta"},
		{OfferingID: "b", Year: 2026, Term: models.TermSpring, Title: "Beta"},
		{OfferingID: "c", Year: 2026, Term: models.TermFall, Title: "Alpha"},
		{OfferingID: "d", Year: 2026, Term: models.TermSpring, Title: "Alpha"},
	}

	Sort(courses)

	wantOrder := []string{"d", "b", "c", "a"}
	for i, want := range wantOrder {
		if courses[i].OfferingID != want {
			t.Fatalf("position %d: got offering %q, want %q (full order: %v)", i, courses[i].OfferingID, want, ids(courses))
		}
	}
}

func TestSortIsStable(t *testing.T) {
	courses := []models.DisplayCourse{
		{OfferingID: "x", Year: 2026, Term: models.TermSpring, Title: "Same"},
		{OfferingID: "y", Year: 2026, Term: models.TermSpring, Title: "Same"},
	}
	Sort(courses)
	if courses[0].OfferingID != "x" || courses[1].OfferingID != "y" {
		t.Errorf("equal entries reordered: %v", ids(courses))
	}
}

func ids(courses []models.DisplayCourse) []string {
	out := make([]string, len(courses))
	for i, c := range courses {
		out[i] = c.OfferingID
	}
	return out
}
