package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/pkg/helpers"
)

// fakeCourseLister pages through a fixed course set the way the repository
// does, recording the offsets it was asked for.
type fakeCourseLister struct {
	courses []*models.Course
	offsets []int
}

func (f *fakeCourseLister) GetAll(ctx context.Context, limit, offset int, isActive *bool) ([]*models.Course, error) {
	f.offsets = append(f.offsets, offset)
	if offset >= len(f.courses) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.courses) {
		end = len(f.courses)
	}
	return f.courses[offset:end], nil
}

type fakeOfferingLister struct {
	offerings []*models.CourseOffering
}

func (f *fakeOfferingLister) GetAll(ctx context.Context, limit, offset int) ([]*models.CourseOffering, error) {
	return f.offerings, nil
}

func TestGetCatalogLoadsAllCoursePages(t *testing.T) {
	now := time.Now()
	total := helpers.MaxLimit + 3
	courses := make([]*models.Course, total)
	for i := range courses {
		courses[i] = &models.Course{
			ID:       fmt.Sprintf("c%04d", i),
			Title:    fmt.Sprintf("Course %04d", i),
			IsActive: true,
		}
	}

	// The offering references a course beyond the first page.
	last := courses[total-1]
	offerings := &fakeOfferingLister{offerings: []*models.CourseOffering{{
		ID:              "o1",
		CourseID:        last.ID,
		Capacity:        30,
		Enrolled:        5,
		EnrollmentOpen:  now.Add(-time.Hour),
		EnrollmentClose: now.Add(time.Hour),
		Year:            now.Year(),
		Term:            models.TermFall,
	}}}

	lister := &fakeCourseLister{courses: courses}
	s := &catalogServiceImpl{courseRepo: lister, offeringRepo: offerings, logger: zerolog.Nop()}

	merged, err := s.GetCatalog(context.Background(), 100, 0)
	if err != nil {
		t.Fatalf("GetCatalog: %v", err)
	}

	if len(merged) != 1 {
		t.Fatalf("got %d catalog entries, want 1", len(merged))
	}
	if merged[0].ID != last.ID {
		t.Errorf("got course %s, want %s", merged[0].ID, last.ID)
	}
	if len(lister.offsets) != 2 || lister.offsets[1] != helpers.MaxLimit {
		t.Errorf("course pages fetched at offsets %v, want [0 %d]", lister.offsets, helpers.MaxLimit)
	}
}
