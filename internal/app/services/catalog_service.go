package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pushkov-fedor/course-selection/internal/app/catalog"
	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/app/repositories"
	"github.com/pushkov-fedor/course-selection/internal/pkg/helpers"
)

// CatalogService builds the merged, ordered course catalog.
type CatalogService interface {
	GetCatalog(ctx context.Context, limit, offset int) ([]models.DisplayCourse, error)
}

// courseLister is the slice of CourseRepository the catalog uses.
type courseLister interface {
	GetAll(ctx context.Context, limit, offset int, isActive *bool) ([]*models.Course, error)
}

// offeringLister is the slice of OfferingRepository the catalog uses.
type offeringLister interface {
	GetAll(ctx context.Context, limit, offset int) ([]*models.CourseOffering, error)
}

// catalogServiceImpl implements CatalogService
type catalogServiceImpl struct {
	courseRepo   courseLister
	offeringRepo offeringLister
	logger       zerolog.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(courseRepo *repositories.CourseRepository, offeringRepo *repositories.OfferingRepository, logger zerolog.Logger) CatalogService {
	return &catalogServiceImpl{
		courseRepo:   courseRepo,
		offeringRepo: offeringRepo,
		logger:       logger,
	}
}

// GetCatalog merges active courses with their offerings, derives status and
// availability against the current instant and returns the catalog in
// display order. Pagination applies to the offerings fetch only; the full
// active course set is loaded so no offering on the page loses its course
// to a smaller course page.
func (s *catalogServiceImpl) GetCatalog(ctx context.Context, limit, offset int) ([]models.DisplayCourse, error) {
	active := true
	var courses []*models.Course
	for page := 0; ; page += helpers.MaxLimit {
		batch, err := s.courseRepo.GetAll(ctx, helpers.MaxLimit, page, &active)
		if err != nil {
			return nil, err
		}
		courses = append(courses, batch...)
		if len(batch) < helpers.MaxLimit {
			break
		}
	}

	offerings, err := s.offeringRepo.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	merged := catalog.Merge(courses, offerings, time.Now(), s.logger)
	catalog.Sort(merged)
	return merged, nil
}
