package services

import (
	"context"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/app/models/dto"
	"github.com/pushkov-fedor/course-selection/internal/app/repositories"
	"github.com/pushkov-fedor/course-selection/internal/pkg/apperrors"
	"github.com/pushkov-fedor/course-selection/internal/pkg/validation"
)

// CourseService defines the interface for course operations
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	GetCourseByID(ctx context.Context, id string) (*models.Course, error)
	GetAllCourses(ctx context.Context, limit, offset int, isActive *bool) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, id string, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) error
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
	sanitizer  *bluemonday.Policy
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo *repositories.CourseRepository, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		sanitizer:  bluemonday.StrictPolicy(),
		logger:     logger,
	}
}

// CreateCourse creates a new course. Admin-entered text is stripped of
// markup before it reaches storage.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	title := strings.TrimSpace(s.sanitizer.Sanitize(req.Title))
	if title == "" {
		return nil, apperrors.NewBadRequestError("title is required")
	}
	if len(title) > validation.TitleMaxLength {
		return nil, apperrors.NewBadRequestError("title is too long")
	}

	description := s.sanitizer.Sanitize(string(req.Description))
	if len(description) > validation.DescriptionMaxLength {
		return nil, apperrors.NewBadRequestError("description is too long")
	}

	course := &models.Course{
		Code:        strings.TrimSpace(s.sanitizer.Sanitize(req.Code)),
		Title:       title,
		Description: models.Description(description),
		IsActive:    req.IsActive,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		s.logger.Error().Err(err).Str("title", title).Msg("Failed to create course")
		return nil, err
	}

	s.logger.Info().Str("courseId", course.ID).Str("title", course.Title).Msg("Course created")
	return course, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	if err := validation.ValidateUUID("id", id); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	return s.courseRepo.GetByID(ctx, id)
}

// GetAllCourses retrieves courses with pagination and an optional activity filter
func (s *courseServiceImpl) GetAllCourses(ctx context.Context, limit, offset int, isActive *bool) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx, limit, offset, isActive)
}

// UpdateCourse applies a partial update; nil fields keep their current value.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id string, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if err := validation.ValidateUUID("id", id); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		course.Code = strings.TrimSpace(s.sanitizer.Sanitize(*req.Code))
	}
	if req.Title != nil {
		title := strings.TrimSpace(s.sanitizer.Sanitize(*req.Title))
		if title == "" {
			return nil, apperrors.NewBadRequestError("title cannot be empty")
		}
		if len(title) > validation.TitleMaxLength {
			return nil, apperrors.NewBadRequestError("title is too long")
		}
		course.Title = title
	}
	if req.Description != nil {
		description := s.sanitizer.Sanitize(string(*req.Description))
		if len(description) > validation.DescriptionMaxLength {
			return nil, apperrors.NewBadRequestError("description is too long")
		}
		course.Description = models.Description(description)
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		s.logger.Error().Err(err).Str("courseId", id).Msg("Failed to update course")
		return nil, err
	}

	return course, nil
}

// DeleteCourse removes a course without offerings.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id string) error {
	if err := validation.ValidateUUID("id", id); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("courseId", id).Msg("Course deleted")
	return nil
}
