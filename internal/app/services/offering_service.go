package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/app/models/dto"
	"github.com/pushkov-fedor/course-selection/internal/app/repositories"
	"github.com/pushkov-fedor/course-selection/internal/pkg/apperrors"
	"github.com/pushkov-fedor/course-selection/internal/pkg/validation"
)

// OfferingService defines the interface for course offering operations
type OfferingService interface {
	CreateOffering(ctx context.Context, req *dto.CreateOfferingRequest) (*models.CourseOffering, error)
	GetOfferingByID(ctx context.Context, id string) (*models.CourseOffering, error)
	GetAllOfferings(ctx context.Context, limit, offset int) ([]*models.CourseOffering, error)
	UpdateOffering(ctx context.Context, id string, req *dto.UpdateOfferingRequest) (*models.CourseOffering, error)
	DeleteOffering(ctx context.Context, id string) error
}

// offeringServiceImpl implements OfferingService
type offeringServiceImpl struct {
	offeringRepo *repositories.OfferingRepository
	courseRepo   *repositories.CourseRepository
	logger       zerolog.Logger
}

// NewOfferingService creates a new OfferingService
func NewOfferingService(offeringRepo *repositories.OfferingRepository, courseRepo *repositories.CourseRepository, logger zerolog.Logger) OfferingService {
	return &offeringServiceImpl{
		offeringRepo: offeringRepo,
		courseRepo:   courseRepo,
		logger:       logger,
	}
}

func parseTimestamp(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be an RFC 3339 timestamp", field)
	}
	return t, nil
}

// CreateOffering creates a new offering for an existing course. Enrolled
// always starts at zero regardless of the request.
func (s *offeringServiceImpl) CreateOffering(ctx context.Context, req *dto.CreateOfferingRequest) (*models.CourseOffering, error) {
	if err := validation.ValidateUUID("course_id", req.CourseID); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	if err := validation.ValidateCapacity(req.Capacity); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	if err := validation.ValidateYear(req.Year); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	if err := validation.ValidateTerm(req.Term); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	open, err := parseTimestamp("enrollment_open", req.EnrollmentOpen)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	close, err := parseTimestamp("enrollment_close", req.EnrollmentClose)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	if err := validation.ValidateWindow(open, close); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		return nil, err
	}

	offering := &models.CourseOffering{
		CourseID:        req.CourseID,
		Capacity:        req.Capacity,
		EnrollmentOpen:  open,
		EnrollmentClose: close,
		Year:            req.Year,
		Term:            req.Term,
	}

	if err := s.offeringRepo.Create(ctx, offering); err != nil {
		s.logger.Error().Err(err).Str("courseId", req.CourseID).Msg("Failed to create offering")
		return nil, err
	}

	s.logger.Info().Str("offeringId", offering.ID).Str("courseId", offering.CourseID).Msg("Offering created")
	return offering, nil
}

// GetOfferingByID retrieves an offering by ID
func (s *offeringServiceImpl) GetOfferingByID(ctx context.Context, id string) (*models.CourseOffering, error) {
	if err := validation.ValidateUUID("id", id); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	return s.offeringRepo.GetByID(ctx, id)
}

// GetAllOfferings retrieves offerings with pagination
func (s *offeringServiceImpl) GetAllOfferings(ctx context.Context, limit, offset int) ([]*models.CourseOffering, error) {
	return s.offeringRepo.GetAll(ctx, limit, offset)
}

// UpdateOffering applies a partial update. Capacity may drop below the
// current enrolled count; availability then reads as negative rather than
// being clamped, so overbooking stays visible.
func (s *offeringServiceImpl) UpdateOffering(ctx context.Context, id string, req *dto.UpdateOfferingRequest) (*models.CourseOffering, error) {
	if err := validation.ValidateUUID("id", id); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Capacity != nil {
		if err := validation.ValidateCapacity(*req.Capacity); err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		offering.Capacity = *req.Capacity
	}
	if req.Year != nil {
		if err := validation.ValidateYear(*req.Year); err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		offering.Year = *req.Year
	}
	if req.Term != nil {
		if err := validation.ValidateTerm(*req.Term); err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		offering.Term = *req.Term
	}
	if req.EnrollmentOpen != nil {
		open, err := parseTimestamp("enrollment_open", *req.EnrollmentOpen)
		if err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		offering.EnrollmentOpen = open
	}
	if req.EnrollmentClose != nil {
		close, err := parseTimestamp("enrollment_close", *req.EnrollmentClose)
		if err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		offering.EnrollmentClose = close
	}
	if err := validation.ValidateWindow(offering.EnrollmentOpen, offering.EnrollmentClose); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if err := s.offeringRepo.Update(ctx, offering); err != nil {
		s.logger.Error().Err(err).Str("offeringId", id).Msg("Failed to update offering")
		return nil, err
	}

	return offering, nil
}

// DeleteOffering removes an offering.
func (s *offeringServiceImpl) DeleteOffering(ctx context.Context, id string) error {
	if err := validation.ValidateUUID("id", id); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	if err := s.offeringRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("offeringId", id).Msg("Offering deleted")
	return nil
}
