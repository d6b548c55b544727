package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/app/models/dto"
	"github.com/pushkov-fedor/course-selection/internal/app/repositories"
	"github.com/pushkov-fedor/course-selection/internal/pkg/apperrors"
	"github.com/pushkov-fedor/course-selection/internal/pkg/validation"
)

// CohortService defines the interface for cohort and cohort semester operations
type CohortService interface {
	CreateCohort(ctx context.Context, req *dto.CreateCohortRequest) (*models.Cohort, error)
	GetCohortByID(ctx context.Context, id string) (*models.Cohort, error)
	GetAllCohorts(ctx context.Context, limit, offset int) ([]*models.Cohort, error)
	UpdateCohort(ctx context.Context, id string, req *dto.UpdateCohortRequest) (*models.Cohort, error)
	DeleteCohort(ctx context.Context, id string) error

	CreateSemester(ctx context.Context, req *dto.CreateCohortSemesterRequest) (*models.CohortSemester, error)
	GetSemesterByID(ctx context.Context, id string) (*models.CohortSemester, error)
	GetAllSemesters(ctx context.Context, cohortID string, limit, offset int) ([]*models.CohortSemester, error)
	UpdateSemester(ctx context.Context, id string, req *dto.UpdateCohortSemesterRequest) (*models.CohortSemester, error)
	DeleteSemester(ctx context.Context, id string) error
}

// cohortServiceImpl implements CohortService
type cohortServiceImpl struct {
	cohortRepo   *repositories.CohortRepository
	semesterRepo *repositories.CohortSemesterRepository
	logger       zerolog.Logger
}

// NewCohortService creates a new CohortService
func NewCohortService(cohortRepo *repositories.CohortRepository, semesterRepo *repositories.CohortSemesterRepository, logger zerolog.Logger) CohortService {
	return &cohortServiceImpl{
		cohortRepo:   cohortRepo,
		semesterRepo: semesterRepo,
		logger:       logger,
	}
}

// CreateCohort creates a new cohort
func (s *cohortServiceImpl) CreateCohort(ctx context.Context, req *dto.CreateCohortRequest) (*models.Cohort, error) {
	if err := validation.ValidateYear(req.AdmissionYear); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	if err := validation.ValidateYear(req.GraduationYear); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	if req.GraduationYear < req.AdmissionYear {
		return nil, apperrors.NewBadRequestError("graduation_year must not precede admission_year")
	}

	cohort := &models.Cohort{
		Name:           req.Name,
		AdmissionYear:  req.AdmissionYear,
		GraduationYear: req.GraduationYear,
	}

	if err := s.cohortRepo.Create(ctx, cohort); err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("Failed to create cohort")
		return nil, err
	}

	s.logger.Info().Str("cohortId", cohort.ID).Str("name", cohort.Name).Msg("Cohort created")
	return cohort, nil
}

// GetCohortByID retrieves a cohort by ID
func (s *cohortServiceImpl) GetCohortByID(ctx context.Context, id string) (*models.Cohort, error) {
	if err := validation.ValidateUUID("id", id); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	return s.cohortRepo.GetByID(ctx, id)
}

// GetAllCohorts retrieves cohorts with pagination
func (s *cohortServiceImpl) GetAllCohorts(ctx context.Context, limit, offset int) ([]*models.Cohort, error) {
	return s.cohortRepo.GetAll(ctx, limit, offset)
}

// UpdateCohort applies a partial update
func (s *cohortServiceImpl) UpdateCohort(ctx context.Context, id string, req *dto.UpdateCohortRequest) (*models.Cohort, error) {
	if err := validation.ValidateUUID("id", id); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	cohort, err := s.cohortRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		cohort.Name = *req.Name
	}
	if req.AdmissionYear != nil {
		if err := validation.ValidateYear(*req.AdmissionYear); err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		cohort.AdmissionYear = *req.AdmissionYear
	}
	if req.GraduationYear != nil {
		if err := validation.ValidateYear(*req.GraduationYear); err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		cohort.GraduationYear = *req.GraduationYear
	}
	if cohort.GraduationYear < cohort.AdmissionYear {
		return nil, apperrors.NewBadRequestError("graduation_year must not precede admission_year")
	}

	if err := s.cohortRepo.Update(ctx, cohort); err != nil {
		return nil, err
	}

	return cohort, nil
}

// DeleteCohort removes a cohort without semesters.
func (s *cohortServiceImpl) DeleteCohort(ctx context.Context, id string) error {
	if err := validation.ValidateUUID("id", id); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}
	return s.cohortRepo.Delete(ctx, id)
}

// CreateSemester creates a semester in a cohort's sequence
func (s *cohortServiceImpl) CreateSemester(ctx context.Context, req *dto.CreateCohortSemesterRequest) (*models.CohortSemester, error) {
	if err := validation.ValidateUUID("cohort_id", req.CohortID); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	if req.Number < 1 {
		return nil, apperrors.NewBadRequestError("number must be at least 1")
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

	semester := &models.CohortSemester{
		CohortID:        req.CohortID,
		Number:          req.Number,
		Term:            req.Term,
		EnrollmentOpen:  open,
		EnrollmentClose: close,
	}

	if err := s.semesterRepo.Create(ctx, semester); err != nil {
		s.logger.Error().Err(err).Str("cohortId", req.CohortID).Msg("Failed to create cohort semester")
		return nil, err
	}

	s.logger.Info().Str("semesterId", semester.ID).Str("cohortId", semester.CohortID).Msg("Cohort semester created")
	return semester, nil
}

// GetSemesterByID retrieves a cohort semester by ID
func (s *cohortServiceImpl) GetSemesterByID(ctx context.Context, id string) (*models.CohortSemester, error) {
	if err := validation.ValidateUUID("id", id); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	return s.semesterRepo.GetByID(ctx, id)
}

// GetAllSemesters retrieves cohort semesters, optionally filtered by cohort
func (s *cohortServiceImpl) GetAllSemesters(ctx context.Context, cohortID string, limit, offset int) ([]*models.CohortSemester, error) {
	if cohortID != "" {
		if err := validation.ValidateUUID("cohort_id", cohortID); err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
	}
	return s.semesterRepo.GetAll(ctx, cohortID, limit, offset)
}

// UpdateSemester applies a partial update
func (s *cohortServiceImpl) UpdateSemester(ctx context.Context, id string, req *dto.UpdateCohortSemesterRequest) (*models.CohortSemester, error) {
	if err := validation.ValidateUUID("id", id); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	semester, err := s.semesterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Number != nil {
		if *req.Number < 1 {
			return nil, apperrors.NewBadRequestError("number must be at least 1")
		}
		semester.Number = *req.Number
	}
	if req.Term != nil {
		if err := validation.ValidateTerm(*req.Term); err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		semester.Term = *req.Term
	}
	if req.EnrollmentOpen != nil {
		open, err := parseTimestamp("enrollment_open", *req.EnrollmentOpen)
		if err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		semester.EnrollmentOpen = open
	}
	if req.EnrollmentClose != nil {
		close, err := parseTimestamp("enrollment_close", *req.EnrollmentClose)
		if err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		semester.EnrollmentClose = close
	}
	if err := validation.ValidateWindow(semester.EnrollmentOpen, semester.EnrollmentClose); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if err := s.semesterRepo.Update(ctx, semester); err != nil {
		return nil, err
	}

	return semester, nil
}

// DeleteSemester removes a cohort semester.
func (s *cohortServiceImpl) DeleteSemester(ctx context.Context, id string) error {
	if err := validation.ValidateUUID("id", id); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}
	return s.semesterRepo.Delete(ctx, id)
}
