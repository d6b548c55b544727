package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/pushkov-fedor/course-selection/internal/app/catalog"
	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/app/models/dto"
	"github.com/pushkov-fedor/course-selection/internal/app/repositories"
	"github.com/pushkov-fedor/course-selection/internal/db"
	"github.com/pushkov-fedor/course-selection/internal/pkg/apperrors"
	"github.com/pushkov-fedor/course-selection/internal/pkg/validation"
)

// nowFunc supplies the current instant for status derivation. Tests swap it.
var nowFunc = time.Now

// EnrollmentService defines the interface for enrollment request operations
type EnrollmentService interface {
	CreateRequest(ctx context.Context, req *dto.CreateEnrollmentRequestRequest) (*models.EnrollmentRequest, error)
	GetLatestRequest(ctx context.Context, studentID, cohortSemesterID string) (*models.EnrollmentRequest, error)
	GetEnrolledOfferingIDs(ctx context.Context, studentID string) ([]string, error)
}

// enrollmentStore is the slice of EnrollmentRepository the service uses.
type enrollmentStore interface {
	CreateTx(ctx context.Context, tx pgx.Tx, request *models.EnrollmentRequest) error
	UpdateStatusTx(ctx context.Context, tx pgx.Tx, requestID string, status models.RequestStatus, errText string) error
	UpdateItemStatusTx(ctx context.Context, tx pgx.Tx, itemID string, status models.ItemStatus, comment string) error
	GetLatestByStudentAndSemester(ctx context.Context, studentID, cohortSemesterID string) (*models.EnrollmentRequest, error)
	GetEnrolledOfferingIDs(ctx context.Context, studentID string) ([]string, error)
	HoldsOfferingTx(ctx context.Context, tx pgx.Tx, studentID, offeringID string) (bool, error)
	CancelItemsTx(ctx context.Context, tx pgx.Tx, studentID, offeringID, comment string) error
}

// offeringStore is the slice of OfferingRepository the service uses.
type offeringStore interface {
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*models.CourseOffering, error)
	AdjustEnrolled(ctx context.Context, tx pgx.Tx, id string, delta int) error
}

// semesterStore is the slice of CohortSemesterRepository the service uses.
type semesterStore interface {
	GetByID(ctx context.Context, id string) (*models.CohortSemester, error)
}

// enrollmentServiceImpl implements EnrollmentService
type enrollmentServiceImpl struct {
	pool           *pgxpool.Pool
	enrollmentRepo enrollmentStore
	offeringRepo   offeringStore
	semesterRepo   semesterStore
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	pool *pgxpool.Pool,
	enrollmentRepo *repositories.EnrollmentRepository,
	offeringRepo *repositories.OfferingRepository,
	semesterRepo *repositories.CohortSemesterRepository,
	logger zerolog.Logger,
) EnrollmentService {
	return &enrollmentServiceImpl{
		pool:           pool,
		enrollmentRepo: enrollmentRepo,
		offeringRepo:   offeringRepo,
		semesterRepo:   semesterRepo,
		logger:         logger,
	}
}

// CreateRequest records and processes an enrollment request in a single
// transaction. Seat counts move only here: each chosen offering is locked,
// its status derived against the current instant, and the seat taken only
// while the offering is open. Per-course failures do not abort the request;
// they surface as item-level errors and a partial or failed overall status.
func (s *enrollmentServiceImpl) CreateRequest(ctx context.Context, req *dto.CreateEnrollmentRequestRequest) (*models.EnrollmentRequest, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.semesterRepo.GetByID(ctx, req.CohortSemesterID); err != nil {
		return nil, err
	}

	request := &models.EnrollmentRequest{
		StudentID:        req.StudentID,
		CohortSemesterID: req.CohortSemesterID,
		Status:           models.RequestStatusNew,
		Type:             req.Type,
		Switch:           req.Switch,
	}
	for _, choice := range req.Courses {
		request.Courses = append(request.Courses, models.EnrollmentRequestItem{
			CourseOfferingID: choice.CourseOfferingID,
			Type:             choice.Type,
			Status:           models.ItemStatusNew,
		})
	}
	// A switch request carries one item per pair, pointing at the target.
	for _, pair := range req.Switch {
		request.Courses = append(request.Courses, models.EnrollmentRequestItem{
			CourseOfferingID: pair.ToCourseOfferingID,
			Type:             models.ItemTypeSwitch,
			Status:           models.ItemStatusNew,
		})
	}

	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.enrollmentRepo.CreateTx(ctx, tx, request); err != nil {
			return err
		}

		switch req.Type {
		case models.RequestTypeNew:
			return s.processNewRequest(ctx, tx, request)
		case models.RequestTypeSwitch:
			return s.processSwitchRequest(ctx, tx, request)
		default:
			return apperrors.NewBadRequestError("unknown request type")
		}
	})
	if err != nil {
		s.logger.Error().Err(err).
			Str("studentId", req.StudentID).
			Str("cohortSemesterId", req.CohortSemesterID).
			Msg("Failed to process enrollment request")
		return nil, err
	}

	s.logger.Info().
		Str("requestId", request.ID).
		Str("studentId", request.StudentID).
		Str("status", string(request.Status)).
		Msg("Enrollment request processed")
	return request, nil
}

func (s *enrollmentServiceImpl) validateRequest(req *dto.CreateEnrollmentRequestRequest) error {
	if err := validation.ValidateUUID("student_id", req.StudentID); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}
	if err := validation.ValidateUUID("cohort_semester_id", req.CohortSemesterID); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	switch req.Type {
	case models.RequestTypeNew:
		if len(req.Courses) == 0 {
			return apperrors.NewBadRequestError("courses must not be empty for a new request")
		}
		if len(req.Switch) > 0 {
			return apperrors.NewBadRequestError("switch pairs are not allowed for a new request")
		}
		seen := make(map[string]bool, len(req.Courses))
		for _, choice := range req.Courses {
			if err := validation.ValidateUUID("course_offering_id", choice.CourseOfferingID); err != nil {
				return apperrors.NewBadRequestError(err.Error())
			}
			if choice.Type != models.ItemTypeMain && choice.Type != models.ItemTypeReserve {
				return apperrors.NewBadRequestError("course type must be main or reserve")
			}
			if seen[choice.CourseOfferingID] {
				return apperrors.NewBadRequestError("duplicate course offering in request")
			}
			seen[choice.CourseOfferingID] = true
		}
	case models.RequestTypeSwitch:
		if len(req.Switch) == 0 {
			return apperrors.NewBadRequestError("switch pairs must not be empty for a switch request")
		}
		if len(req.Courses) > 0 {
			return apperrors.NewBadRequestError("courses are not allowed for a switch request")
		}
		for _, pair := range req.Switch {
			if err := validation.ValidateUUID("from_course_offering_id", pair.FromCourseOfferingID); err != nil {
				return apperrors.NewBadRequestError(err.Error())
			}
			if err := validation.ValidateUUID("to_course_offering_id", pair.ToCourseOfferingID); err != nil {
				return apperrors.NewBadRequestError(err.Error())
			}
			if pair.FromCourseOfferingID == pair.ToCourseOfferingID {
				return apperrors.NewBadRequestError("switch source and target must differ")
			}
		}
	default:
		return apperrors.NewBadRequestError("type must be new or switch")
	}

	return nil
}

// processNewRequest takes one seat per open offering. Offerings are locked
// in id order so concurrent requests cannot deadlock.
func (s *enrollmentServiceImpl) processNewRequest(ctx context.Context, tx pgx.Tx, request *models.EnrollmentRequest) error {
	order := make([]int, len(request.Courses))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return request.Courses[order[a]].CourseOfferingID < request.Courses[order[b]].CourseOfferingID
	})

	now := nowFunc()
	succeeded, failed := 0, 0
	for _, i := range order {
		item := &request.Courses[i]

		offering, err := s.offeringRepo.GetByIDForUpdate(ctx, tx, item.CourseOfferingID)
		if err != nil {
			if errors.Is(err, apperrors.ErrOfferingNotFound) {
				item.Status = models.ItemStatusError
				item.CommentOnStatus = "course offering not found"
				failed++
				if err := s.enrollmentRepo.UpdateItemStatusTx(ctx, tx, item.ID, item.Status, item.CommentOnStatus); err != nil {
					return err
				}
				continue
			}
			return err
		}

		switch catalog.DeriveStatus(offering, now) {
		case models.StatusOpen:
			if err := s.offeringRepo.AdjustEnrolled(ctx, tx, offering.ID, 1); err != nil {
				return err
			}
			item.Status = models.ItemStatusSuccess
			item.CommentOnStatus = ""
			succeeded++
		case models.StatusFull:
			item.Status = models.ItemStatusError
			item.CommentOnStatus = apperrors.ErrOfferingFull.Error()
			failed++
		default:
			item.Status = models.ItemStatusError
			item.CommentOnStatus = apperrors.ErrEnrollmentWindowClosed.Error()
			failed++
		}

		if err := s.enrollmentRepo.UpdateItemStatusTx(ctx, tx, item.ID, item.Status, item.CommentOnStatus); err != nil {
			return err
		}
	}

	return s.finishRequest(ctx, tx, request, succeeded, failed)
}

// processSwitchRequest moves the student between offerings pair by pair.
// Both sides of a pair are locked in id order. The student must hold the
// source seat and the target must be open; a failed pair leaves both
// offerings untouched. The holding is checked again through the transaction
// once the locks are held: a concurrent switch away from the same source
// commits before the locks are granted, and its cancelled items must not be
// counted as a seat to release twice.
func (s *enrollmentServiceImpl) processSwitchRequest(ctx context.Context, tx pgx.Tx, request *models.EnrollmentRequest) error {
	enrolled, err := s.enrollmentRepo.GetEnrolledOfferingIDs(ctx, request.StudentID)
	if err != nil {
		return err
	}
	holds := make(map[string]bool, len(enrolled))
	for _, id := range enrolled {
		holds[id] = true
	}

	now := nowFunc()
	succeeded, failed := 0, 0
	for i, pair := range request.Switch {
		item := &request.Courses[i]

		fail := func(comment string) error {
			item.Status = models.ItemStatusError
			item.CommentOnStatus = comment
			failed++
			return s.enrollmentRepo.UpdateItemStatusTx(ctx, tx, item.ID, item.Status, item.CommentOnStatus)
		}

		// Pre-lock check against the snapshot; cheap early out only.
		if !holds[pair.FromCourseOfferingID] {
			if err := fail("student is not enrolled in the source offering"); err != nil {
				return err
			}
			continue
		}

		first, second := pair.FromCourseOfferingID, pair.ToCourseOfferingID
		if second < first {
			first, second = second, first
		}
		var target *models.CourseOffering
		locked := true
		for _, id := range []string{first, second} {
			offering, err := s.offeringRepo.GetByIDForUpdate(ctx, tx, id)
			if err != nil {
				if errors.Is(err, apperrors.ErrOfferingNotFound) {
					if err := fail("course offering not found"); err != nil {
						return err
					}
					locked = false
					break
				}
				return err
			}
			if offering.ID == pair.ToCourseOfferingID {
				target = offering
			}
		}
		if !locked {
			continue
		}

		held, err := s.enrollmentRepo.HoldsOfferingTx(ctx, tx, request.StudentID, pair.FromCourseOfferingID)
		if err != nil {
			return err
		}
		if !held {
			holds[pair.FromCourseOfferingID] = false
			if err := fail("student is not enrolled in the source offering"); err != nil {
				return err
			}
			continue
		}

		if status := catalog.DeriveStatus(target, now); status != models.StatusOpen {
			comment := apperrors.ErrEnrollmentWindowClosed.Error()
			if status == models.StatusFull {
				comment = apperrors.ErrOfferingFull.Error()
			}
			if err := fail(comment); err != nil {
				return err
			}
			continue
		}

		if err := s.offeringRepo.AdjustEnrolled(ctx, tx, pair.FromCourseOfferingID, -1); err != nil {
			if errors.Is(err, apperrors.ErrNoEnrolledSeat) {
				holds[pair.FromCourseOfferingID] = false
				if err := fail("student is not enrolled in the source offering"); err != nil {
					return err
				}
				continue
			}
			return err
		}
		if err := s.offeringRepo.AdjustEnrolled(ctx, tx, pair.ToCourseOfferingID, 1); err != nil {
			return err
		}
		if err := s.enrollmentRepo.CancelItemsTx(ctx, tx, request.StudentID, pair.FromCourseOfferingID,
			fmt.Sprintf("switched to offering %s", pair.ToCourseOfferingID)); err != nil {
			return err
		}

		item.Status = models.ItemStatusSuccess
		item.CommentOnStatus = ""
		succeeded++
		holds[pair.FromCourseOfferingID] = false
		holds[pair.ToCourseOfferingID] = true

		if err := s.enrollmentRepo.UpdateItemStatusTx(ctx, tx, item.ID, item.Status, item.CommentOnStatus); err != nil {
			return err
		}
	}

	return s.finishRequest(ctx, tx, request, succeeded, failed)
}

func (s *enrollmentServiceImpl) finishRequest(ctx context.Context, tx pgx.Tx, request *models.EnrollmentRequest, succeeded, failed int) error {
	switch {
	case failed == 0:
		request.Status = models.RequestStatusCompleted
		request.Error = ""
	case succeeded == 0:
		request.Status = models.RequestStatusFailed
		request.Error = "no course could be enrolled"
	default:
		request.Status = models.RequestStatusPartial
		request.Error = fmt.Sprintf("%d of %d courses could not be enrolled", failed, succeeded+failed)
	}

	return s.enrollmentRepo.UpdateStatusTx(ctx, tx, request.ID, request.Status, request.Error)
}

// GetLatestRequest returns the student's most recent request for the
// semester, or ErrEnrollmentRequestNotFound when none exists.
func (s *enrollmentServiceImpl) GetLatestRequest(ctx context.Context, studentID, cohortSemesterID string) (*models.EnrollmentRequest, error) {
	if err := validation.ValidateUUID("student_id", studentID); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	if err := validation.ValidateUUID("cohort_semester_id", cohortSemesterID); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	return s.enrollmentRepo.GetLatestByStudentAndSemester(ctx, studentID, cohortSemesterID)
}

// GetEnrolledOfferingIDs lists the offerings a student currently holds.
func (s *enrollmentServiceImpl) GetEnrolledOfferingIDs(ctx context.Context, studentID string) ([]string, error) {
	if err := validation.ValidateUUID("student_id", studentID); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	return s.enrollmentRepo.GetEnrolledOfferingIDs(ctx, studentID)
}
