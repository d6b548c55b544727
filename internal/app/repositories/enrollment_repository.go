package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/pkg/apperrors"
	"github.com/pushkov-fedor/course-selection/internal/pkg/dberrors"
)

// EnrollmentRepository handles database operations for enrollment requests,
// their items and switch pairs.
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// CreateTx inserts the request together with its items and switch pairs
// inside the given transaction. IDs are assigned here.
func (r *EnrollmentRepository) CreateTx(ctx context.Context, tx pgx.Tx, request *models.EnrollmentRequest) error {
	request.ID = uuid.New().String()

	err := tx.QueryRow(ctx, `
		INSERT INTO enrollment_requests (id, student_id, cohort_semester_id, status, error, type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, request.ID, request.StudentID, request.CohortSemesterID, request.Status, request.Error, request.Type,
	).Scan(&request.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating enrollment request: %w", err)
	}

	for i := range request.Courses {
		item := &request.Courses[i]
		item.ID = uuid.New().String()
		item.EnrollmentRequestID = request.ID
		item.StudentID = request.StudentID

		err := tx.QueryRow(ctx, `
			INSERT INTO enrollment_request_items
				(id, enrollment_request_id, course_offering_id, student_id, type, status, comment_on_status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING created_at
		`, item.ID, item.EnrollmentRequestID, item.CourseOfferingID, item.StudentID,
			item.Type, item.Status, item.CommentOnStatus,
		).Scan(&item.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating enrollment request item: %w", err)
		}
	}

	for _, pair := range request.Switch {
		_, err := tx.Exec(ctx, `
			INSERT INTO enrollment_request_switches (id, enrollment_request_id, from_course_offering_id, to_course_offering_id)
			VALUES ($1, $2, $3, $4)
		`, uuid.New().String(), request.ID, pair.FromCourseOfferingID, pair.ToCourseOfferingID)
		if err != nil {
			return fmt.Errorf("error creating switch pair: %w", err)
		}
	}

	return nil
}

// UpdateStatusTx rewrites the request status and error inside the transaction.
func (r *EnrollmentRepository) UpdateStatusTx(ctx context.Context, tx pgx.Tx, requestID string, status models.RequestStatus, errText string) error {
	cmdTag, err := tx.Exec(ctx,
		`UPDATE enrollment_requests SET status = $1, error = $2 WHERE id = $3`,
		status, errText, requestID)
	if err != nil {
		return fmt.Errorf("error updating enrollment request: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentRequestNotFound
	}
	return nil
}

// UpdateItemStatusTx rewrites one item's status and comment inside the transaction.
func (r *EnrollmentRepository) UpdateItemStatusTx(ctx context.Context, tx pgx.Tx, itemID string, status models.ItemStatus, comment string) error {
	cmdTag, err := tx.Exec(ctx,
		`UPDATE enrollment_request_items SET status = $1, comment_on_status = $2 WHERE id = $3`,
		status, comment, itemID)
	if err != nil {
		return fmt.Errorf("error updating enrollment request item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentRequestNotFound
	}
	return nil
}

// GetByID retrieves a request with its items and switch pairs loaded.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id string) (*models.EnrollmentRequest, error) {
	query := `
		SELECT id, student_id, cohort_semester_id, status, COALESCE(error, ''), type, created_at
		FROM enrollment_requests
		WHERE id = $1
	`

	request, err := r.scanRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrEnrollmentRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment request: %w", err)
	}

	if err := r.loadDetails(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

// GetLatestByStudentAndSemester retrieves the most recent request a student
// submitted for a cohort semester, with items and switch pairs loaded.
func (r *EnrollmentRepository) GetLatestByStudentAndSemester(ctx context.Context, studentID, cohortSemesterID string) (*models.EnrollmentRequest, error) {
	query := `
		SELECT id, student_id, cohort_semester_id, status, COALESCE(error, ''), type, created_at
		FROM enrollment_requests
		WHERE student_id = $1 AND cohort_semester_id = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	request, err := r.scanRequest(r.db.QueryRow(ctx, query, studentID, cohortSemesterID))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrEnrollmentRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment request: %w", err)
	}

	if err := r.loadDetails(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

// GetEnrolledOfferingIDs returns the offering IDs a student currently holds:
// items that processed successfully across the student's requests.
func (r *EnrollmentRepository) GetEnrolledOfferingIDs(ctx context.Context, studentID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT course_offering_id
		FROM enrollment_request_items
		WHERE student_id = $1 AND status = $2
	`, studentID, models.ItemStatusSuccess)
	if err != nil {
		return nil, fmt.Errorf("error listing enrolled offerings: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// HoldsOfferingTx reports whether the student currently holds a seat in the
// offering, read through the transaction. Called after the offering rows are
// locked so a concurrent switch that already moved the student off the
// offering is visible.
func (r *EnrollmentRepository) HoldsOfferingTx(ctx context.Context, tx pgx.Tx, studentID, offeringID string) (bool, error) {
	var holds bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM enrollment_request_items
			WHERE student_id = $1 AND course_offering_id = $2 AND status = $3
		)
	`, studentID, offeringID, models.ItemStatusSuccess).Scan(&holds)
	if err != nil {
		return false, fmt.Errorf("error checking enrolled seat: %w", err)
	}
	return holds, nil
}

// CancelItemsTx marks a student's successful items for an offering as
// cancelled. Used when a switch moves the student off the offering.
func (r *EnrollmentRepository) CancelItemsTx(ctx context.Context, tx pgx.Tx, studentID, offeringID, comment string) error {
	_, err := tx.Exec(ctx, `
		UPDATE enrollment_request_items
		SET status = $1, comment_on_status = $2
		WHERE student_id = $3 AND course_offering_id = $4 AND status = $5
	`, models.ItemStatusCancelled, comment, studentID, offeringID, models.ItemStatusSuccess)
	if err != nil {
		return fmt.Errorf("error cancelling enrollment items: %w", err)
	}
	return nil
}

func (r *EnrollmentRepository) scanRequest(row pgx.Row) (*models.EnrollmentRequest, error) {
	var request models.EnrollmentRequest
	err := row.Scan(
		&request.ID,
		&request.StudentID,
		&request.CohortSemesterID,
		&request.Status,
		&request.Error,
		&request.Type,
		&request.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *EnrollmentRepository) loadDetails(ctx context.Context, request *models.EnrollmentRequest) error {
	rows, err := r.db.Query(ctx, `
		SELECT id, enrollment_request_id, course_offering_id, student_id, type, status, COALESCE(comment_on_status, ''), created_at
		FROM enrollment_request_items
		WHERE enrollment_request_id = $1
		ORDER BY created_at
	`, request.ID)
	if err != nil {
		return fmt.Errorf("error listing enrollment request items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.EnrollmentRequestItem
		err := rows.Scan(
			&item.ID,
			&item.EnrollmentRequestID,
			&item.CourseOfferingID,
			&item.StudentID,
			&item.Type,
			&item.Status,
			&item.CommentOnStatus,
			&item.CreatedAt,
		)
		if err != nil {
			return err
		}
		request.Courses = append(request.Courses, item)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	switchRows, err := r.db.Query(ctx, `
		SELECT from_course_offering_id, to_course_offering_id
		FROM enrollment_request_switches
		WHERE enrollment_request_id = $1
	`, request.ID)
	if err != nil {
		return fmt.Errorf("error listing switch pairs: %w", err)
	}
	defer switchRows.Close()

	for switchRows.Next() {
		var pair models.SwitchPair
		if err := switchRows.Scan(&pair.FromCourseOfferingID, &pair.ToCourseOfferingID); err != nil {
			return err
		}
		request.Switch = append(request.Switch, pair)
	}

	return switchRows.Err()
}
