package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/pkg/apperrors"
	"github.com/pushkov-fedor/course-selection/internal/pkg/dberrors"
)

// OfferingRepository handles database operations for course offerings
type OfferingRepository struct {
	db *pgxpool.Pool
}

// NewOfferingRepository creates a new offering repository
func NewOfferingRepository(db *pgxpool.Pool) *OfferingRepository {
	return &OfferingRepository{
		db: db,
	}
}

const offeringColumns = `id, course_id, capacity, enrolled, enrollment_open, enrollment_close, year, term, created_at`

func scanOffering(row pgx.Row) (*models.CourseOffering, error) {
	var o models.CourseOffering
	err := row.Scan(
		&o.ID,
		&o.CourseID,
		&o.Capacity,
		&o.Enrolled,
		&o.EnrollmentOpen,
		&o.EnrollmentClose,
		&o.Year,
		&o.Term,
		&o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts a new offering with a zero enrolled count.
func (r *OfferingRepository) Create(ctx context.Context, offering *models.CourseOffering) error {
	offering.ID = uuid.New().String()
	offering.Enrolled = 0
	offering.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO course_offerings (id, course_id, capacity, enrolled, enrollment_open, enrollment_close, year, term, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		offering.ID, offering.CourseID, offering.Capacity, offering.Enrolled,
		offering.EnrollmentOpen, offering.EnrollmentClose, offering.Year, offering.Term, offering.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating course offering: %w", err)
	}

	return nil
}

// GetByID retrieves an offering by ID
func (r *OfferingRepository) GetByID(ctx context.Context, id string) (*models.CourseOffering, error) {
	query := `SELECT ` + offeringColumns + ` FROM course_offerings WHERE id = $1`

	offering, err := scanOffering(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrOfferingNotFound
		}
		return nil, fmt.Errorf("error retrieving course offering: %w", err)
	}

	return offering, nil
}

// GetAll retrieves offerings with pagination.
func (r *OfferingRepository) GetAll(ctx context.Context, limit, offset int) ([]*models.CourseOffering, error) {
	query := `SELECT ` + offeringColumns + ` FROM course_offerings ORDER BY created_at LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error listing course offerings: %w", err)
	}
	defer rows.Close()

	var offerings []*models.CourseOffering
	for rows.Next() {
		offering, err := scanOffering(rows)
		if err != nil {
			return nil, err
		}
		offerings = append(offerings, offering)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return offerings, nil
}

// Update rewrites the admin-editable offering fields. The enrolled count is
// never written here: only enrollment processing adjusts it.
func (r *OfferingRepository) Update(ctx context.Context, offering *models.CourseOffering) error {
	query := `
		UPDATE course_offerings
		SET capacity = $1, enrollment_open = $2, enrollment_close = $3, year = $4, term = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		offering.Capacity, offering.EnrollmentOpen, offering.EnrollmentClose,
		offering.Year, offering.Term, offering.ID)
	if err != nil {
		return fmt.Errorf("error updating course offering: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrOfferingNotFound
	}

	return nil
}

// Delete removes an offering.
func (r *OfferingRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM course_offerings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course offering: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrOfferingNotFound
	}

	return nil
}

// GetByIDForUpdate loads an offering inside a transaction with a row lock,
// so seat accounting reads and writes are serialized per offering.
func (r *OfferingRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*models.CourseOffering, error) {
	query := `SELECT ` + offeringColumns + ` FROM course_offerings WHERE id = $1 FOR UPDATE`

	offering, err := scanOffering(tx.QueryRow(ctx, query, id))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrOfferingNotFound
		}
		return nil, fmt.Errorf("error locking course offering: %w", err)
	}

	return offering, nil
}

// AdjustEnrolled changes the enrolled count by delta within a transaction.
// The caller holds the row lock, so the update only misses when the change
// would drive the count negative; that reports ErrNoEnrolledSeat instead of
// clamping, and the caller fails the operation.
func (r *OfferingRepository) AdjustEnrolled(ctx context.Context, tx pgx.Tx, id string, delta int) error {
	query := `UPDATE course_offerings SET enrolled = enrolled + $1 WHERE id = $2 AND enrolled + $1 >= 0`

	cmdTag, err := tx.Exec(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("error adjusting enrolled count: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoEnrolledSeat
	}

	return nil
}
