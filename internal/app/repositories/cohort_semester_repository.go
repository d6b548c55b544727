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

// CohortSemesterRepository handles database operations for cohort semesters
type CohortSemesterRepository struct {
	db *pgxpool.Pool
}

// NewCohortSemesterRepository creates a new cohort semester repository
func NewCohortSemesterRepository(db *pgxpool.Pool) *CohortSemesterRepository {
	return &CohortSemesterRepository{
		db: db,
	}
}

const cohortSemesterColumns = `id, cohort_id, number, term, enrollment_open, enrollment_close, created_at`

func scanCohortSemester(row pgx.Row) (*models.CohortSemester, error) {
	var semester models.CohortSemester
	err := row.Scan(
		&semester.ID,
		&semester.CohortID,
		&semester.Number,
		&semester.Term,
		&semester.EnrollmentOpen,
		&semester.EnrollmentClose,
		&semester.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &semester, nil
}

// Create inserts a new cohort semester. The cohort must exist.
func (r *CohortSemesterRepository) Create(ctx context.Context, semester *models.CohortSemester) error {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM cohorts WHERE id = $1)`, semester.CohortID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking cohort: %w", err)
	}
	if !exists {
		return apperrors.ErrCohortNotFound
	}

	semester.ID = uuid.New().String()

	query := `
		INSERT INTO cohort_semesters (id, cohort_id, number, term, enrollment_open, enrollment_close)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err = r.db.QueryRow(ctx, query,
		semester.ID,
		semester.CohortID,
		semester.Number,
		semester.Term,
		semester.EnrollmentOpen,
		semester.EnrollmentClose,
	).Scan(&semester.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating cohort semester: %w", err)
	}

	return nil
}

// GetByID retrieves a cohort semester by ID
func (r *CohortSemesterRepository) GetByID(ctx context.Context, id string) (*models.CohortSemester, error) {
	query := `SELECT ` + cohortSemesterColumns + ` FROM cohort_semesters WHERE id = $1`

	semester, err := scanCohortSemester(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrCohortSemesterNotFound
		}
		return nil, fmt.Errorf("error retrieving cohort semester: %w", err)
	}

	return semester, nil
}

// GetAll retrieves cohort semesters with pagination, optionally filtered by cohort.
func (r *CohortSemesterRepository) GetAll(ctx context.Context, cohortID string, limit, offset int) ([]*models.CohortSemester, error) {
	query := `
		SELECT ` + cohortSemesterColumns + `
		FROM cohort_semesters
		WHERE ($1::uuid IS NULL OR cohort_id = $1)
		ORDER BY number
		LIMIT $2 OFFSET $3
	`

	var cohortFilter any
	if cohortID != "" {
		cohortFilter = cohortID
	}

	rows, err := r.db.Query(ctx, query, cohortFilter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error listing cohort semesters: %w", err)
	}
	defer rows.Close()

	var semesters []*models.CohortSemester
	for rows.Next() {
		semester, err := scanCohortSemester(rows)
		if err != nil {
			return nil, err
		}
		semesters = append(semesters, semester)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return semesters, nil
}

// Update rewrites the semester fields.
func (r *CohortSemesterRepository) Update(ctx context.Context, semester *models.CohortSemester) error {
	query := `
		UPDATE cohort_semesters
		SET number = $1, term = $2, enrollment_open = $3, enrollment_close = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		semester.Number,
		semester.Term,
		semester.EnrollmentOpen,
		semester.EnrollmentClose,
		semester.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating cohort semester: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCohortSemesterNotFound
	}

	return nil
}

// Delete removes a cohort semester.
func (r *CohortSemesterRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM cohort_semesters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting cohort semester: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCohortSemesterNotFound
	}

	return nil
}
