package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/pkg/apperrors"
	"github.com/pushkov-fedor/course-selection/internal/pkg/dberrors"
)

// CohortRepository handles database operations for cohorts
type CohortRepository struct {
	db *pgxpool.Pool
}

// NewCohortRepository creates a new cohort repository
func NewCohortRepository(db *pgxpool.Pool) *CohortRepository {
	return &CohortRepository{
		db: db,
	}
}

// Create inserts a new cohort.
func (r *CohortRepository) Create(ctx context.Context, cohort *models.Cohort) error {
	cohort.ID = uuid.New().String()

	query := `
		INSERT INTO cohorts (id, name, admission_year, graduation_year)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, cohort.ID, cohort.Name, cohort.AdmissionYear, cohort.GraduationYear)
	if err != nil {
		return fmt.Errorf("error creating cohort: %w", err)
	}

	return nil
}

// GetByID retrieves a cohort by ID
func (r *CohortRepository) GetByID(ctx context.Context, id string) (*models.Cohort, error) {
	query := `SELECT id, name, admission_year, graduation_year FROM cohorts WHERE id = $1`

	var cohort models.Cohort
	err := r.db.QueryRow(ctx, query, id).Scan(
		&cohort.ID,
		&cohort.Name,
		&cohort.AdmissionYear,
		&cohort.GraduationYear,
	)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrCohortNotFound
		}
		return nil, fmt.Errorf("error retrieving cohort: %w", err)
	}

	return &cohort, nil
}

// GetAll retrieves cohorts with pagination.
func (r *CohortRepository) GetAll(ctx context.Context, limit, offset int) ([]*models.Cohort, error) {
	query := `SELECT id, name, admission_year, graduation_year FROM cohorts ORDER BY admission_year, name LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error listing cohorts: %w", err)
	}
	defer rows.Close()

	var cohorts []*models.Cohort
	for rows.Next() {
		var cohort models.Cohort
		if err := rows.Scan(&cohort.ID, &cohort.Name, &cohort.AdmissionYear, &cohort.GraduationYear); err != nil {
			return nil, err
		}
		cohorts = append(cohorts, &cohort)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cohorts, nil
}

// Update rewrites the cohort fields.
func (r *CohortRepository) Update(ctx context.Context, cohort *models.Cohort) error {
	query := `UPDATE cohorts SET name = $1, admission_year = $2, graduation_year = $3 WHERE id = $4`

	cmdTag, err := r.db.Exec(ctx, query, cohort.Name, cohort.AdmissionYear, cohort.GraduationYear, cohort.ID)
	if err != nil {
		return fmt.Errorf("error updating cohort: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCohortNotFound
	}

	return nil
}

// Delete removes a cohort. Cohorts with semesters cannot be deleted.
func (r *CohortRepository) Delete(ctx context.Context, id string) error {
	var hasSemesters bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM cohort_semesters WHERE cohort_id = $1)`, id).Scan(&hasSemesters)
	if err != nil {
		return fmt.Errorf("error checking cohort semesters: %w", err)
	}

	if hasSemesters {
		return apperrors.ErrCohortHasSemesters
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM cohorts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting cohort: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCohortNotFound
	}

	return nil
}
