package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/pkg/apperrors"
	"github.com/pushkov-fedor/course-selection/internal/pkg/dberrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// scanDescription normalizes the jsonb description column, which may hold a
// plain string or a legacy object shape, into the canonical string form.
func scanDescription(raw []byte, dest *models.Description) {
	if len(raw) == 0 {
		*dest = ""
		return
	}
	// Description.UnmarshalJSON never fails; any shape normalizes.
	_ = json.Unmarshal(raw, dest)
}

// Create inserts a new course and assigns it an id.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	course.ID = uuid.New().String()
	course.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO courses (id, code, title, description, is_active, created_at)
		VALUES ($1, $2, $3, to_jsonb($4::text), $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		course.ID, course.Code, course.Title, course.Description.String(), course.IsActive, course.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := `
		SELECT id, COALESCE(code, ''), COALESCE(title, ''), description, is_active, created_at, updated_at
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	var rawDescription []byte
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Code,
		&course.Title,
		&rawDescription,
		&course.IsActive,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	scanDescription(rawDescription, &course.Description)

	return &course, nil
}

// GetAll retrieves courses with pagination and an optional is_active filter.
func (r *CourseRepository) GetAll(ctx context.Context, limit, offset int, isActive *bool) ([]*models.Course, error) {
	query := `
		SELECT id, COALESCE(code, ''), COALESCE(title, ''), description, is_active, created_at, updated_at
		FROM courses
		WHERE ($3::boolean IS NULL OR is_active = $3)
		ORDER BY created_at
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset, isActive)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		var rawDescription []byte
		if err := rows.Scan(
			&course.ID,
			&course.Code,
			&course.Title,
			&rawDescription,
			&course.IsActive,
			&course.CreatedAt,
			&course.UpdatedAt,
		); err != nil {
			return nil, err
		}
		scanDescription(rawDescription, &course.Description)
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Update rewrites the mutable course fields.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET code = $1, title = $2, description = to_jsonb($3::text), is_active = $4, updated_at = $5
		WHERE id = $6
	`

	now := time.Now().UTC()
	cmdTag, err := r.db.Exec(ctx, query,
		course.Code, course.Title, course.Description.String(), course.IsActive, now, course.ID)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	course.UpdatedAt = &now

	return nil
}

// Delete removes a course. Courses with offerings cannot be deleted.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	var hasOfferings bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM course_offerings WHERE course_id = $1)`, id).Scan(&hasOfferings)
	if err != nil {
		return fmt.Errorf("error checking course offerings: %w", err)
	}

	if hasOfferings {
		return apperrors.ErrCourseHasOfferings
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
