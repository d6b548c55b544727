package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories is the container for all repository instances
type Repositories struct {
	CourseRepository         *CourseRepository
	OfferingRepository       *OfferingRepository
	CohortRepository         *CohortRepository
	CohortSemesterRepository *CohortSemesterRepository
	EnrollmentRepository     *EnrollmentRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:         NewCourseRepository(db),
		OfferingRepository:       NewOfferingRepository(db),
		CohortRepository:         NewCohortRepository(db),
		CohortSemesterRepository: NewCohortSemesterRepository(db),
		EnrollmentRepository:     NewEnrollmentRepository(db),
	}
}
