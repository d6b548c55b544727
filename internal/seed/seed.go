package seed

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/pushkov-fedor/course-selection/internal/app/models"
	appRepos "github.com/pushkov-fedor/course-selection/internal/app/repositories"
)

// CreateDefaultData seeds a demo catalog when the database is empty: a few
// courses with current-term offerings and one cohort with an open semester.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)
	offeringRepo := appRepos.NewOfferingRepository(dbPool)
	cohortRepo := appRepos.NewCohortRepository(dbPool)
	semesterRepo := appRepos.NewCohortSemesterRepository(dbPool)

	existing, err := courseRepo.GetAll(ctx, 1, 0, nil)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		lgr.Debug().Msg("Courses already present, skipping default data")
		return nil
	}

	lgr.Info().Msg("Creating default data (courses, offerings, cohort)...")

	now := time.Now()
	year := now.Year()
	term := appModels.TermSpring
	if now.Month() >= time.July {
		term = appModels.TermFall
	}
	open := now.AddDate(0, -1, 0)
	close := now.AddDate(0, 1, 0)

	courses := []struct {
		code        string
		title       string
		description string
		capacity    int
	}{
		{"CS-101", "Introduction to Programming", "Fundamentals of programming with practical assignments.", 60},
		{"CS-230", "Algorithms and Data Structures", "Core algorithms, complexity analysis and data structures.", 40},
		{"DB-310", "Database Systems", "Relational model, SQL and transaction processing.", 30},
		{"ML-420", "Machine Learning", "Supervised and unsupervised learning methods.", 25},
	}

	for _, c := range courses {
		course := &appModels.Course{
			Code:        c.code,
			Title:       c.title,
			Description: appModels.Description(c.description),
			IsActive:    true,
		}
		if err := courseRepo.Create(ctx, course); err != nil {
			return err
		}

		offering := &appModels.CourseOffering{
			CourseID:        course.ID,
			Capacity:        c.capacity,
			EnrollmentOpen:  open,
			EnrollmentClose: close,
			Year:            year,
			Term:            term,
		}
		if err := offeringRepo.Create(ctx, offering); err != nil {
			return err
		}
	}

	cohort := &appModels.Cohort{
		Name:           "Software Engineering",
		AdmissionYear:  year - 1,
		GraduationYear: year + 3,
	}
	if err := cohortRepo.Create(ctx, cohort); err != nil {
		return err
	}

	semester := &appModels.CohortSemester{
		CohortID:        cohort.ID,
		Number:          2,
		Term:            term,
		EnrollmentOpen:  open,
		EnrollmentClose: close,
	}
	if err := semesterRepo.Create(ctx, semester); err != nil {
		return err
	}

	lgr.Info().Int("courses", len(courses)).Msg("Default data created")
	return nil
}
