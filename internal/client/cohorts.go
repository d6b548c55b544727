package client

import (
	"context"
	"net/http"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/app/models/dto"
)

// CreateCohort creates a cohort.
func (c *Client) CreateCohort(ctx context.Context, req *dto.CreateCohortRequest) (*models.Cohort, error) {
	var cohort models.Cohort
	if err := c.do(ctx, http.MethodPost, "/cohort", nil, req, &cohort); err != nil {
		return nil, err
	}
	return &cohort, nil
}

// GetCohort retrieves one cohort by id.
func (c *Client) GetCohort(ctx context.Context, id string) (*models.Cohort, error) {
	var cohort models.Cohort
	if err := c.do(ctx, http.MethodGet, "/cohort/"+id, nil, nil, &cohort); err != nil {
		return nil, err
	}
	return &cohort, nil
}

// ListCohorts retrieves one page of cohorts.
func (c *Client) ListCohorts(ctx context.Context, limit, offset int) ([]*models.Cohort, error) {
	var cohorts []*models.Cohort
	if err := c.do(ctx, http.MethodGet, "/cohort", pageQuery(limit, offset), nil, &cohorts); err != nil {
		return nil, err
	}
	return cohorts, nil
}

// UpdateCohort applies a partial update to a cohort.
func (c *Client) UpdateCohort(ctx context.Context, id string, req *dto.UpdateCohortRequest) (*models.Cohort, error) {
	var cohort models.Cohort
	if err := c.do(ctx, http.MethodPatch, "/cohort/"+id, nil, req, &cohort); err != nil {
		return nil, err
	}
	return &cohort, nil
}

// DeleteCohort removes a cohort.
func (c *Client) DeleteCohort(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/cohort/"+id, nil, nil, nil)
}

// CreateCohortSemester creates a semester in a cohort's sequence.
func (c *Client) CreateCohortSemester(ctx context.Context, req *dto.CreateCohortSemesterRequest) (*models.CohortSemester, error) {
	var semester models.CohortSemester
	if err := c.do(ctx, http.MethodPost, "/cohort-semesters", nil, req, &semester); err != nil {
		return nil, err
	}
	return &semester, nil
}

// GetCohortSemester retrieves one cohort semester by id.
func (c *Client) GetCohortSemester(ctx context.Context, id string) (*models.CohortSemester, error) {
	var semester models.CohortSemester
	if err := c.do(ctx, http.MethodGet, "/cohort-semesters/"+id, nil, nil, &semester); err != nil {
		return nil, err
	}
	return &semester, nil
}

// ListCohortSemesters retrieves the semesters of a cohort. The page size is
// larger than the default so a cohort's whole sequence arrives at once.
func (c *Client) ListCohortSemesters(ctx context.Context, cohortID string) ([]*models.CohortSemester, error) {
	q := pageQuery(CohortSemestersLimit, 0)
	if cohortID != "" {
		q.Set("cohort_id", cohortID)
	}

	var semesters []*models.CohortSemester
	if err := c.do(ctx, http.MethodGet, "/cohort-semesters", q, nil, &semesters); err != nil {
		return nil, err
	}
	return semesters, nil
}
