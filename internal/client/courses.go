package client

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pushkov-fedor/course-selection/internal/app/catalog"
	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/app/models/dto"
)

// Login authenticates against the API and stores the returned token on the
// client for subsequent administrative calls.
func (c *Client) Login(ctx context.Context, login, password string) (*dto.LoginResponse, error) {
	var resp dto.LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, &dto.LoginRequest{Login: login, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

// CreateCourse creates a course.
func (c *Client) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodPost, "/course", nil, req, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// GetCourse retrieves one course by id.
func (c *Client) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodGet, "/course/"+id, nil, nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// ListCourses retrieves one page of courses. A non-nil isActive narrows the
// page to active or inactive courses.
func (c *Client) ListCourses(ctx context.Context, limit, offset int, isActive *bool) ([]*models.Course, error) {
	query := pageQuery(limit, offset)
	if isActive != nil {
		query.Set("is_active", strconv.FormatBool(*isActive))
	}

	var courses []*models.Course
	if err := c.do(ctx, http.MethodGet, "/course", query, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// UpdateCourse applies a partial update to a course.
func (c *Client) UpdateCourse(ctx context.Context, id string, req *dto.UpdateCourseRequest) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodPatch, "/course/"+id, nil, req, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// DeleteCourse removes a course.
func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/course/"+id, nil, nil, nil)
}

// CreateOffering creates a course offering.
func (c *Client) CreateOffering(ctx context.Context, req *dto.CreateOfferingRequest) (*models.CourseOffering, error) {
	var offering models.CourseOffering
	if err := c.do(ctx, http.MethodPost, "/course-offering", nil, req, &offering); err != nil {
		return nil, err
	}
	return &offering, nil
}

// GetOffering retrieves one offering by id.
func (c *Client) GetOffering(ctx context.Context, id string) (*models.CourseOffering, error) {
	var offering models.CourseOffering
	if err := c.do(ctx, http.MethodGet, "/course-offering/"+id, nil, nil, &offering); err != nil {
		return nil, err
	}
	return &offering, nil
}

// ListOfferings retrieves one page of offerings.
func (c *Client) ListOfferings(ctx context.Context, limit, offset int) ([]*models.CourseOffering, error) {
	var offerings []*models.CourseOffering
	if err := c.do(ctx, http.MethodGet, "/course-offering", pageQuery(limit, offset), nil, &offerings); err != nil {
		return nil, err
	}
	return offerings, nil
}

// UpdateOffering applies a partial update to an offering.
func (c *Client) UpdateOffering(ctx context.Context, id string, req *dto.UpdateOfferingRequest) (*models.CourseOffering, error) {
	var offering models.CourseOffering
	if err := c.do(ctx, http.MethodPatch, "/course-offering/"+id, nil, req, &offering); err != nil {
		return nil, err
	}
	return &offering, nil
}

// DeleteOffering removes an offering.
func (c *Client) DeleteOffering(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/course-offering/"+id, nil, nil, nil)
}

// GetCatalog retrieves the server-merged catalog page.
func (c *Client) GetCatalog(ctx context.Context, limit, offset int) ([]models.DisplayCourse, error) {
	var merged []models.DisplayCourse
	if err := c.do(ctx, http.MethodGet, "/catalog", pageQuery(limit, offset), nil, &merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// LoadCatalog builds the catalog on the client: courses and offerings are
// fetched in parallel, merged, and sorted into display order. Useful when a
// front end needs the raw entities alongside the merged view.
func (c *Client) LoadCatalog(ctx context.Context) ([]models.DisplayCourse, error) {
	var (
		courses   []*models.Course
		offerings []*models.CourseOffering
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		courses, err = c.ListCourses(gctx, DefaultLimit, 0, nil)
		return err
	})
	g.Go(func() error {
		var err error
		offerings, err = c.ListOfferings(gctx, DefaultLimit, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := catalog.Merge(courses, offerings, time.Now(), c.logger)
	catalog.Sort(merged)
	return merged, nil
}
