package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/app/models/dto"
)

// CreateEnrollmentRequest submits an enrollment request and returns its id.
// The server processes the request synchronously; fetch it back to see the
// per-course outcomes.
func (c *Client) CreateEnrollmentRequest(ctx context.Context, req *dto.CreateEnrollmentRequestRequest) (string, error) {
	var resp dto.CreateEnrollmentRequestResponse
	if err := c.do(ctx, http.MethodPost, "/enrollment-request", nil, req, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// GetEnrollmentRequest fetches the student's latest request for the cohort
// semester. A missing request is not an error: it returns (nil, nil).
// Older deployments report a missing request as a 500 whose message wraps
// the database's "no rows in result set"; that shape is treated as absent
// too rather than surfacing as a failure.
func (c *Client) GetEnrollmentRequest(ctx context.Context, studentID, cohortSemesterID string) (*models.EnrollmentRequest, error) {
	q := url.Values{}
	q.Set("student_id", studentID)
	q.Set("cohort_semester_id", cohortSemesterID)

	var request models.EnrollmentRequest
	err := c.do(ctx, http.MethodGet, "/enrollment-request", q, nil, &request)
	if err != nil {
		if isRequestAbsent(err) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func isRequestAbsent(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.StatusCode == http.StatusNotFound {
		return true
	}
	return apiErr.StatusCode == http.StatusInternalServerError &&
		strings.Contains(apiErr.Message, "no rows in result set")
}
