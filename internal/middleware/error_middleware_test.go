package middleware

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pushkov-fedor/course-selection/internal/app/models/dto"
	"github.com/pushkov-fedor/course-selection/internal/pkg/apperrors"
)

func TestHandleAPIErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"course not found", apperrors.ErrCourseNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"offering not found", apperrors.ErrOfferingNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"enrollment request not found", apperrors.ErrEnrollmentRequestNotFound, 404, dto.ErrorCodeRequestNotFound},
		{"course has offerings", apperrors.ErrCourseHasOfferings, 409, dto.ErrorCodeResourceConflict},
		{"offering full", apperrors.ErrOfferingFull, 409, dto.ErrorCodeOfferingFull},
		{"window closed", apperrors.ErrEnrollmentWindowClosed, 409, dto.ErrorCodeWindowClosed},
		{"bad request", apperrors.NewBadRequestError("nope"), 400, dto.ErrorCodeValidationFailed},
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401, dto.ErrorCodeInvalidCredentials},
		{"token expired", apperrors.ErrTokenExpired, 401, dto.ErrorCodeExpiredToken},
		{"unknown error", errors.New("boom"), 500, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			HandleAPIError(c, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("got status %d, want %d", rec.Code, tt.wantStatus)
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode envelope: %v", err)
			}
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("got envelope %+v, want code %s", resp.Error, tt.wantCode)
			}
		})
	}
}

func TestCustomErrorMessageSurfaces(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleAPIError(c, apperrors.NewBadRequestError("capacity must be at least 1"))

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error.Message != "capacity must be at least 1" {
		t.Errorf("got message %q", resp.Error.Message)
	}
}
