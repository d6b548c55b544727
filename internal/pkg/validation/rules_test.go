package validation

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
)

func TestValidateUUID(t *testing.T) {
	if err := ValidateUUID("id", uuid.New().String()); err != nil {
		t.Errorf("valid uuid rejected: %v", err)
	}
	if err := ValidateUUID("id", ""); err == nil {
		t.Error("empty value accepted")
	}
	if err := ValidateUUID("id", "not-a-uuid"); err == nil {
		t.Error("malformed value accepted")
	}
}

func TestValidateTerm(t *testing.T) {
	if err := ValidateTerm(models.TermSpring); err != nil {
		t.Errorf("spring rejected: %v", err)
	}
	if err := ValidateTerm(models.Term("summer")); err == nil {
		t.Error("unknown term accepted")
	}
}

func TestValidateYearBounds(t *testing.T) {
	for _, year := range []int{2000, 2026, 2100} {
		if err := ValidateYear(year); err != nil {
			t.Errorf("year %d rejected: %v", year, err)
		}
	}
	for _, year := range []int{1999, 2101, 0, -5} {
		if err := ValidateYear(year); err == nil {
			t.Errorf("year %d accepted", year)
		}
	}
}

func TestValidateWindow(t *testing.T) {
	open := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	close := open.AddDate(0, 1, 0)

	if err := ValidateWindow(open, close); err != nil {
		t.Errorf("valid window rejected: %v", err)
	}
	if err := ValidateWindow(open, open); err != nil {
		t.Errorf("zero-length window rejected: %v", err)
	}
	if err := ValidateWindow(close, open); err == nil {
		t.Error("inverted window accepted")
	}
	if err := ValidateWindow(time.Time{}, close); err == nil {
		t.Error("missing open accepted")
	}
}
