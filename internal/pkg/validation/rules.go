package validation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
)

// Bounds for admin-entered values.
var (
	MinYear = 2000
	MaxYear = 2100

	TitleMaxLength       = 200
	DescriptionMaxLength = 10000
)

// ValidateUUID checks that the value is a well-formed UUID.
func ValidateUUID(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	if _, err := uuid.Parse(value); err != nil {
		return fmt.Errorf("%s must be a valid UUID", field)
	}
	return nil
}

// ValidateTerm checks the term is one of the known values.
func ValidateTerm(term models.Term) error {
	if !term.Valid() {
		return fmt.Errorf("term must be %q or %q", models.TermSpring, models.TermFall)
	}
	return nil
}

// ValidateYear checks an academic year is within sane bounds.
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("year must be between %d and %d", MinYear, MaxYear)
	}
	return nil
}

// ValidateCapacity checks an offering capacity.
func ValidateCapacity(capacity int) error {
	if capacity < 1 {
		return fmt.Errorf("capacity must be at least 1")
	}
	return nil
}

// ValidateWindow checks the enrollment window is well-formed. Derivation
// tolerates malformed windows (they read as closed), but admin writes
// reject them outright.
func ValidateWindow(open, close time.Time) error {
	if open.IsZero() || close.IsZero() {
		return fmt.Errorf("enrollment window is required")
	}
	if close.Before(open) {
		return fmt.Errorf("enrollment_close must not precede enrollment_open")
	}
	return nil
}
