// Package wizard holds the client-side state machines for the enrollment
// flow. State values are plain structs owned by the caller; nothing here is
// shared or package-global, and none of it mutates seat counts; the server
// stays the sole source of truth for enrollment.
package wizard

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/app/models/dto"
)

// Wizard steps. The flow is linear: review personal data, motivation,
// documents, confirmation.
type Step int

const (
	StepReview Step = iota + 1
	StepMotivation
	StepDocuments
	StepConfirmation
)

// MotivationMinLength is the guard threshold for the motivation step,
// counted in characters over the trimmed text.
const MotivationMinLength = 50

var (
	ErrStepGuard       = errors.New("current step requirements are not met")
	ErrNotConfirmation = errors.New("submit is only available from the confirmation step")
	ErrSubmitting      = errors.New("a submit is already in flight")
	ErrSubmitted       = errors.New("the wizard has already been submitted")
)

// Submitter issues the enrollment request. The API client satisfies it.
type Submitter interface {
	CreateEnrollmentRequest(ctx context.Context, req *dto.CreateEnrollmentRequestRequest) (string, error)
}

// Wizard drives the four-step enrollment flow for one student and semester.
type Wizard struct {
	StudentID        string
	CohortSemesterID string
	Courses          []dto.EnrollmentCourseChoice

	Motivation    string
	Priority      int
	Documents     []string
	TermsAccepted bool

	step       Step
	submitting bool
	submitted  bool
	RequestID  string
}

// New starts a wizard at the review step with the lowest priority.
func New(studentID, cohortSemesterID string, courses []dto.EnrollmentCourseChoice) *Wizard {
	return &Wizard{
		StudentID:        studentID,
		CohortSemesterID: cohortSemesterID,
		Courses:          courses,
		Priority:         1,
		step:             StepReview,
	}
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.step
}

// Submitted reports whether the wizard reached its terminal state.
func (w *Wizard) Submitted() bool {
	return w.submitted
}

// CanAdvance reports whether the current step's guard is satisfied.
func (w *Wizard) CanAdvance() bool {
	switch w.step {
	case StepMotivation:
		return utf8.RuneCountInString(strings.TrimSpace(w.Motivation)) >= MotivationMinLength
	case StepConfirmation:
		return w.TermsAccepted
	default:
		return true
	}
}

// Next moves one step forward. The confirmation step has no next; use Submit.
func (w *Wizard) Next() error {
	if w.submitted {
		return ErrSubmitted
	}
	if w.step >= StepConfirmation {
		return ErrNotConfirmation
	}
	if !w.CanAdvance() {
		return ErrStepGuard
	}
	w.step++
	return nil
}

// Prev moves one step back. Entered data is kept.
func (w *Wizard) Prev() error {
	if w.submitted {
		return ErrSubmitted
	}
	if w.step > StepReview {
		w.step--
	}
	return nil
}

// Submit issues the enrollment request. Only reachable from the confirmation
// step with terms accepted; a second call while one is in flight is
// rejected. On failure the wizard stays on the confirmation step with all
// entered data intact; on success it becomes terminal.
func (w *Wizard) Submit(ctx context.Context, submitter Submitter) error {
	if w.submitted {
		return ErrSubmitted
	}
	if w.submitting {
		return ErrSubmitting
	}
	if w.step != StepConfirmation {
		return ErrNotConfirmation
	}
	if !w.CanAdvance() {
		return ErrStepGuard
	}

	w.submitting = true
	defer func() { w.submitting = false }()

	id, err := submitter.CreateEnrollmentRequest(ctx, w.buildRequest())
	if err != nil {
		return err
	}

	w.RequestID = id
	w.submitted = true
	return nil
}

func (w *Wizard) buildRequest() *dto.CreateEnrollmentRequestRequest {
	return &dto.CreateEnrollmentRequestRequest{
		StudentID:        w.StudentID,
		CohortSemesterID: w.CohortSemesterID,
		Courses:          w.Courses,
		Type:             models.RequestTypeNew,
	}
}
