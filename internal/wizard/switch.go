package wizard

import (
	"context"
	"errors"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/app/models/dto"
)

// Switch flow states.
type SwitchState int

const (
	SwitchSelect SwitchState = iota
	SwitchConfirm
	SwitchSubmitting
	SwitchSuccess
	SwitchError
)

var (
	ErrNoCandidate   = errors.New("no course selected")
	ErrBadSwitchStep = errors.New("action not available in the current state")
)

// Candidates filters the catalog down to offerings the student could switch
// into: open, with seats left, and not already held. An offering that went
// full between page load and this call simply drops out of the list.
func Candidates(catalog []models.DisplayCourse, enrolledOfferingIDs []string) []models.DisplayCourse {
	held := make(map[string]bool, len(enrolledOfferingIDs))
	for _, id := range enrolledOfferingIDs {
		held[id] = true
	}

	var out []models.DisplayCourse
	for _, course := range catalog {
		if held[course.OfferingID] {
			continue
		}
		if course.Status != models.StatusOpen || course.AvailableSeats <= 0 {
			continue
		}
		out = append(out, course)
	}
	return out
}

// SwitchFlow drives one course switch for a student. Seat counts are never
// touched locally; after a successful submit the caller re-fetches the
// enrollment state from the server.
type SwitchFlow struct {
	StudentID        string
	CohortSemesterID string
	FromOfferingID   string
	ToOfferingID     string

	state     SwitchState
	RequestID string
	LastError error
}

// NewSwitchFlow starts a switch away from the given enrolled offering.
func NewSwitchFlow(studentID, cohortSemesterID, fromOfferingID string) *SwitchFlow {
	return &SwitchFlow{
		StudentID:        studentID,
		CohortSemesterID: cohortSemesterID,
		FromOfferingID:   fromOfferingID,
		state:            SwitchSelect,
	}
}

// State returns the current state.
func (f *SwitchFlow) State() SwitchState {
	return f.state
}

// Select records the target offering and moves to confirmation.
func (f *SwitchFlow) Select(toOfferingID string) error {
	if f.state != SwitchSelect {
		return ErrBadSwitchStep
	}
	if toOfferingID == "" {
		return ErrNoCandidate
	}
	f.ToOfferingID = toOfferingID
	f.state = SwitchConfirm
	return nil
}

// Back returns from confirmation to selection, keeping the chosen target.
func (f *SwitchFlow) Back() error {
	if f.state != SwitchConfirm {
		return ErrBadSwitchStep
	}
	f.state = SwitchSelect
	return nil
}

// Submit emits exactly one switch request for the chosen pair. On failure
// the flow enters the error state; Retry re-submits the same pair without
// reselecting.
func (f *SwitchFlow) Submit(ctx context.Context, submitter Submitter) error {
	if f.state != SwitchConfirm && f.state != SwitchError {
		return ErrBadSwitchStep
	}

	f.state = SwitchSubmitting

	id, err := submitter.CreateEnrollmentRequest(ctx, &dto.CreateEnrollmentRequestRequest{
		StudentID:        f.StudentID,
		CohortSemesterID: f.CohortSemesterID,
		Type:             models.RequestTypeSwitch,
		Switch: []models.SwitchPair{
			{FromCourseOfferingID: f.FromOfferingID, ToCourseOfferingID: f.ToOfferingID},
		},
	})
	if err != nil {
		f.state = SwitchError
		f.LastError = err
		return err
	}

	f.RequestID = id
	f.state = SwitchSuccess
	f.LastError = nil
	return nil
}

// Retry re-enters submitting with the same pair after a failure.
func (f *SwitchFlow) Retry(ctx context.Context, submitter Submitter) error {
	if f.state != SwitchError {
		return ErrBadSwitchStep
	}
	return f.Submit(ctx, submitter)
}
