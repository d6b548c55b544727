package wizard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/app/models/dto"
)

type fakeSubmitter struct {
	mu       sync.Mutex
	calls    int
	requests []*dto.CreateEnrollmentRequestRequest
	err      error
	block    chan struct{}
}

func (f *fakeSubmitter) CreateEnrollmentRequest(ctx context.Context, req *dto.CreateEnrollmentRequestRequest) (string, error) {
	f.mu.Lock()
	f.calls++
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return "", f.err
	}
	return "req-1", nil
}

func advanceToConfirmation(t *testing.T, w *Wizard) {
	t.Helper()
	w.Motivation = strings.Repeat("x", MotivationMinLength)
	for w.Step() != StepConfirmation {
		if err := w.Next(); err != nil {
			t.Fatalf("Next from step %d: %v", w.Step(), err)
		}
	}
}

func TestMotivationGuardThreshold(t *testing.T) {
	w := New("s1", "cs1", nil)
	if err := w.Next(); err != nil {
		t.Fatalf("step 1 must always pass: %v", err)
	}

	w.Motivation = strings.Repeat("a", 49)
	if err := w.Next(); !errors.Is(err, ErrStepGuard) {
		t.Errorf("49 chars: got %v, want guard error", err)
	}

	w.Motivation = strings.Repeat("a", 50)
	if err := w.Next(); err != nil {
		t.Errorf("50 chars: got %v, want pass", err)
	}
}

func TestMotivationGuardCountsCharactersNotBytes(t *testing.T) {
	w := New("s1", "cs1", nil)
	if err := w.Next(); err != nil {
		t.Fatal(err)
	}

	// 25 Cyrillic characters occupy 50 bytes.
	w.Motivation = strings.Repeat("я", 25)
	if err := w.Next(); !errors.Is(err, ErrStepGuard) {
		t.Errorf("25 two-byte chars: got %v, want guard error", err)
	}

	w.Motivation = strings.Repeat("я", 50)
	if err := w.Next(); err != nil {
		t.Errorf("50 two-byte chars: got %v, want pass", err)
	}
}

func TestMotivationGuardTrimsWhitespace(t *testing.T) {
	w := New("s1", "cs1", nil)
	if err := w.Next(); err != nil {
		t.Fatal(err)
	}

	w.Motivation = strings.Repeat("a", 49) + "   "
	if err := w.Next(); !errors.Is(err, ErrStepGuard) {
		t.Errorf("padded 49 chars: got %v, want guard error", err)
	}
}

func TestLinearNavigationKeepsData(t *testing.T) {
	w := New("s1", "cs1", nil)
	advanceToConfirmation(t, w)

	if err := w.Prev(); err != nil {
		t.Fatal(err)
	}
	if err := w.Prev(); err != nil {
		t.Fatal(err)
	}
	if w.Step() != StepMotivation {
		t.Fatalf("got step %d", w.Step())
	}
	if len(strings.TrimSpace(w.Motivation)) < MotivationMinLength {
		t.Error("motivation text was lost while navigating back")
	}
}

func TestSubmitOnlyFromConfirmation(t *testing.T) {
	w := New("s1", "cs1", nil)
	sub := &fakeSubmitter{}

	if err := w.Submit(context.Background(), sub); !errors.Is(err, ErrNotConfirmation) {
		t.Errorf("got %v, want ErrNotConfirmation", err)
	}
	if sub.calls != 0 {
		t.Errorf("submitter called %d times", sub.calls)
	}
}

func TestSubmitRequiresTerms(t *testing.T) {
	w := New("s1", "cs1", nil)
	advanceToConfirmation(t, w)

	sub := &fakeSubmitter{}
	if err := w.Submit(context.Background(), sub); !errors.Is(err, ErrStepGuard) {
		t.Errorf("got %v, want ErrStepGuard", err)
	}

	w.TermsAccepted = true
	if err := w.Submit(context.Background(), sub); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !w.Submitted() || w.RequestID != "req-1" {
		t.Errorf("submitted=%v requestID=%q", w.Submitted(), w.RequestID)
	}
}

func TestSubmittedWizardIsTerminal(t *testing.T) {
	w := New("s1", "cs1", nil)
	advanceToConfirmation(t, w)
	w.TermsAccepted = true

	sub := &fakeSubmitter{}
	if err := w.Submit(context.Background(), sub); err != nil {
		t.Fatal(err)
	}

	if err := w.Submit(context.Background(), sub); !errors.Is(err, ErrSubmitted) {
		t.Errorf("second submit: got %v, want ErrSubmitted", err)
	}
	if err := w.Next(); !errors.Is(err, ErrSubmitted) {
		t.Errorf("Next after submit: got %v, want ErrSubmitted", err)
	}
	if sub.calls != 1 {
		t.Errorf("submitter called %d times, want 1", sub.calls)
	}
}

// reentrantSubmitter triggers a second submit while the first is still in
// flight, the way a double click lands before the response returns.
type reentrantSubmitter struct {
	wizard    *Wizard
	secondErr error
	calls     int
}

func (r *reentrantSubmitter) CreateEnrollmentRequest(ctx context.Context, req *dto.CreateEnrollmentRequestRequest) (string, error) {
	r.calls++
	if r.calls == 1 {
		r.secondErr = r.wizard.Submit(ctx, r)
	}
	return "req-1", nil
}

func TestDoubleSubmitWhileInFlight(t *testing.T) {
	w := New("s1", "cs1", nil)
	advanceToConfirmation(t, w)
	w.TermsAccepted = true

	sub := &reentrantSubmitter{wizard: w}
	if err := w.Submit(context.Background(), sub); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	if !errors.Is(sub.secondErr, ErrSubmitting) {
		t.Errorf("second submit: got %v, want ErrSubmitting", sub.secondErr)
	}
	if sub.calls != 1 {
		t.Errorf("submitter called %d times, want 1", sub.calls)
	}
}

func TestFailedSubmitReturnsToConfirmation(t *testing.T) {
	w := New("s1", "cs1", []dto.EnrollmentCourseChoice{
		{CourseOfferingID: "o1", Type: models.ItemTypeMain},
	})
	advanceToConfirmation(t, w)
	w.TermsAccepted = true
	w.Priority = 3
	w.Documents = []string{"transcript.pdf"}
	motivation := w.Motivation

	sub := &fakeSubmitter{err: errors.New("network down")}
	if err := w.Submit(context.Background(), sub); err == nil {
		t.Fatal("expected a submit error")
	}

	if w.Submitted() {
		t.Error("failed submit must not mark the wizard submitted")
	}
	if w.Step() != StepConfirmation {
		t.Errorf("got step %d, want confirmation", w.Step())
	}
	if w.Motivation != motivation || len(w.Courses) != 1 || !w.TermsAccepted {
		t.Error("entered data must survive a failed submit")
	}
	if w.Priority != 3 || len(w.Documents) != 1 {
		t.Error("priority and documents must survive a failed submit")
	}

	// Retrying after failure succeeds with the same data.
	sub.err = nil
	if err := w.Submit(context.Background(), sub); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if got := sub.requests[1]; got.Type != models.RequestTypeNew || len(got.Courses) != 1 {
		t.Errorf("unexpected request payload: %+v", got)
	}
}
