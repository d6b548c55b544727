package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
)

func TestCandidatesExcludesEnrolledAndUnavailable(t *testing.T) {
	catalog := []models.DisplayCourse{
		{OfferingID: "held", Title: "Already mine", Status: models.StatusOpen, AvailableSeats: 5},
		{OfferingID: "open", Title: "Open", Status: models.StatusOpen, AvailableSeats: 3},
		{OfferingID: "full", Title: "Full", Status: models.StatusFull, AvailableSeats: 0},
		{OfferingID: "closed", Title: "Closed", Status: models.StatusClosed, AvailableSeats: 10},
		{OfferingID: "overbooked", Title: "Overbooked", Status: models.StatusFull, AvailableSeats: -2},
	}

	got := Candidates(catalog, []string{"held"})
	if len(got) != 1 || got[0].OfferingID != "open" {
		t.Errorf("got %+v, want only the open offering", got)
	}
}

func TestCandidatesExcludesEnrolledEvenIfOpen(t *testing.T) {
	catalog := []models.DisplayCourse{
		{OfferingID: "o1", Status: models.StatusOpen, AvailableSeats: 10},
	}

	if got := Candidates(catalog, []string{"o1"}); len(got) != 0 {
		t.Errorf("an enrolled offering must never be a candidate, got %+v", got)
	}
}

func TestSwitchFlowHappyPath(t *testing.T) {
	f := NewSwitchFlow("s1", "cs1", "from")
	sub := &fakeSubmitter{}

	if err := f.Submit(context.Background(), sub); !errors.Is(err, ErrBadSwitchStep) {
		t.Fatalf("submit before confirm: got %v", err)
	}

	if err := f.Select("to"); err != nil {
		t.Fatal(err)
	}
	if f.State() != SwitchConfirm {
		t.Fatalf("got state %d", f.State())
	}

	if err := f.Submit(context.Background(), sub); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if f.State() != SwitchSuccess || f.RequestID != "req-1" {
		t.Errorf("state=%d requestID=%q", f.State(), f.RequestID)
	}

	req := sub.requests[0]
	if req.Type != models.RequestTypeSwitch || len(req.Switch) != 1 {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.Switch[0].FromCourseOfferingID != "from" || req.Switch[0].ToCourseOfferingID != "to" {
		t.Errorf("wrong pair: %+v", req.Switch[0])
	}
	if len(req.Courses) != 0 {
		t.Errorf("switch request must not carry courses, got %d", len(req.Courses))
	}
}

func TestSwitchFlowRetrySamePair(t *testing.T) {
	f := NewSwitchFlow("s1", "cs1", "from")
	if err := f.Select("to"); err != nil {
		t.Fatal(err)
	}

	sub := &fakeSubmitter{err: errors.New("boom")}
	if err := f.Submit(context.Background(), sub); err == nil {
		t.Fatal("expected submit failure")
	}
	if f.State() != SwitchError {
		t.Fatalf("got state %d, want error", f.State())
	}

	sub.err = nil
	if err := f.Retry(context.Background(), sub); err != nil {
		t.Fatalf("Retry: %v", err)
	}
	if f.State() != SwitchSuccess {
		t.Errorf("got state %d, want success", f.State())
	}

	if len(sub.requests) != 2 {
		t.Fatalf("got %d requests", len(sub.requests))
	}
	if sub.requests[0].Switch[0] != sub.requests[1].Switch[0] {
		t.Error("retry must re-submit the same pair")
	}
}

func TestSwitchFlowRetryOnlyFromError(t *testing.T) {
	f := NewSwitchFlow("s1", "cs1", "from")
	if err := f.Retry(context.Background(), &fakeSubmitter{}); !errors.Is(err, ErrBadSwitchStep) {
		t.Errorf("got %v, want ErrBadSwitchStep", err)
	}
}
