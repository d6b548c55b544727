package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/pkg/apperrors"
)

// fakeEnrollmentStore answers the snapshot and in-transaction holding
// queries independently, so tests can model a concurrent switch committing
// between the two.
type fakeEnrollmentStore struct {
	snapshot []string
	holdsTx  map[string]bool

	itemStatus   map[string]models.ItemStatus
	itemComments map[string]string
	cancelled    []string
	requestState models.RequestStatus
}

func (f *fakeEnrollmentStore) CreateTx(ctx context.Context, tx pgx.Tx, request *models.EnrollmentRequest) error {
	return nil
}

func (f *fakeEnrollmentStore) UpdateStatusTx(ctx context.Context, tx pgx.Tx, requestID string, status models.RequestStatus, errText string) error {
	f.requestState = status
	return nil
}

func (f *fakeEnrollmentStore) UpdateItemStatusTx(ctx context.Context, tx pgx.Tx, itemID string, status models.ItemStatus, comment string) error {
	if f.itemStatus == nil {
		f.itemStatus = map[string]models.ItemStatus{}
		f.itemComments = map[string]string{}
	}
	f.itemStatus[itemID] = status
	f.itemComments[itemID] = comment
	return nil
}

func (f *fakeEnrollmentStore) GetLatestByStudentAndSemester(ctx context.Context, studentID, cohortSemesterID string) (*models.EnrollmentRequest, error) {
	return nil, apperrors.ErrEnrollmentRequestNotFound
}

func (f *fakeEnrollmentStore) GetEnrolledOfferingIDs(ctx context.Context, studentID string) ([]string, error) {
	return f.snapshot, nil
}

func (f *fakeEnrollmentStore) HoldsOfferingTx(ctx context.Context, tx pgx.Tx, studentID, offeringID string) (bool, error) {
	return f.holdsTx[offeringID], nil
}

func (f *fakeEnrollmentStore) CancelItemsTx(ctx context.Context, tx pgx.Tx, studentID, offeringID, comment string) error {
	f.cancelled = append(f.cancelled, offeringID)
	return nil
}

type seatChange struct {
	offeringID string
	delta      int
}

type fakeOfferingStore struct {
	offerings map[string]*models.CourseOffering
	changes   []seatChange

	// emptyOnDecrement simulates a count already at zero.
	emptyOnDecrement map[string]bool
}

func (f *fakeOfferingStore) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*models.CourseOffering, error) {
	offering, ok := f.offerings[id]
	if !ok {
		return nil, apperrors.ErrOfferingNotFound
	}
	copied := *offering
	return &copied, nil
}

func (f *fakeOfferingStore) AdjustEnrolled(ctx context.Context, tx pgx.Tx, id string, delta int) error {
	if delta < 0 && f.emptyOnDecrement[id] {
		return apperrors.ErrNoEnrolledSeat
	}
	f.changes = append(f.changes, seatChange{offeringID: id, delta: delta})
	return nil
}

func openOffering(id string, now time.Time) *models.CourseOffering {
	return &models.CourseOffering{
		ID:              id,
		CourseID:        "c-" + id,
		Capacity:        30,
		Enrolled:        10,
		EnrollmentOpen:  now.Add(-24 * time.Hour),
		EnrollmentClose: now.Add(24 * time.Hour),
		Year:            now.Year(),
		Term:            models.TermFall,
	}
}

func switchRequest(from, to string) *models.EnrollmentRequest {
	return &models.EnrollmentRequest{
		ID:        "req-1",
		StudentID: "s1",
		Type:      models.RequestTypeSwitch,
		Switch:    []models.SwitchPair{{FromCourseOfferingID: from, ToCourseOfferingID: to}},
		Courses: []models.EnrollmentRequestItem{
			{ID: "item-1", CourseOfferingID: to, Type: models.ItemTypeSwitch, Status: models.ItemStatusNew},
		},
	}
}

func switchService(enr *fakeEnrollmentStore, off *fakeOfferingStore) *enrollmentServiceImpl {
	return &enrollmentServiceImpl{
		enrollmentRepo: enr,
		offeringRepo:   off,
		logger:         zerolog.Nop(),
	}
}

func TestSwitchMovesSeatBetweenOfferings(t *testing.T) {
	now := time.Now()
	enr := &fakeEnrollmentStore{
		snapshot: []string{"o-from"},
		holdsTx:  map[string]bool{"o-from": true},
	}
	off := &fakeOfferingStore{offerings: map[string]*models.CourseOffering{
		"o-from": openOffering("o-from", now),
		"o-to":   openOffering("o-to", now),
	}}

	s := switchService(enr, off)
	if err := s.processSwitchRequest(context.Background(), nil, switchRequest("o-from", "o-to")); err != nil {
		t.Fatalf("processSwitchRequest: %v", err)
	}

	want := []seatChange{{"o-from", -1}, {"o-to", 1}}
	if len(off.changes) != 2 || off.changes[0] != want[0] || off.changes[1] != want[1] {
		t.Errorf("seat changes %+v, want %+v", off.changes, want)
	}
	if len(enr.cancelled) != 1 || enr.cancelled[0] != "o-from" {
		t.Errorf("cancelled %v, want [o-from]", enr.cancelled)
	}
	if enr.requestState != models.RequestStatusCompleted {
		t.Errorf("request status %s, want completed", enr.requestState)
	}
}

func TestSwitchReverifiesHoldingAfterLocks(t *testing.T) {
	now := time.Now()
	// The snapshot still lists the source, but another switch committed
	// while this one waited on the row locks.
	enr := &fakeEnrollmentStore{
		snapshot: []string{"o-from"},
		holdsTx:  map[string]bool{"o-from": false},
	}
	off := &fakeOfferingStore{offerings: map[string]*models.CourseOffering{
		"o-from": openOffering("o-from", now),
		"o-to":   openOffering("o-to", now),
	}}

	s := switchService(enr, off)
	if err := s.processSwitchRequest(context.Background(), nil, switchRequest("o-from", "o-to")); err != nil {
		t.Fatalf("processSwitchRequest: %v", err)
	}

	if len(off.changes) != 0 {
		t.Errorf("seat counts moved %+v, want untouched", off.changes)
	}
	if got := enr.itemStatus["item-1"]; got != models.ItemStatusError {
		t.Errorf("item status %s, want error", got)
	}
	if got := enr.itemComments["item-1"]; got != "student is not enrolled in the source offering" {
		t.Errorf("item comment %q", got)
	}
	if enr.requestState != models.RequestStatusFailed {
		t.Errorf("request status %s, want failed", enr.requestState)
	}
}

func TestSwitchFailsPairWhenNoSeatToRelease(t *testing.T) {
	now := time.Now()
	enr := &fakeEnrollmentStore{
		snapshot: []string{"o-from"},
		holdsTx:  map[string]bool{"o-from": true},
	}
	off := &fakeOfferingStore{
		offerings: map[string]*models.CourseOffering{
			"o-from": openOffering("o-from", now),
			"o-to":   openOffering("o-to", now),
		},
		emptyOnDecrement: map[string]bool{"o-from": true},
	}

	s := switchService(enr, off)
	if err := s.processSwitchRequest(context.Background(), nil, switchRequest("o-from", "o-to")); err != nil {
		t.Fatalf("processSwitchRequest: %v", err)
	}

	// The target seat must not be taken when the source release failed.
	if len(off.changes) != 0 {
		t.Errorf("seat changes %+v, want none", off.changes)
	}
	if got := enr.itemStatus["item-1"]; got != models.ItemStatusError {
		t.Errorf("item status %s, want error", got)
	}
	if enr.requestState != models.RequestStatusFailed {
		t.Errorf("request status %s, want failed", enr.requestState)
	}
}

func TestSwitchRejectsFullTarget(t *testing.T) {
	now := time.Now()
	enr := &fakeEnrollmentStore{
		snapshot: []string{"o-from"},
		holdsTx:  map[string]bool{"o-from": true},
	}
	full := openOffering("o-to", now)
	full.Enrolled = full.Capacity
	off := &fakeOfferingStore{offerings: map[string]*models.CourseOffering{
		"o-from": openOffering("o-from", now),
		"o-to":   full,
	}}

	s := switchService(enr, off)
	if err := s.processSwitchRequest(context.Background(), nil, switchRequest("o-from", "o-to")); err != nil {
		t.Fatalf("processSwitchRequest: %v", err)
	}

	if len(off.changes) != 0 {
		t.Errorf("seat changes %+v, want none", off.changes)
	}
	if got := enr.itemComments["item-1"]; got != apperrors.ErrOfferingFull.Error() {
		t.Errorf("item comment %q", got)
	}
}
