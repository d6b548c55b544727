package models

// Term represents a semester term.
type Term string

const (
	TermSpring Term = "spring"
	TermFall   Term = "fall"
)

// Valid reports whether the term is one of the known values.
func (t Term) Valid() bool {
	return t == TermSpring || t == TermFall
}

// CourseStatus is the derived enrollment status of an offering.
type CourseStatus string

const (
	StatusOpen   CourseStatus = "open"
	StatusClosed CourseStatus = "closed"
	StatusFull   CourseStatus = "full"
)

// RequestStatus is the processing status of an enrollment request.
type RequestStatus string

const (
	RequestStatusNew       RequestStatus = "new"
	RequestStatusPartial   RequestStatus = "partial"
	RequestStatusCompleted RequestStatus = "completed"
	RequestStatusFailed    RequestStatus = "failed"
)

// RequestType distinguishes a fresh enrollment from a course switch.
type RequestType string

const (
	RequestTypeNew    RequestType = "new"
	RequestTypeSwitch RequestType = "switch"
)

// ItemType classifies a single course choice inside a request.
type ItemType string

const (
	ItemTypeMain    ItemType = "main"
	ItemTypeReserve ItemType = "reserve"
	ItemTypeSwitch  ItemType = "switch"
)

// ItemStatus is the per-course outcome of request processing.
type ItemStatus string

const (
	ItemStatusNew       ItemStatus = "new"
	ItemStatusSuccess   ItemStatus = "success"
	ItemStatusCancelled ItemStatus = "cancelled"
	ItemStatusError     ItemStatus = "error"
)
