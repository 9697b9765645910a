package appointment

// Status values are a closed set shared with the frontend; the strings are
// part of the API contract.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further status changes are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// BlocksSlot reports whether the appointment still occupies its interval
// for collision purposes. A cancelled appointment is kept for history but
// its interval is inert.
func (s Status) BlocksSlot() bool {
	return s != StatusCancelled
}
