package booking

import "errors"

var ErrInvalidStatus = errors.New("invalid booking status")

// Status is the approval state of a booking. A booking starts WAITING and is
// moved by the item owner to APPROVED or REJECTED. Neither decision is
// terminal: the owner may flip an already decided booking the other way.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusWaiting, StatusApproved, StatusRejected:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// Decide returns the status an owner decision moves a booking to. It is
// total over every current status; re-approval and re-rejection are allowed.
func (s Status) Decide(approved bool) Status {
	if approved {
		return StatusApproved
	}
	return StatusRejected
}
