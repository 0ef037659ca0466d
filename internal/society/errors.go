package society

import "errors"

// Business outcomes. All of these are expected, recoverable conditions:
// the operation is a no-op and state is unchanged when one is returned.
var (
	ErrCapacityExceeded     = errors.New("capacity_exceeded")
	ErrInsufficientCapital  = errors.New("insufficient_social_capital")
	ErrInsufficientFunds    = errors.New("insufficient_funds")
	ErrInsufficientPrestige = errors.New("insufficient_prestige")
	ErrNotFound             = errors.New("not_found")
	ErrNoPendingMeeting     = errors.New("no_pending_meeting")
	ErrAlreadyReserved      = errors.New("already_reserved")
	ErrAlreadyAttended      = errors.New("already_attended")
	ErrAlreadyUsed          = errors.New("already_used")
	ErrEventLapsed          = errors.New("event_lapsed")
)
