package domain

import "errors"

// Workflow errors. All are caller/business errors, reported synchronously
// and never retried by the engine. Infrastructure faults (store, mail) are
// propagated unchanged and are not part of this set.
var (
	// ErrRequestNotFound is returned for an unknown request id.
	ErrRequestNotFound = errors.New("request not found")

	// ErrPermissionDenied is returned when the actor's role cannot act on
	// the request at all.
	ErrPermissionDenied = errors.New("role has no permission to act on this request")

	// ErrInvalidStageTransition is returned when the role is valid but the
	// request is not in the status that role acts on, including requests
	// already in a terminal status. The loser of a concurrent transition
	// race observes this error.
	ErrInvalidStageTransition = errors.New("request is not in the required status for this action")

	// ErrMissingReason is returned for a rejection without a reason.
	ErrMissingReason = errors.New("rejection reason is required")

	// ErrUnknownRole is returned when a role string is outside the closed
	// role set.
	ErrUnknownRole = errors.New("unknown role")
)

// Authentication errors.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidOTP   = errors.New("invalid one-time password")
	ErrOTPExpired   = errors.New("one-time password has expired")
)
