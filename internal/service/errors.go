package service

import "errors"

// Domain errors returned by the service layer. Handlers map these to
// stable HTTP error codes; callers match with [errors.Is].
var (
	// ErrInvalidDataProvided is returned when a request payload fails
	// validation before any state is touched.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInsufficientAttestors is returned when an open-case request
	// targets an account with fewer registered trusted contacts than the
	// confirmation quorum, so the quorum could never form.
	ErrInsufficientAttestors = errors.New("not enough trusted contacts to attest")

	// ErrCaseAlreadyOpen is returned when the subject account already has
	// a case in OPEN or CONFIRMED state.
	ErrCaseAlreadyOpen = errors.New("account already has an active case")

	// ErrAlreadyDecided is returned when a verification token is redeemed
	// a second time.
	ErrAlreadyDecided = errors.New("verification token was already used")

	// ErrTokenExpired is returned when a verification token is redeemed
	// after its TTL has elapsed.
	ErrTokenExpired = errors.New("verification token has expired")

	// ErrNoCancelableCase is returned when an owner cancellation finds no
	// OPEN or CONFIRMED case to cancel.
	ErrNoCancelableCase = errors.New("no cancelable case for account")

	// ErrContactLimitReached is returned when an account tries to
	// register more trusted contacts than the per-account maximum.
	ErrContactLimitReached = errors.New("trusted contact limit reached")
)
