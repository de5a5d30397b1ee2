package service

import "errors"

// Sentinel errors returned by the plan and progress services. Handlers map
// these onto HTTP status codes; everything else is treated as internal.
var (
	// ErrInvalidInput rejects out-of-range profile fields, plan durations
	// outside [7,365], and negative nutrition targets before any
	// computation begins.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound signals a plan, day, or meal that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden signals an operation on a plan the requesting user does
	// not own.
	ErrForbidden = errors.New("forbidden")

	// ErrPlanActive rejects deletion of the currently active plan.
	ErrPlanActive = errors.New("plan is active")
)
