package reconcile

import "errors"

var (
	// ErrUnknownAction indicates a request carried an enumeration action the
	// driver does not recognize. Programming-defect class: fatal.
	ErrUnknownAction = errors.New("unknown enumeration action")

	// ErrScopeBusy indicates another cycle already holds the provider client
	// for the requested scope.
	ErrScopeBusy = errors.New("provider client for scope is already checked out")
)
