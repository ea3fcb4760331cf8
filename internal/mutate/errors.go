package mutate

import "errors"

// Validation errors carry the exact message the admin page shows next
// to the offending field; TUI form errors and CLI stderr reuse them
// verbatim.
var (
	ErrLoginRequired    = errors.New("Login is required")
	ErrPasswordRequired = errors.New("Password is required")
	ErrNameRequired     = errors.New("Name is required")
	ErrRegionRequired   = errors.New("Pick a region")
	ErrPasswordTooShort = errors.New("Password must be at least 6 characters")
)

// DayError reports which weekday input of the weekly cutoffs form
// failed validation, so the editor can refocus it.
type DayError struct {
	Day   string
	Index int
	Err   error
}

func (e DayError) Error() string { return e.Err.Error() }

func (e DayError) Unwrap() error { return e.Err }
