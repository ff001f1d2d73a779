package errorvalues

import "errors"

var (
	// Local pre-flight rejection, never reaches storage or network
	ErrValidation = errors.New("validation error")
	ErrNetwork    = errors.New("network error")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage error")
	ErrDecode     = errors.New("decode error")
)

var (
	ErrActivityNotFound  = notFound("activity")
	ErrGoalNotFound      = notFound("goal")
	ErrChallengeNotFound = notFound("challenge")
	ErrWorkoutNotFound   = notFound("workout")
)

type notFoundError struct {
	what string
}

func notFound(what string) error {
	return &notFoundError{what: what}
}

func (e *notFoundError) Error() string {
	return e.what + " not found"
}

func (e *notFoundError) Unwrap() error {
	return ErrNotFound
}
