package core

import "errors"

// Input validation errors. Every one of them is fatal to the call and no
// partial result is returned; callers detect them with errors.Is.
var (
	ErrEmptyInput = errors.New("no processes to schedule")

	ErrMissingPriority = errors.New("all processes must have priority for priority scheduling")

	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrNonTerminatingInput is returned for a non-positive burst time.
	ErrNonTerminatingInput = errors.New("burst time must be greater than zero")

	ErrInvalidArrival = errors.New("arrival time must not be negative")

	ErrInvalidQuantum = errors.New("time quantum must be greater than zero")

	// ErrInvalidProcessID is returned for an empty or repeated process id.
	ErrInvalidProcessID = errors.New("process id must be non-empty and unique")
)
