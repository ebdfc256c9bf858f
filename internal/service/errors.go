package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidatorConflict = errors.New("collection exists with a different validator")
	ErrIndexConflict     = errors.New("index exists with different options")
	ErrDuplicateData     = errors.New("existing documents violate a unique index")
	ErrAlreadySeeded     = errors.New("seed symbols already present")
	ErrInvalidSeed       = errors.New("seed document rejected by schema")
	ErrUnknownSeedMode   = errors.New("unknown seed mode")
)

// StepError wraps the failure of one bootstrap step.
type StepError struct {
	Step       string
	Collection string
	Err        error
}

func (e *StepError) Error() string {
	if e.Collection != "" {
		return fmt.Sprintf("%s %s: %v", e.Step, e.Collection, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
