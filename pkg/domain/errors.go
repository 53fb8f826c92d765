package domain

import "errors"

// ErrStepNotFound is returned when a step ID cannot be found in the loader.
var ErrStepNotFound = errors.New("step not found")

// ErrStepIDCollision is returned when two step definitions normalize to the same ID.
var ErrStepIDCollision = errors.New("step id collision")
