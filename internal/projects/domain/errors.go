package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("project not found")
	ErrValidation = errors.New("invalid project")
)

// ValidationError names the first offending field. It matches ErrValidation
// under errors.Is.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
