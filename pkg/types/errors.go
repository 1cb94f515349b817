package types

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by the store wraps one of these.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrExhausted       = errors.New("resource exhausted")
)

// Invalid-argument errors.
var (
	ErrStoreAbsent     = fmt.Errorf("store is absent: %w", ErrInvalidArgument)
	ErrGradeOutOfRange = fmt.Errorf("grade must be between %d and %d: %w", MinGrade, MaxGrade, ErrInvalidArgument)
	ErrInvalidRecord   = fmt.Errorf("record is absent: %w", ErrInvalidArgument)
)

// Not-found errors.
var (
	ErrStudentNotFound = fmt.Errorf("student not found: %w", ErrNotFound)
	ErrCourseNotFound  = fmt.Errorf("course not found: %w", ErrNotFound)
)

// Conflict errors.
var (
	ErrDuplicateStudent = fmt.Errorf("student id already exists: %w", ErrConflict)
	ErrDuplicateCourse  = fmt.Errorf("course already recorded for student: %w", ErrConflict)
)

// IsUserError reports whether err is caused by the caller's input rather
// than by the system (invalid argument, unknown id, or a conflict).
func IsUserError(err error) bool {
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict)
}
