// Package types defines the Gradebook interface, the exported record types,
// configuration, and the standard error values for the grades store.
//
// Errors come in four classes (ErrInvalidArgument, ErrNotFound, ErrConflict,
// ErrExhausted). Every specific error wraps exactly one class, so callers can
// match either the class or the specific value with errors.Is.
package types
