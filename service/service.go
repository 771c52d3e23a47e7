// Package service implements the domain-mutation collaborators: validated
// create operations and owner-scoped reads over the store.
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tamdao/mytask/store"
)

// Service exposes the domain operations. All methods take an explicit owner
// id; nothing reads ambient session state.
type Service struct {
	store store.Store
}

// New creates a service over the given store.
func New(st store.Store) *Service {
	return &Service{store: st}
}

// ValidationError marks a rejected request (missing field, bad value,
// reference to an entity the owner does not hold).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// newID builds a short prefixed identifier.
func newID(prefix string) string {
	return prefix + "_" + uuid.New().String()[:8]
}
