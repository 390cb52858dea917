package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition: the action is illegal for the record's current
	// status, including a compare-and-swap that matched zero rows.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrMissingField: local input incompleteness, raised before any write.
	ErrMissingField = errors.New("missing required field")
	// ErrExternalService: webhook non-2xx, network failure or malformed
	// response. Always raised after the authoritative write.
	ErrExternalService = errors.New("external payment service error")
	ErrForbidden       = errors.New("operation not allowed for this session")
	ErrInvalidSession  = errors.New("invalid session")
)

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}

func invalidTransition(entity, id string, from, action string) error {
	return fmt.Errorf("%w: %s %s is %s, cannot %s", ErrInvalidTransition, entity, id, from, action)
}

func externalService(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrExternalService, op, err)
}
