// Package common defines sentinel errors shared by the storage and service
// layers of gatepass. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Validation errors.
	ErrorValidation = errors.New("validation error")
)
