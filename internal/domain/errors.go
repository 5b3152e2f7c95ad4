package domain

import "errors"

// ErrNotFound is returned by repo functions when the requested slot does not
// exist in durable storage, and by handlers' collaborators when a record id
// is unknown.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails the form
// rules (e.g. missing provider id, odometer not a positive number).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
