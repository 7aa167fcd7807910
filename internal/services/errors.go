// Package services implements the invitation, selection, photo ingestion
// and user workflows on top of the entity repository and the blob store.
//
// The error types below are the taxonomy handlers translate into HTTP
// status codes: ValidationError -> 400, NotFoundError -> 404,
// AuthError -> 401. Anything else is an internal failure and maps to 500.
package services

// ValidationError reports bad, missing or self-referential caller input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// AuthError reports failed credentials.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }
