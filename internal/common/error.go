// Package common defines shared constants and sentinel errors used across
// the gateway, view-model and CLI layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Lookup errors (resource absent in an already-fetched collection
	// or reported missing by the backend).
	ErrNotFound = errors.New("not found")

	// Transport-level failures (request never completed).
	ErrNetworkFailure = errors.New("network failure")

	// Session errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Validation errors, detected client-side before anything is sent
	// over the wire.
	ErrEmptyTitle         = errors.New("title must not be empty")
	ErrNoFile             = errors.New("no file provided")
	ErrFileTooLarge       = errors.New("file too large (max 20MB)")
	ErrFileTypeNotAllowed = errors.New("only pdf, doc and docx files are allowed")
	ErrNameMismatch       = errors.New("repository name does not match")
)
