package domain

import "errors"

// Precondition violations, surfaced to the operator before any request
// is issued.
var (
	ErrNoSession      = errors.New("no active session: create a run first")
	ErrNoAnchor       = errors.New("solution anchor is empty: save it first")
	ErrUploadInFlight = errors.New("upload already in progress for this label")
	ErrNoDraftTasks   = errors.New("checklist has no draft tasks")
	ErrNoOutput       = errors.New("section has no drafted output")
)
