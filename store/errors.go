package store

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by callers with errors.Is. All store failures are
// local and recoverable; nothing here is fatal to the process.
var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// DanglingReferenceError reports a reference field that points at a
// nonexistent entity. Writes are rejected with this; reads tolerate
// dangling references left behind by person/team deletion.
type DanglingReferenceError struct {
	Field string
	Value string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("%s references missing entity %q", e.Field, e.Value)
}

// ConflictError reports a write rejected by an entity-level rule, such as
// a person set as their own manager.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}
