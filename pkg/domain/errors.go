package domain

import (
	"context"
	"errors"
	"net"
	"strings"
)

// sentinel errors shared by engine, stores and transport
var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrNotFound        = errors.New("not found")
	ErrNoCategory      = errors.New("no category selected")
	ErrQuoteNotInFeed  = errors.New("quote not found")
	ErrCursorMismatch  = errors.New("cursor issued for another query")
	ErrUnavailable     = errors.New("remote unavailable")
)

// ErrorKind is a user-facing classification of a failure
type ErrorKind string

// error kinds surfaced to the UI layer
const (
	KindNone            ErrorKind = ""
	KindNetwork         ErrorKind = "network"
	KindNotFound        ErrorKind = "not_found"
	KindStoreConstraint ErrorKind = "store_constraint"
	KindGeneric         ErrorKind = "generic"
)

// Signal is a short categorized notification for the UI layer
type Signal struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// Classify maps an error onto the user-facing taxonomy.
// Cancellation is never a user-facing error and maps to KindNone.
func Classify(err error) ErrorKind {
	if err == nil || errors.Is(err, context.Canceled) {
		return KindNone
	}

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, ErrUnavailable), errors.As(err, &netErr):
		return KindNetwork
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUnknownCategory), errors.Is(err, ErrQuoteNotInFeed):
		return KindNotFound
	case IsConstraintError(err):
		return KindStoreConstraint
	}
	return KindGeneric
}

// IsConstraintError checks if an error is a SQLite constraint violation
func IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "constraint failed") || strings.Contains(errStr, "SQLITE_CONSTRAINT")
}
