package errors

import (
	"github.com/eaugeas/linkedbst/container/tree"
	"github.com/eaugeas/linkedbst/logs"
)

// ErrCodeUnknown is returned for failures that are not exposed
// to clients
const ErrCodeUnknown = -1

// Error codes returned to clients of the tree service. They are
// part of the wire format and must not be renumbered
const (
	ErrCodeKeyNotPresent = 1001 + iota
	ErrCodeEmptyTree
	ErrCodeInvalidRange
	ErrCodeInvalidItem
)

// Error is the response returned by the server when it fails
// to satisfy a request
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int `json:"errorCode"`

	// Description is a human-readable description of the error that occurred
	// to aid the client in debugging
	Description string `json:"description"`
}

// Error is the implementation of go's error interface for Error
func (e *Error) Error() string {
	return e.Description
}

// Log is the implementation of logs.Loggable for Error
func (e *Error) Log(fields logs.Fields) {
	fields.Add("error_code", e.ErrorCode)
	fields.Add("description", e.Description)
}

// New creates a new Error
func New(code int, description string) *Error {
	return &Error{ErrorCode: code, Description: description}
}

// FromTree translates the errors returned by a tree into an Error.
// It returns nil for errors that do not come from a tree
func FromTree(err error) *Error {
	switch err := err.(type) {
	case tree.ErrKeyNotPresent:
		return New(ErrCodeKeyNotPresent, err.Error())
	case tree.ErrEmptyTree:
		return New(ErrCodeEmptyTree, err.Error())
	default:
		return nil
	}
}
