package returns

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindNotFound            Kind = "not_found"
	KindValidationFailed    Kind = "validation_failed"
	KindIllegalTransition   Kind = "illegal_transition"
	KindCollaboratorFailure Kind = "collaborator_failure"
)

var (
	ErrNotFound              = errors.New("return not found")
	ErrDuplicateReturnNumber = errors.New("return number already exists")
	ErrConcurrentUpdate      = errors.New("return was modified concurrently")
	ErrActiveReturnExists    = errors.New("order already has an active return")
)

// Error is the failure result of every public engine operation. Message is
// safe to show to the caller; Err keeps the cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg, Err: ErrNotFound}
}

func ValidationFailed(msg string, fields map[string]string) *Error {
	return &Error{Kind: KindValidationFailed, Message: msg, Fields: fields}
}

func IllegalTransition(msg string) *Error {
	return &Error{Kind: KindIllegalTransition, Message: msg}
}

func CollaboratorFailure(msg string, err error) *Error {
	return &Error{Kind: KindCollaboratorFailure, Message: msg, Err: err}
}

// KindOf returns the kind of an engine error, or KindCollaboratorFailure for
// anything the engine did not classify.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindCollaboratorFailure
}

// Result is the structured {success, message, errors} envelope handed to
// callers outside the engine.
type Result struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Data    any               `json:"data,omitempty"`
}

func OK(data any) Result {
	return Result{Success: true, Data: data}
}

func Failure(err error) Result {
	var e *Error
	if errors.As(err, &e) {
		return Result{Message: e.Message, Errors: e.Fields}
	}
	return Result{Message: "Internal error"}
}

// wrapStore classifies a store error: missing rows become NotFound, anything
// else a collaborator failure.
func wrapStore(err error, notFoundMsg, failMsg string) error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	if errors.Is(err, ErrNotFound) {
		return NotFound(notFoundMsg)
	}
	return CollaboratorFailure(failMsg, err)
}
