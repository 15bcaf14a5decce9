// Copyright (c) 2025 BOTANIQ.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package services

import "errors"

type ErrorCode string

const (
	ErrorInvalid          ErrorCode = "invalid"
	ErrorConflict         ErrorCode = "conflict"
	ErrorUnauthorized     ErrorCode = "unauthorized"
	ErrorNotFound         ErrorCode = "not_found"
	ErrorInvalidSession   ErrorCode = "invalid_session"
	ErrorAlreadySubmitted ErrorCode = "already_submitted"
	ErrorInternal         ErrorCode = "internal"
)

// ServiceError carries a machine-readable code for the HTTP boundary and a
// human-readable message for the response body.
type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func NewInvalidError(msg string) error  { return &ServiceError{Code: ErrorInvalid, Message: msg} }
func NewConflictError(msg string) error { return &ServiceError{Code: ErrorConflict, Message: msg} }
func NewUnauthorizedError(msg string) error {
	return &ServiceError{Code: ErrorUnauthorized, Message: msg}
}
func NewNotFoundError(msg string) error { return &ServiceError{Code: ErrorNotFound, Message: msg} }
func NewInvalidSessionError(msg string) error {
	return &ServiceError{Code: ErrorInvalidSession, Message: msg}
}
func NewAlreadySubmittedError(msg string) error {
	return &ServiceError{Code: ErrorAlreadySubmitted, Message: msg}
}
func NewInternalError(msg string) error { return &ServiceError{Code: ErrorInternal, Message: msg} }

// CodeOf extracts the error code, defaulting to ErrorInternal for anything
// that is not a ServiceError.
func CodeOf(err error) ErrorCode {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrorInternal
}
