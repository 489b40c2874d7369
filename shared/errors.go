package shared

import (
	"errors"
	"fmt"
	"math"
	"net/http"
)

type ErrorKind string

const (
	KindRateLimited        ErrorKind = "RATE_LIMITED"
	KindMissingName        ErrorKind = "MISSING_NAME"
	KindNameTooLong        ErrorKind = "NAME_TOO_LONG"
	KindMissingMessage     ErrorKind = "MISSING_MESSAGE"
	KindMessageTooLong     ErrorKind = "MESSAGE_TOO_LONG"
	KindPersistenceFailure ErrorKind = "PERSISTENCE_FAILURE"
	KindBadRequest         ErrorKind = "BAD_REQUEST"
)

// AppError is returned by services and rendered by the HTTP error handler.
type AppError struct {
	StatusCode int
	Kind       ErrorKind
	Message    string
	Data       interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// RateLimitData is attached to RATE_LIMITED errors.
type RateLimitData struct {
	Kind        ErrorKind `json:"kind"`
	RemainingMs int64     `json:"remaining_ms"`
	RetryAfter  int64     `json:"retry_after"`
}

// ValidationData is attached to field validation errors.
type ValidationData struct {
	Kind  ErrorKind `json:"kind"`
	Field string    `json:"field"`
}

func NewBadRequestError(err error, message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Kind: KindBadRequest, Message: message, Err: err}
}

func NewPersistenceError(err error, message string) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Kind: KindPersistenceFailure, Message: message, Err: err}
}

func NewValidationError(kind ErrorKind, field, message string) *AppError {
	return &AppError{
		StatusCode: http.StatusBadRequest,
		Kind:       kind,
		Message:    message,
		Data:       ValidationData{Kind: kind, Field: field},
	}
}

// NewRateLimitedError reports the wait rounded up to whole seconds.
func NewRateLimitedError(remainingMs int64) *AppError {
	seconds := RetryAfterSeconds(remainingMs)
	return &AppError{
		StatusCode: http.StatusTooManyRequests,
		Kind:       KindRateLimited,
		Message:    fmt.Sprintf("Too many submissions. Please wait %d seconds before trying again.", seconds),
		Data: RateLimitData{
			Kind:        KindRateLimited,
			RemainingMs: remainingMs,
			RetryAfter:  seconds,
		},
	}
}

func RetryAfterSeconds(remainingMs int64) int64 {
	if remainingMs <= 0 {
		return 0
	}
	return int64(math.Ceil(float64(remainingMs) / 1000))
}

func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsKind(err error, kind ErrorKind) bool {
	appErr, ok := GetAppError(err)
	return ok && appErr.Kind == kind
}
