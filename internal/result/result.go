package result

import "net/http"

// Error is a domain error with a stable machine-readable code and a
// human-readable message. Codes follow the "{Entity}.{Reason}" convention
// (e.g. "Fund.Conflict", "Contact.NameRequired").
type Error struct {
	Code    string
	Message string
}

func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Result carries either a success value or an Error plus an HTTP status
// classification. Expected failures (validation, not-found, conflict)
// travel through the pipeline as Results, never as Go errors.
type Result[T any] struct {
	value  T
	err    *Error
	status int
}

func Success[T any](value T) Result[T] {
	return Result[T]{value: value, status: http.StatusOK}
}

func failure[T any](status int, err *Error) Result[T] {
	var zero T
	return Result[T]{value: zero, err: err, status: status}
}

func BadRequest[T any](err *Error) Result[T] {
	return failure[T](http.StatusBadRequest, err)
}

func NotFound[T any](err *Error) Result[T] {
	return failure[T](http.StatusNotFound, err)
}

func Conflict[T any](err *Error) Result[T] {
	return failure[T](http.StatusConflict, err)
}

func Unauthorized[T any](err *Error) Result[T] {
	return failure[T](http.StatusUnauthorized, err)
}

func Forbidden[T any](err *Error) Result[T] {
	return failure[T](http.StatusForbidden, err)
}

func ValidationError[T any](err *Error) Result[T] {
	return failure[T](http.StatusUnprocessableEntity, err)
}

func InternalServerError[T any](err *Error) Result[T] {
	return failure[T](http.StatusInternalServerError, err)
}

// From rewraps a failure under a different value type, preserving the error
// and status. The source value, if any, is discarded.
func From[T, S any](r Result[S]) Result[T] {
	return failure[T](r.status, r.err)
}

func (r Result[T]) IsSuccess() bool { return r.err == nil }

func (r Result[T]) IsFailure() bool { return r.err != nil }

func (r Result[T]) Value() T { return r.value }

func (r Result[T]) Err() *Error { return r.err }

func (r Result[T]) Status() int { return r.status }
