package errors

import "fmt"

type InvalidStateError struct {
	msg string
}

func NewInvalidStateError(msg string) *InvalidStateError {
	return &InvalidStateError{msg: msg}
}

func (e *InvalidStateError) Error() string {
	return e.msg
}

type NilArgumentError struct {
	argument string
}

func NewNilArgumentError(argument string) *NilArgumentError {
	return &NilArgumentError{argument: argument}
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' must not be nil", e.argument)
}

// UnexpectedStatusError is returned by HTTP collaborators on a non-2xx answer.
type UnexpectedStatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func NewUnexpectedStatusError(service string, statusCode int, body string) *UnexpectedStatusError {
	return &UnexpectedStatusError{Service: service, StatusCode: statusCode, Body: body}
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Service, e.StatusCode, e.Body)
}
