package models

import (
	"errors"
	"fmt"
)

type ErrorCode int

const (
	Internal ErrorCode = iota
	InvalidData
	NotFound
	Canceled
	DeadlineExceeded
	Unknown
)

func (c ErrorCode) String() string {
	switch c {
	case Internal:
		return "INTERNAL"
	case InvalidData:
		return "INVALID_DATA"
	case NotFound:
		return "NOT_FOUND"
	case Canceled:
		return "CANCELED"
	case DeadlineExceeded:
		return "DEADLINE_EXCEEDED"
	default:
		return "UNKNOWN"
	}
}

type ServiceError struct {
	Msg  string
	Code ErrorCode
	Err  error
}

func (e *ServiceError) Error() string {
	if e.Err != nil && e.Msg == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func Error(code ErrorCode, msg string) error {
	return &ServiceError{Code: code, Msg: msg}
}

func Errorf(code ErrorCode, format string, args ...any) error {
	return &ServiceError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(code ErrorCode, err error) error {
	return &ServiceError{Code: code, Err: err}
}

func Code(err error) ErrorCode {
	if err == nil {
		return Unknown
	}

	var serviceErr = &ServiceError{}
	if errors.As(err, &serviceErr) {
		return serviceErr.Code
	}
	return Unknown
}
