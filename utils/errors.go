// utils/errors.go - Typed domain errors carried up to the error handler
package utils

import (
	"strconv"
	"strings"
)

// ServiceError is the one failure type services raise. The result code
// follows the "<httpStatus>-<subcode>" convention of the envelope; the
// top-level error handler translates it, so business logic never touches
// HTTP responses.
type ServiceError struct {
	ResultCode string
	Msg        string
}

func (e *ServiceError) Error() string {
	return e.ResultCode + ": " + e.Msg
}

// NewServiceError builds a ServiceError with an explicit result code.
func NewServiceError(resultCode, msg string) *ServiceError {
	return &ServiceError{ResultCode: resultCode, Msg: msg}
}

func BadRequest(msg string) *ServiceError   { return NewServiceError("400-1", msg) }
func Unauthorized(msg string) *ServiceError { return NewServiceError("401-1", msg) }
func Forbidden(msg string) *ServiceError    { return NewServiceError("403-NO_PERMISSION", msg) }
func NotFound(code, msg string) *ServiceError {
	return NewServiceError("404-"+code, msg)
}
func Conflict(msg string) *ServiceError { return NewServiceError("409-1", msg) }

// StatusOf extracts the HTTP status from a result code ("403-NO_PERMISSION"
// yields 403). Unparseable codes fall back to 400.
func StatusOf(resultCode string) int {
	head, _, _ := strings.Cut(resultCode, "-")
	status, err := strconv.Atoi(head)
	if err != nil || status < 100 || status > 599 {
		return 400
	}
	return status
}
