// Package apperror carries the status-bearing errors that services hand back to the HTTP layer.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const validationPrefix = "Validation failed"

// AppError is an error whose message is safe to show to an admin user.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func New(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

func BadRequest(format string, args ...interface{}) *AppError {
	return New(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

// Conflict is a business-rule rejection (duplicate slug, duplicate membership...).
// The admin API reports these as 400, not 409.
func Conflict(format string, args ...interface{}) *AppError {
	return New(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...interface{}) *AppError {
	return New(http.StatusNotFound, fmt.Sprintf(format, args...))
}

// ValidationFailed joins field problems into one message prefixed with "Validation failed".
func ValidationFailed(problems ...string) *AppError {
	if len(problems) == 0 {
		return New(http.StatusBadRequest, validationPrefix)
	}
	return New(http.StatusBadRequest, validationPrefix+": "+strings.Join(problems, "; "))
}

// As unwraps err into an *AppError when possible.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Status == http.StatusNotFound
}

func IsValidation(err error) bool {
	appErr, ok := As(err)
	return ok && strings.HasPrefix(appErr.Message, validationPrefix)
}
