package service

import "fmt"

// ValidationError is a rule-violating input. Handlers render it as a
// 400 with the message as-is.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
