package service

import (
	"errors"
	"strings"
)

var (
	ErrValidation = errors.New("validation error")
	ErrDelivery   = errors.New("email delivery failed")
)

// Issue is one entry of a 400 response body.
type Issue struct {
	Message    string   `json:"message"`
	Properties []string `json:"properties,omitempty"`
}

// ValidationError collects one or more issues. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Issues []Issue
}

func NewValidationError(message string, properties ...string) *ValidationError {
	e := &ValidationError{}
	e.Add(message, properties...)
	return e
}

func (e *ValidationError) Add(message string, properties ...string) {
	issue := Issue{Message: message}
	if len(properties) > 0 {
		issue.Properties = properties
	}
	e.Issues = append(e.Issues, issue)
}

// ErrOrNil returns nil when nothing was collected.
func (e *ValidationError) ErrOrNil() error {
	if e == nil || len(e.Issues) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		messages = append(messages, issue.Message)
	}
	return strings.Join(messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
