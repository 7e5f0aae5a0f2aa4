// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrProjectNotFound signals a missing project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrOrganizationNotFound signals a missing organization.
	ErrOrganizationNotFound = errors.New("organization not found")
	// ErrBugNotFound signals a missing bug.
	ErrBugNotFound = errors.New("bug not found")
	// ErrCommentNotFound signals a missing comment.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrNotificationNotFound signals a missing notification.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrPermissionDenied signals a failed authorization check.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrUserExists signals an email conflict.
	ErrUserExists = errors.New("user exists")
	// ErrOrganizationExists signals an organization name conflict.
	ErrOrganizationExists = errors.New("organization exists")
)

// ValidationError carries a field-to-message map so callers can show
// actionable feedback. It matches ErrInvalidArgument under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }
