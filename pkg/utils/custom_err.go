package utils

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrCategoryNotFound   = errors.New("trade category not found")
	ErrStateNotFound      = errors.New("state not found")
	ErrSessionNotFound    = errors.New("wizard session not found")

	// ErrNoQuestionsConfigured is the blocking configuration error for a
	// category without an admin-authored question set. A poster cannot
	// proceed past step 1 with such a category selected.
	ErrNoQuestionsConfigured = errors.New("no questions configured for category")

	ErrStepIncomplete   = errors.New("current step has incomplete fields")
	ErrAccountChoice    = errors.New("account choice required")
	ErrWizardSuspended  = errors.New("wizard awaiting sign-in")
	ErrNotAuthenticated = errors.New("sign-in required")
)

// ValidationDetailError carries structured field-level detail from a failed
// submission. Message flattens it field by field so the richest available
// detail reaches the poster.
type ValidationDetailError struct {
	Fields map[string][]string
}

func (e *ValidationDetailError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], "; ")))
	}
	return strings.Join(parts, ". ")
}
