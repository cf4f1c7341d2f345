package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound            = errors.New("not found")
	ErrRateLimited         = errors.New("rate limited")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// GenerationError represents a failed roadmap generation request.
// StatusCode is the HTTP status returned by the generation endpoint
// (0 for transport-level failures).
type GenerationError struct {
	StatusCode int
	Message    string
}

func (e *GenerationError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("roadmap generation failed: %s", e.Message)
	}
	return fmt.Sprintf("roadmap generation failed (HTTP %d): %s", e.StatusCode, e.Message)
}

func (e *GenerationError) Is(target error) bool {
	switch e.StatusCode {
	case 429:
		return target == ErrRateLimited
	case 402:
		return target == ErrInsufficientBalance
	}
	return false
}

// FragmentError represents a malformed entry in an import document,
// detected at the JSON boundary before any merging happens. Title is empty
// when the entry could not be decoded far enough to name it.
type FragmentError struct {
	Title  string
	Reason string
}

func (e *FragmentError) Error() string {
	if e.Title == "" {
		return fmt.Sprintf("invalid fragment: %s", e.Reason)
	}
	return fmt.Sprintf("invalid fragment %q: %s", e.Title, e.Reason)
}
