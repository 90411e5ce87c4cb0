package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput means the request could not be parsed. No stage after
	// validation has run.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDependency means a required upstream fetch failed.
	ErrDependency = errors.New("dependency failed")
	// ErrUpstream means content generation failed.
	ErrUpstream = errors.New("content generation failed")
)

func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func Dependency(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDependency, msg, err)
}

func Upstream(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUpstream, msg, err)
}
