package patherrors

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates a position in a path could not be tokenized.
	ErrParse = errors.New("parse error")

	// ErrConvert indicates a native path is not representable as text.
	ErrConvert = errors.New("could not convert native path to text")

	// ErrEnv indicates the environment could not provide the requested path.
	ErrEnv = errors.New("could not use the current environment to get the required path")
)

// ParseError reports the slice of input at which tokenization failed.
type ParseError struct {
	Slice string
}

// NewParseError returns a [*ParseError] for slice.
func NewParseError(slice string) *ParseError {
	return &ParseError{Slice: slice}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %q", ErrParse, e.Slice)
}

// Is reports whether target is [ErrParse].
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Env wraps err as an [ErrEnv] error. It returns nil if err is nil.
func Env(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrEnv, err)
}
