package segpath

import (
	"os"

	"github.com/macropower/pathlex/pkg/patherrors"
)

// Source provides the environment-derived paths.
type Source interface {
	Executable() (string, error)
	Getwd() (string, error)
}

// OSSource is a [Source] backed by the running process.
type OSSource struct{}

// Executable returns the path of the current executable.
func (OSSource) Executable() (string, error) {
	return os.Executable() //nolint:wrapcheck // Wrapped by the caller.
}

// Getwd returns the current working directory.
func (OSSource) Getwd() (string, error) {
	return os.Getwd() //nolint:wrapcheck // Wrapped by the caller.
}

// FromExecutable returns the path of the current executable as reported by
// src. Any failure, including a path that is not valid text, matches
// [patherrors.ErrEnv].
func FromExecutable(src Source) (*Path, error) {
	return fromSource(src.Executable)
}

// FromWorkingDirectory returns the working directory as reported by src. Any
// failure, including a path that is not valid text, matches
// [patherrors.ErrEnv].
func FromWorkingDirectory(src Source) (*Path, error) {
	return fromSource(src.Getwd)
}

// FromCurrentExecutable is [FromExecutable] with [OSSource].
func FromCurrentExecutable() (*Path, error) {
	return FromExecutable(OSSource{})
}

// FromCurrentWorkingDirectory is [FromWorkingDirectory] with [OSSource].
func FromCurrentWorkingDirectory() (*Path, error) {
	return FromWorkingDirectory(OSSource{})
}

func fromSource(get func() (string, error)) (*Path, error) {
	native, err := get()
	if err != nil {
		return nil, patherrors.Env(err)
	}

	p, err := FromNative(native)
	if err != nil {
		return nil, patherrors.Env(err)
	}

	return p, nil
}
