package plugins

import (
	"errors"
	"fmt"

	"kcl-lang.io/kcl-go/pkg/plugin"
)

var (
	ErrMissingArgument = errors.New("missing argument")
	ErrArgumentType    = errors.New("unexpected argument type")
)

// SafeMethodArgs wraps [plugin.MethodArgs] with accessors that return errors
// instead of panicking.
type SafeMethodArgs struct {
	Args *plugin.MethodArgs
}

// Exists reports whether the keyword argument name was passed.
func (sma *SafeMethodArgs) Exists(name string) bool {
	_, ok := sma.Args.KwArgs[name]

	return ok
}

// StrArg returns positional argument i as a string.
func (sma *SafeMethodArgs) StrArg(i int) (string, error) {
	if i >= len(sma.Args.Args) {
		return "", fmt.Errorf("%w: %d", ErrMissingArgument, i)
	}

	s, ok := sma.Args.Args[i].(string)
	if !ok {
		return "", fmt.Errorf("%w: argument %d: want str, got %T", ErrArgumentType, i, sma.Args.Args[i])
	}

	return s, nil
}

// ListStrArg returns positional argument i as a list of strings.
func (sma *SafeMethodArgs) ListStrArg(i int) ([]string, error) {
	if i >= len(sma.Args.Args) {
		return nil, fmt.Errorf("%w: %d", ErrMissingArgument, i)
	}

	list, ok := sma.Args.Args[i].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: argument %d: want [str], got %T", ErrArgumentType, i, sma.Args.Args[i])
	}

	strs := make([]string, 0, len(list))
	for j, v := range list {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: argument %d[%d]: want str, got %T", ErrArgumentType, i, j, v)
		}

		strs = append(strs, s)
	}

	return strs, nil
}

// StrKwArg returns keyword argument name as a string, or defaultValue when it
// was not passed.
func (sma *SafeMethodArgs) StrKwArg(name, defaultValue string) (string, error) {
	if !sma.Exists(name) {
		return defaultValue, nil
	}

	s, ok := sma.Args.KwArgs[name].(string)
	if !ok {
		return "", fmt.Errorf("%w: %s: want str, got %T", ErrArgumentType, name, sma.Args.KwArgs[name])
	}

	return s, nil
}
