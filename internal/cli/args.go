package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"

	"github.com/macropower/pathlex/pkg/segpath"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownOutput   = errors.New("unknown output format")
	ErrUnknownColor    = errors.New("unknown color mode")
)

// RootArgs holds the values of the persistent flags shared by all commands.
type RootArgs struct {
	logLevel  *string
	logFormat *string
	output    *string
	color     *string
	platform  *bool
	source    segpath.Source
}

// RootOption configures the root command.
type RootOption func(*RootArgs)

// WithSource sets the [segpath.Source] used by the cwd and exe commands.
func WithSource(src segpath.Source) RootOption {
	return func(a *RootArgs) {
		a.source = src
	}
}

func NewRootArgs() *RootArgs {
	return &RootArgs{
		logLevel:  new(string),
		logFormat: new(string),
		output:    new(string),
		color:     new(string),
		platform:  new(bool),
		source:    segpath.OSSource{},
	}
}

func (a *RootArgs) GetLogLevel() string {
	return *a.logLevel
}

func (a *RootArgs) GetLogFormat() string {
	return *a.logFormat
}

func (a *RootArgs) GetOutput() string {
	return strings.ToLower(*a.output)
}

func (a *RootArgs) GetColor() string {
	return strings.ToLower(*a.color)
}

func (a *RootArgs) GetPlatform() bool {
	return *a.platform
}

// Validate checks the flag values that are not validated by the log package.
func (a *RootArgs) Validate() error {
	var merr error

	switch a.GetOutput() {
	case OutputText, OutputJSON, OutputYAML:
	default:
		merr = multierror.Append(merr, fmt.Errorf("%w: %q", ErrUnknownOutput, *a.output))
	}

	switch a.GetColor() {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		merr = multierror.Append(merr, fmt.Errorf("%w: %q", ErrUnknownColor, *a.color))
	}

	return merr
}

// UseColor reports whether output written to w should be styled.
func (a *RootArgs) UseColor(w io.Writer) bool {
	switch a.GetColor() {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}
