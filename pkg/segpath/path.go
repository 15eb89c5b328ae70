package segpath

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/macropower/pathlex/pkg/patherrors"
	"github.com/macropower/pathlex/pkg/segment"
	"github.com/macropower/pathlex/pkg/token"
)

// Path is an ordered sequence of [segment.Segment] values. The zero value is
// an empty path.
type Path struct {
	segments []segment.Segment
}

// Parse tokenizes text into a [Path].
func Parse(text string) (*Path, error) {
	segments, err := token.Tokenize(text)
	if err != nil {
		return nil, err
	}

	return &Path{segments: segments}, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse(text string) *Path {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return p
}

// FromSegments returns a [Path] holding a copy of segments.
func FromSegments(segments ...segment.Segment) *Path {
	return &Path{segments: slices.Clone(segments)}
}

// FromNative converts a native path into a [Path]. It returns
// [patherrors.ErrConvert] if p is not valid UTF-8.
func FromNative(p string) (*Path, error) {
	if !utf8.ValidString(p) {
		return nil, patherrors.ErrConvert
	}

	return Parse(p)
}

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	return FromSegments(p.segments...)
}

// Segments returns a copy of the segments of p.
func (p *Path) Segments() []segment.Segment {
	return slices.Clone(p.segments)
}

// Len returns the number of segments in p.
func (p *Path) Len() int {
	return len(p.segments)
}

// IsEmpty reports whether p has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.segments) == 0
}

// Last returns the final segment of p, if any.
func (p *Path) Last() (segment.Segment, bool) {
	if len(p.segments) == 0 {
		return segment.Segment{}, false
	}

	return p.segments[len(p.segments)-1], true
}

// String renders p in canonical form, using "/" for every separator.
func (p *Path) String() string {
	return p.RenderWith('/')
}

// Platform renders p using the host separator.
func (p *Path) Platform() string {
	return p.RenderWith(filepath.Separator)
}

// Native returns p as a native path value for use with [os] and
// [path/filepath]. It is built from [Path.Platform] and always succeeds.
func (p *Path) Native() string {
	return p.Platform()
}

// RenderWith renders p using sep for every separator.
func (p *Path) RenderWith(sep byte) string {
	s := string(sep)

	var b strings.Builder
	for _, seg := range p.segments {
		b.WriteString(seg.Render(s))
	}

	return b.String()
}

// Equal reports whether p and other hold identical segments. No
// normalization is applied: "a/b" and "a/./b" are not equal.
func (p *Path) Equal(other *Path) bool {
	return slices.Equal(p.segments, other.segments)
}

// MarshalText implements [encoding.TextMarshaler] using the canonical form.
func (p *Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Path) UnmarshalText(text []byte) error {
	segments, err := token.Tokenize(string(text))
	if err != nil {
		return err
	}

	p.segments = segments

	return nil
}

func (p *Path) endsWithSeparator() bool {
	last, ok := p.Last()

	return ok && last.IsSeparator()
}
