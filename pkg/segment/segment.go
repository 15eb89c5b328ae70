package segment

import "fmt"

// Kind identifies which variant a [Segment] holds.
type Kind uint8

const (
	// Separator is one or more consecutive directory separators.
	Separator Kind = iota
	// Literal is a run of non-separator characters other than "." and "..".
	Literal
	// Dot is exactly ".".
	Dot
	// DotDot is exactly "..".
	DotDot
)

func (k Kind) String() string {
	switch k {
	case Separator:
		return "separator"
	case Literal:
		return "literal"
	case Dot:
		return "dot"
	case DotDot:
		return "dotdot"
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Segment is one classified component of a path. Text is only set for
// [Literal] segments.
type Segment struct {
	Text string
	Kind Kind
}

// Sep returns a [Separator] segment.
func Sep() Segment {
	return Segment{Kind: Separator}
}

// Lit returns a [Literal] segment holding text.
func Lit(text string) Segment {
	return Segment{Kind: Literal, Text: text}
}

// CurDir returns a [Dot] segment.
func CurDir() Segment {
	return Segment{Kind: Dot}
}

// ParentDir returns a [DotDot] segment.
func ParentDir() Segment {
	return Segment{Kind: DotDot}
}

// IsSeparator reports whether s is a [Separator].
func (s Segment) IsSeparator() bool {
	return s.Kind == Separator
}

// IsLiteral reports whether s is a [Literal].
func (s Segment) IsLiteral() bool {
	return s.Kind == Literal
}

// Render returns the text of s, using sep for separators.
func (s Segment) Render(sep string) string {
	switch s.Kind {
	case Separator:
		return sep
	case Literal:
		return s.Text
	case Dot:
		return "."
	case DotDot:
		return ".."
	}

	return ""
}

// String returns the canonical text of s, with "/" for separators.
func (s Segment) String() string {
	return s.Render("/")
}
