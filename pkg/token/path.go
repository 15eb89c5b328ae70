package token

import (
	"github.com/macropower/pathlex/pkg/patherrors"
	"github.com/macropower/pathlex/pkg/segment"
)

// IsSeparator reports whether c is a path separator character.
func IsSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

// Tokenize converts raw into an ordered sequence of segments.
//
// The returned error is always a [*patherrors.ParseError]. Every byte is
// either a separator or not, so ordinary input never fails.
func Tokenize(raw string) ([]segment.Segment, error) {
	segments := make([]segment.Segment, 0, len(raw)/2+1)

	for i := 0; i < len(raw); {
		n := munch(raw[i:])
		if n == 0 {
			return nil, patherrors.NewParseError(raw[i:])
		}

		seg, err := classify(raw[i : i+n])
		if err != nil {
			return nil, err
		}

		segments = append(segments, seg)
		i += n
	}

	return segments, nil
}

// munch returns the length of the longest prefix of s that is either a run of
// separators or a run of non-separators.
func munch(s string) int {
	if s == "" {
		return 0
	}

	sep := IsSeparator(s[0])

	n := 1
	for n < len(s) && IsSeparator(s[n]) == sep {
		n++
	}

	return n
}

func classify(run string) (segment.Segment, error) {
	switch {
	case run == "":
		return segment.Segment{}, patherrors.NewParseError(run)
	case IsSeparator(run[0]):
		return segment.Sep(), nil
	case len(run) == 1 && run == ".":
		return segment.CurDir(), nil
	case len(run) == 2 && run == "..":
		return segment.ParentDir(), nil
	default:
		return segment.Lit(run), nil
	}
}
