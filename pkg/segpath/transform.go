package segpath

import "github.com/macropower/pathlex/pkg/segment"

// collapser resolves dot segments against the segments emitted so far.
//
// A dot is dropped and swallows the separator that follows it. A double dot
// drops the two most recently emitted segments, normally a name and the
// separator next to it, and also swallows the following separator. When fewer
// than two segments have been emitted the double dot drops what is there and
// is otherwise lost; it is never carried into the output.
type collapser struct {
	out           []segment.Segment
	skipSeparator bool
}

func (c *collapser) feed(seg segment.Segment) {
	switch seg.Kind {
	case segment.Separator:
		if c.skipSeparator {
			c.skipSeparator = false

			return
		}

		c.out = append(c.out, seg)

	case segment.Literal:
		c.out = append(c.out, seg)

	case segment.Dot:
		c.skipSeparator = true

	case segment.DotDot:
		c.out = c.out[:max(len(c.out)-2, 0)]
		c.skipSeparator = true
	}
}

func (c *collapser) endsWithSeparator() bool {
	return len(c.out) > 0 && c.out[len(c.out)-1].IsSeparator()
}

// Dedot returns a copy of p with "." segments removed and ".." segments
// collapsed against the preceding component. A ".." with nothing left to
// collapse against is dropped, so Dedot is not a substitute for resolving a
// path against a known base.
func (p *Path) Dedot() *Path {
	c := collapser{out: make([]segment.Segment, 0, len(p.segments))}
	for _, seg := range p.segments {
		c.feed(seg)
	}

	return &Path{segments: c.out}
}

// Append returns the dedotted p joined to the dedotted other with exactly one
// separator between them. Appending to an empty path returns the dedotted
// other.
func (p *Path) Append(other *Path) *Path {
	left := p.Dedot().segments
	right := other.Dedot().segments

	if len(left) == 0 {
		return &Path{segments: right}
	}

	if !left[len(left)-1].IsSeparator() {
		left = append(left, segment.Sep())
	}

	if len(right) > 0 && right[0].IsSeparator() {
		right = right[1:]
	}

	return &Path{segments: append(left, right...)}
}

// RelativeTo resolves p against base. Dot segments in p are collapsed while
// they are appended, so a leading ".." in p removes the last component of
// base. p itself is not dedotted first.
func (p *Path) RelativeTo(base *Path) *Path {
	out := make([]segment.Segment, 0, len(base.segments)+len(p.segments)+1)
	out = append(out, trimSeparator(base.segments)...)

	if len(out) > 0 && !out[len(out)-1].IsSeparator() {
		out = append(out, segment.Sep())
	}

	c := collapser{out: out}
	for i, seg := range p.segments {
		if i == 0 && seg.IsSeparator() && c.endsWithSeparator() {
			continue
		}

		c.feed(seg)
	}

	return &Path{segments: c.out}
}

// RelativeFrom returns p expressed relative to base, as "./" followed by
// whatever remains of p after removing the segments it shares with base. The
// comparison is purely structural and ".." segments in the remainder are kept
// as they are.
func (p *Path) RelativeFrom(base *Path) *Path {
	prefix := trimSeparator(base.segments)

	n := 0
	for n < len(prefix) && n < len(p.segments) && prefix[n] == p.segments[n] {
		n++
	}

	rest := p.segments[n:]
	if len(rest) > 0 && rest[0].IsSeparator() {
		rest = rest[1:]
	}

	out := make([]segment.Segment, 0, len(rest)+2)
	out = append(out, segment.CurDir(), segment.Sep())
	out = append(out, rest...)

	return &Path{segments: out}
}

// Push appends name as a new final component, adding a separator first when
// p is non-empty and does not already end with one.
func (p *Path) Push(name string) {
	if len(p.segments) > 0 && !p.endsWithSeparator() {
		p.segments = append(p.segments, segment.Sep())
	}

	p.segments = append(p.segments, segment.Lit(name))
}

// Pop removes the final component of p, along with a trailing separator if
// there is one. Popping an empty path does nothing.
func (p *Path) Pop() {
	if p.endsWithSeparator() {
		p.segments = p.segments[:len(p.segments)-1]
	}

	if len(p.segments) > 0 {
		p.segments = p.segments[:len(p.segments)-1]
	}
}

// trimSeparator returns segments without one trailing separator. The result
// shares storage with segments.
func trimSeparator(segments []segment.Segment) []segment.Segment {
	if len(segments) > 0 && segments[len(segments)-1].IsSeparator() {
		return segments[:len(segments)-1]
	}

	return segments
}

