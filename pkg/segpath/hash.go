package segpath

import "github.com/cespare/xxhash/v2"

// Hash returns a hash of the segments of p. Paths that are [Path.Equal] have
// the same hash.
func (p *Path) Hash() uint64 {
	d := xxhash.New()

	var kind [1]byte
	for _, seg := range p.segments {
		kind[0] = byte(seg.Kind)
		_, _ = d.Write(kind[:])
		_, _ = d.WriteString(seg.Text)
		// Length suffix keeps [a b] distinct from a single literal "a\x01b".
		_, _ = d.Write([]byte{byte(len(seg.Text)), byte(len(seg.Text) >> 8)})
	}

	return d.Sum64()
}
