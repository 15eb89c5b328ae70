// Package segment defines the vocabulary for a single component of a tokenized
// path.
//
// A [Segment] is one of four kinds: a separator, a literal name, a single dot
// or a double dot. Segments are plain comparable values, so two segments are
// equal exactly when their kinds match and, for literals, their text matches.
package segment
