// Package token implements the two lexical grammars used by the path model.
//
// [Tokenize] splits a whole path into [segment.Segment] values. Both "/" and
// "\" are separators, and runs of separators collapse into one segment. A
// non-separator run is a literal unless its entire text is exactly "." or
// "..", in which case it is a dot or a double dot. Dots inside a longer run,
// as in "..foo" or "foo.bar", never split it.
//
// [TokenizeName] is the narrower grammar applied to the final literal of a
// path when extracting an extension: every "." is its own separator token and
// everything between dots is a piece.
package token
