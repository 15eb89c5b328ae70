// Package segpath provides [Path], a platform-agnostic path model built from
// tokenized segments.
//
// A [Path] never touches the filesystem. It is parsed from text, manipulated
// with a small set of structural operations and rendered back to text, either
// in canonical form with "/" separators or with the host separator.
//
//	p := segpath.MustParse("C:/foo/bar/../")
//	p.Dedot().String() // "C:/foo/"
//
// Only [Path.Push] and [Path.Pop] modify a path in place. Every other
// operation returns a new [Path] and leaves its receiver and arguments
// untouched. Paths hold no locks; clone a path before handing it to another
// goroutine that may mutate it.
package segpath
