package segpath

import "github.com/macropower/pathlex/pkg/token"

// FileName returns the text of the final segment of p if it is a literal.
func (p *Path) FileName() (string, bool) {
	last, ok := p.Last()
	if !ok || !last.IsLiteral() {
		return "", false
	}

	return last.Text, true
}

// Extension returns the text after the last non-leading "." of the final
// literal segment of p.
//
// A path ending in a separator, ".", or ".." has no extension. A leading "."
// marks a hidden name rather than an extension, so ".foo" has none while
// ".bar.foo" has "foo". A trailing "." yields an empty extension.
func (p *Path) Extension() (string, bool) {
	name, ok := p.FileName()
	if !ok {
		return "", false
	}

	var (
		ext      string
		found    bool
		leading  = true
		skipNext = false
	)

	for _, tok := range token.TokenizeName(name) {
		switch tok.Kind {
		case token.NameSeparator:
			if leading {
				leading = false
				skipNext = true

				continue
			}

			ext, found = "", true

		case token.NamePiece:
			if skipNext {
				skipNext = false

				continue
			}

			leading = false

			if found {
				ext = tok.Text
			}
		}
	}

	return ext, found
}

// Stem returns the file name of p without its extension and the "." before
// it. A name without an extension is returned whole.
func (p *Path) Stem() (string, bool) {
	name, ok := p.FileName()
	if !ok {
		return "", false
	}

	ext, ok := p.Extension()
	if !ok {
		return name, true
	}

	return name[:len(name)-len(ext)-1], true
}
