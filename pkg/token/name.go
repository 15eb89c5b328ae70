package token

// NameKind identifies the variant of a [NameToken].
type NameKind uint8

const (
	// NameSeparator is a single ".".
	NameSeparator NameKind = iota
	// NamePiece is a maximal run of characters other than ".".
	NamePiece
)

// NameToken is one token of a file name, as produced by [TokenizeName].
type NameToken struct {
	Text string
	Kind NameKind
}

// TokenizeName splits a single file name at each ".". It never fails.
func TokenizeName(name string) []NameToken {
	var tokens []NameToken

	start := -1
	for i := range len(name) {
		if name[i] != '.' {
			if start < 0 {
				start = i
			}

			continue
		}

		if start >= 0 {
			tokens = append(tokens, NameToken{Kind: NamePiece, Text: name[start:i]})
			start = -1
		}

		tokens = append(tokens, NameToken{Kind: NameSeparator, Text: "."})
	}

	if start >= 0 {
		tokens = append(tokens, NameToken{Kind: NamePiece, Text: name[start:]})
	}

	return tokens
}
