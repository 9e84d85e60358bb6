package srcset

// Token represents a lexical token.
type Token int

const (
	// Special tokens
	ILLEGAL Token = iota
	EOF

	// Srcset tokens
	URL        // /img/cat.png
	DESCRIPTOR // 2x, 100w
)

var tokens = [...]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	URL:        "URL",
	DESCRIPTOR: "DESCRIPTOR",
}

// String returns the string representation of the token.
func (tok Token) String() string {
	if tok >= 0 && tok < Token(len(tokens)) {
		return tokens[tok]
	}
	return ""
}

// Pos specifies the position of a token.
// Offset is a byte index into the input. Char and Line are both zero-based
// and Char counts code points from the start of the line.
type Pos struct {
	Offset int
	Char   int
	Line   int
}
