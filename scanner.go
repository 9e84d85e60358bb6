package srcset

import (
	"errors"
	"strconv"
	"sync"
	"unicode"
	"unicode/utf8"
)

// eof represents the end of the input.
const eof rune = -1

// Scanner breaks a srcset attribute value into URL and descriptor tokens.
//
// Whitespace and commas that separate candidates are consumed by the scanner
// and never returned. A DESCRIPTOR token is only returned directly after the
// URL token that it describes.
type Scanner struct {
	// Value is the literal representation of the last read token.
	Value string

	// Number and Unit are set after scanning a descriptor token.
	// The unit is either "w" or "x".
	Number float64
	Unit   string

	src string
	pos Pos

	// afterURL is set when the last token returned was a URL.
	afterURL bool
}

// NewScanner returns a new instance of Scanner.
func NewScanner(s string) *Scanner {
	return &Scanner{src: s}
}

// Scan returns the next token and the position where it starts.
// Once the input is exhausted, every call returns EOF.
func (s *Scanner) Scan() (tok Token, pos Pos) {
	s.Value, s.Number, s.Unit = "", 0, ""

	// A descriptor can only follow the URL that was just returned.
	if s.afterURL {
		s.afterURL = false
		if pos, ok := s.scanDescriptor(); ok {
			return DESCRIPTOR, pos
		}
	}

	for {
		pos = s.pos
		ch := s.read()
		if ch == eof {
			return EOF, pos
		} else if isWhitespace(ch) {
			continue
		}

		// A run made only of commas is a separator. Anything else is a URL.
		if s.scanURL(ch, pos) {
			s.afterURL = true
			return URL, pos
		}
	}
}

// scanURL consumes a run of non-whitespace code points.
//
// This assumes that ch, the first code point of the run, has been consumed.
// The URL ends on the last non-comma code point of the run and the scanner is
// left positioned right after it. Returns false if the run only has commas.
func (s *Scanner) scanURL(ch rune, start Pos) bool {
	end := start
	if !isComma(ch) {
		end = s.pos
	}
	for next := s.peek(); next != eof && !isWhitespace(next); next = s.peek() {
		s.read()
		if !isComma(next) {
			end = s.pos
		}
	}

	if end == start {
		return false
	}
	s.Value = s.src[start.Offset:end.Offset]
	s.pos = end
	return true
}

// scanDescriptor consumes whitespace, a number and a "w" or "x" suffix.
// If the input does not match, the scanner is rolled back and false returned.
func (s *Scanner) scanDescriptor() (pos Pos, ok bool) {
	start := s.pos

	// At least one whitespace code point must separate URL and descriptor.
	if !isWhitespace(s.read()) {
		s.pos = start
		return pos, false
	}
	s.scanWhitespace()

	pos = s.pos
	num := s.scanNumber()
	if num == "" {
		s.pos = start
		return pos, false
	}

	unit := s.read()
	if unit != 'w' && unit != 'x' {
		s.pos = start
		return pos, false
	}

	s.Value = num + string(unit)
	s.Number = parseNumber(num)
	s.Unit = string(unit)
	return pos, true
}

// scanWhitespace consumes all contiguous whitespace.
func (s *Scanner) scanWhitespace() {
	for ch := s.peek(); ch != eof && isWhitespace(ch); ch = s.peek() {
		s.read()
	}
}

// scanNumber consumes a contiguous series of digits and full stops.
func (s *Scanner) scanNumber() string {
	start := s.pos.Offset
	for ch := s.peek(); ch != eof && isNumeric(ch); ch = s.peek() {
		s.read()
	}
	return s.src[start:s.pos.Offset]
}

// parseNumber converts the text of a descriptor number to a float.
//
// The text may still be malformed ("1.2.3", ".") or use non-ASCII digits.
// Such values become zero. Out of range values keep the ±Inf or zero that
// strconv returns for them.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return v
}

// read consumes the next code point and advances the position.
// Invalid UTF-8 is read one byte at a time as utf8.RuneError.
func (s *Scanner) read() rune {
	if s.pos.Offset >= len(s.src) {
		return eof
	}
	ch, n := utf8.DecodeRuneInString(s.src[s.pos.Offset:])
	s.pos.Offset += n
	if ch == '\n' {
		s.pos.Line++
		s.pos.Char = 0
	} else {
		s.pos.Char++
	}
	return ch
}

// peek returns the next code point without consuming it.
func (s *Scanner) peek() rune {
	if s.pos.Offset >= len(s.src) {
		return eof
	}
	ch, _ := utf8.DecodeRuneInString(s.src[s.pos.Offset:])
	return ch
}

// Pos returns the current position of the scanner.
func (s *Scanner) Pos() Pos {
	return s.pos
}

// class is the lexical class of a code point.
type class uint8

const (
	otherClass class = iota
	whitespaceClass
	commaClass
	numericClass
)

// asciiClasses is a lookup table for the ASCII range. It is built on first
// use and never written afterwards.
var asciiClasses = sync.OnceValue(func() *[utf8.RuneSelf]class {
	var a [utf8.RuneSelf]class
	for ch := rune(0); ch < utf8.RuneSelf; ch++ {
		switch {
		case unicode.IsSpace(ch):
			a[ch] = whitespaceClass
		case ch == ',':
			a[ch] = commaClass
		case ch == '.' || unicode.IsDigit(ch):
			a[ch] = numericClass
		}
	}
	return &a
})

// classOf returns the lexical class of ch.
func classOf(ch rune) class {
	if ch >= 0 && ch < utf8.RuneSelf {
		return asciiClasses()[ch]
	}
	switch {
	case unicode.IsSpace(ch):
		return whitespaceClass
	case unicode.IsDigit(ch):
		return numericClass
	}
	return otherClass
}

// isWhitespace returns true if the rune has the Unicode White_Space property.
func isWhitespace(ch rune) bool { return classOf(ch) == whitespaceClass }

// isComma returns true if the rune is a comma.
func isComma(ch rune) bool { return classOf(ch) == commaClass }

// isNumeric returns true if the rune is a decimal digit or a full stop.
func isNumeric(ch rune) bool { return classOf(ch) == numericClass }
