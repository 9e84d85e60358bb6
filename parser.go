package srcset

// Parser groups the tokens of a Scanner into candidates.
type Parser struct {
	scanner *Scanner

	buf  item // last read token
	bufn int  // number of buffered tokens
}

// item is a token read from the scanner along with its literal values.
type item struct {
	tok    Token
	pos    Pos
	value  string
	number float64
	unit   string
}

// NewParser returns a new instance of Parser.
func NewParser(s *Scanner) *Parser {
	return &Parser{scanner: s}
}

// Parse consumes the remaining tokens and returns a list of candidates.
// Candidates are returned in the order that they appear in the input.
func (p *Parser) Parse() Candidates {
	var a Candidates
	for {
		switch it := p.scan(); it.tok {
		case EOF:
			return a
		case URL:
			a = append(a, p.parseCandidate(it))
		}
	}
}

// parseCandidate builds a candidate from a URL and an optional descriptor.
func (p *Parser) parseCandidate(u item) Candidate {
	c := Candidate{URL: u.value, Pos: u.pos}

	it := p.scan()
	if it.tok != DESCRIPTOR {
		p.unscan()
		return c
	}

	switch it.unit {
	case "w":
		c.Descriptor = Width(it.number)
	case "x":
		c.Descriptor = Density(it.number)
	}
	return c
}

// scan reads the next token from the scanner.
func (p *Parser) scan() item {
	// If we have a token on our lookahead buffer then return it.
	if p.bufn > 0 {
		p.bufn--
		return p.buf
	}

	// Otherwise read from the scanner.
	tok, pos := p.scanner.Scan()
	p.buf = item{
		tok:    tok,
		pos:    pos,
		value:  p.scanner.Value,
		number: p.scanner.Number,
		unit:   p.scanner.Unit,
	}
	return p.buf
}

// unscan pushes the last read token back onto the buffer.
func (p *Parser) unscan() {
	p.bufn++
}
