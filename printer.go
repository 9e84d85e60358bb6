package srcset

import (
	"bytes"
	"io"
	"strconv"
)

// Printer writes candidates in srcset syntax.
//
// Each candidate is written as its URL followed by a space and its
// descriptor, if it has one. Candidates are separated by ", ".
type Printer struct{}

// Print writes a list of candidates to w.
func (p *Printer) Print(w io.Writer, a Candidates) error {
	for i, c := range a {
		if i > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		if err := p.printCandidate(w, c); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printCandidate(w io.Writer, c Candidate) error {
	if _, err := io.WriteString(w, c.URL); err != nil {
		return err
	}
	if c.Descriptor.Kind == NoDescriptor {
		return nil
	}

	_, err := io.WriteString(w, " "+formatNumber(c.Descriptor.Value)+c.Descriptor.Kind.Suffix())
	return err
}

// formatNumber returns the shortest decimal representation of v that
// parses back to the same value. Exponents are never used.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// String returns the candidates in srcset syntax.
func (a Candidates) String() string {
	var buf bytes.Buffer
	var p Printer
	_ = p.Print(&buf, a)
	return buf.String()
}
