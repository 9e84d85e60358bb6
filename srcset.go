package srcset

import (
	"fmt"
	"io"
)

// Parse parses a srcset attribute value into a list of candidates.
//
// Parse accepts any input. Text that does not form a descriptor is read as
// part of a URL, and malformed descriptor numbers are read as zero. Empty or
// blank input returns no candidates.
func Parse(s string) Candidates {
	return NewParser(NewScanner(s)).Parse()
}

// ParseReader reads r until EOF and parses its contents with Parse.
// The only errors returned are read errors.
func ParseReader(r io.Reader) (Candidates, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("srcset: read: %w", err)
	}
	return Parse(string(b)), nil
}
