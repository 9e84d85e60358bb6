package srcset

// DescriptorKind identifies the kind of descriptor attached to a candidate.
type DescriptorKind int

const (
	NoDescriptor      DescriptorKind = iota
	WidthDescriptor                  // 100w
	DensityDescriptor                // 2x
)

var descriptorKinds = [...]string{
	NoDescriptor:      "none",
	WidthDescriptor:   "width",
	DensityDescriptor: "density",
}

// String returns the name of the descriptor kind.
func (k DescriptorKind) String() string {
	if k >= 0 && k < DescriptorKind(len(descriptorKinds)) {
		return descriptorKinds[k]
	}
	return ""
}

// Suffix returns the unit that follows the descriptor's number in srcset text.
func (k DescriptorKind) Suffix() string {
	switch k {
	case WidthDescriptor:
		return "w"
	case DensityDescriptor:
		return "x"
	}
	return ""
}

// Descriptor represents the optional width or density hint of a candidate.
// The zero value is the absence of a descriptor.
type Descriptor struct {
	Kind  DescriptorKind
	Value float64
}

// Width returns a width descriptor.
func Width(v float64) Descriptor { return Descriptor{Kind: WidthDescriptor, Value: v} }

// Density returns a pixel density descriptor.
func Density(v float64) Descriptor { return Descriptor{Kind: DensityDescriptor, Value: v} }

// Candidate represents a single image reference in a srcset.
type Candidate struct {
	URL        string
	Descriptor Descriptor
	Pos        Pos
}

// Width returns the width descriptor value, if the candidate has one.
func (c Candidate) Width() (float64, bool) {
	if c.Descriptor.Kind != WidthDescriptor {
		return 0, false
	}
	return c.Descriptor.Value, true
}

// Density returns the pixel density descriptor value, if the candidate has one.
func (c Candidate) Density() (float64, bool) {
	if c.Descriptor.Kind != DensityDescriptor {
		return 0, false
	}
	return c.Descriptor.Value, true
}

// Equal returns true if both candidates have the same URL and descriptor.
// Positions are ignored.
func (c Candidate) Equal(other Candidate) bool {
	return c.URL == other.URL && c.Descriptor == other.Descriptor
}

// Compare orders c against other. See Compare.
func (c Candidate) Compare(other Candidate) Ordering {
	return Compare(c, other)
}

// String returns the candidate as it would appear in a srcset.
func (c Candidate) String() string {
	return Candidates{c}.String()
}

// Candidates represents an ordered list of candidates.
type Candidates []Candidate

// Ordering is the result of comparing two candidates.
//
// Candidates form a partial order so the zero value, Incomparable, is a
// legitimate result and not an error.
type Ordering int

const (
	Incomparable Ordering = iota
	Less
	Equal
	Greater
)

var orderings = [...]string{
	Incomparable: "incomparable",
	Less:         "less",
	Equal:        "equal",
	Greater:      "greater",
}

// String returns the name of the ordering.
func (o Ordering) String() string {
	if o >= 0 && o < Ordering(len(orderings)) {
		return orderings[o]
	}
	return ""
}

// Compare orders two candidates by their descriptors.
//
// Two width candidates compare by width and two density candidates compare by
// density. Every other pair, including candidates without a descriptor, is
// Incomparable. So is a pair whose values are NaN.
func Compare(a, b Candidate) Ordering {
	switch k := a.Descriptor.Kind; {
	case k != b.Descriptor.Kind:
		return Incomparable
	case k != WidthDescriptor && k != DensityDescriptor:
		return Incomparable
	}

	x, y := a.Descriptor.Value, b.Descriptor.Value
	switch {
	case x < y:
		return Less
	case x > y:
		return Greater
	case x == y:
		return Equal
	}
	return Incomparable
}
