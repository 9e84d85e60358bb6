package srcset_test

import (
	"errors"
	"math"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"

	"github.com/benbjohnson/srcset"
)

// Ensure that srcset text can be parsed into a list of candidates.
func TestParse(t *testing.T) {
	var tests = []struct {
		in  string
		out srcset.Candidates
	}{
		// 0. Density and width descriptors.
		{in: `cat-@2x.jpeg 2x, dog.jpeg 100w`, out: srcset.Candidates{
			{URL: "cat-@2x.jpeg", Descriptor: srcset.Density(2)},
			{URL: "dog.jpeg", Descriptor: srcset.Width(100)},
		}},

		// 1. Extra whitespace around candidates and descriptors.
		{in: `  foo-bar.png   2x , bar-baz.png  100w  `, out: srcset.Candidates{
			{URL: "foo-bar.png", Descriptor: srcset.Density(2)},
			{URL: "bar-baz.png", Descriptor: srcset.Width(100)},
		}},
		{in: "\n\t\tfoo-bar.png     2x ,\n\t\tbar-baz.png  100w\n\t", out: srcset.Candidates{
			{URL: "foo-bar.png", Descriptor: srcset.Density(2)},
			{URL: "bar-baz.png", Descriptor: srcset.Width(100)},
		}},

		// 3. Fractional descriptors.
		{in: `cat.jpeg 2.4x, dog.jpeg 1.5x`, out: srcset.Candidates{
			{URL: "cat.jpeg", Descriptor: srcset.Density(2.4)},
			{URL: "dog.jpeg", Descriptor: srcset.Density(1.5)},
		}},
		{in: `cat.jpeg .5x, dog.jpeg 1.w`, out: srcset.Candidates{
			{URL: "cat.jpeg", Descriptor: srcset.Density(0.5)},
			{URL: "dog.jpeg", Descriptor: srcset.Width(1)},
		}},

		// 5. Commas inside URLs.
		{in: "\n  https://foo.bar/w=100,h=200/dog.png  100w,\n  https://baz.bar/cat.png?meow=yes     1024w\n", out: srcset.Candidates{
			{URL: "https://foo.bar/w=100,h=200/dog.png", Descriptor: srcset.Width(100)},
			{URL: "https://baz.bar/cat.png?meow=yes", Descriptor: srcset.Width(1024)},
		}},

		// 6. Missing descriptors.
		{in: `/cat.jpg`, out: srcset.Candidates{
			{URL: "/cat.jpg"},
		}},
		{in: `/cat.jpg, /dog.png 3x , /lol `, out: srcset.Candidates{
			{URL: "/cat.jpg"},
			{URL: "/dog.png", Descriptor: srcset.Density(3)},
			{URL: "/lol"},
		}},

		// 8. Empty input.
		{in: ``, out: nil},
		{in: "  \n\t ", out: nil},
		{in: ` , ,,, `, out: nil},

		// 11. A comma without whitespace is kept at the start of the next URL.
		{in: `a.jpg 1x,b.jpg 2x`, out: srcset.Candidates{
			{URL: "a.jpg", Descriptor: srcset.Density(1)},
			{URL: ",b.jpg", Descriptor: srcset.Density(2)},
		}},
		{in: `a.jpg,b.jpg 2x`, out: srcset.Candidates{
			{URL: "a.jpg,b.jpg", Descriptor: srcset.Density(2)},
		}},

		// 13. Text that does not form a descriptor becomes a URL.
		{in: `a.png 2xl`, out: srcset.Candidates{
			{URL: "a.png", Descriptor: srcset.Density(2)},
			{URL: "l"},
		}},
		{in: `a.png 2X`, out: srcset.Candidates{
			{URL: "a.png"},
			{URL: "2X"},
		}},
		{in: `a.png -2x`, out: srcset.Candidates{
			{URL: "a.png"},
			{URL: "-2x"},
		}},
		{in: `a.png 2x 3x`, out: srcset.Candidates{
			{URL: "a.png", Descriptor: srcset.Density(2)},
			{URL: "3x"},
		}},
		{in: `a.png, 2x`, out: srcset.Candidates{
			{URL: "a.png"},
			{URL: "2x"},
		}},

		// 18. Malformed and out of range numbers.
		{in: `a.png 1.2.3x`, out: srcset.Candidates{
			{URL: "a.png", Descriptor: srcset.Density(0)},
		}},
		{in: `a.png .w`, out: srcset.Candidates{
			{URL: "a.png", Descriptor: srcset.Width(0)},
		}},
		{in: "a.png \u0663x", out: srcset.Candidates{
			{URL: "a.png", Descriptor: srcset.Density(0)},
		}},
		{in: "a.png " + strings.Repeat("9", 400) + "w", out: srcset.Candidates{
			{URL: "a.png", Descriptor: srcset.Width(math.Inf(1))},
		}},
	}

	for i, tt := range tests {
		// Skips over tests if test.iter is set.
		if *testiter > -1 && *testiter != i {
			continue
		}

		out := srcset.Parse(tt.in)
		if diff := cmp.Diff(tt.out, out); diff != "" {
			t.Errorf("%d. <%q> candidates mismatch (-want +got):\n%s", i, tt.in, diff)
		}
	}
}

// Ensure that candidates record where their URL starts.
func TestParse_Pos(t *testing.T) {
	out := srcset.Parse("a.png 1x,\n  b.png 2w")
	if len(out) != 2 {
		t.Fatalf("unexpected candidate count: %d", len(out))
	}
	if pos := out[0].Pos; pos != (srcset.Pos{}) {
		t.Errorf("0. pos: got %+v", pos)
	}
	if pos, want := out[1].Pos, (srcset.Pos{Offset: 12, Char: 2, Line: 1}); pos != want {
		t.Errorf("1. pos: got %+v, want %+v", pos, want)
	}
}

// Ensure that a parser stops at EOF and can be called again.
func TestParser_Parse(t *testing.T) {
	p := srcset.NewParser(srcset.NewScanner(`a.png 1x, b.png`))
	if out := p.Parse(); len(out) != 2 {
		t.Fatalf("unexpected candidate count: %d", len(out))
	}
	if out := p.Parse(); out != nil {
		t.Fatalf("expected no candidates after EOF, got %s", out)
	}
}

// Ensure that srcset text can be parsed from a reader.
func TestParseReader(t *testing.T) {
	out, err := srcset.ParseReader(strings.NewReader(`cat.jpeg 2x, dog.jpeg 100w`))
	if err != nil {
		t.Fatal(err)
	}
	want := srcset.Candidates{
		{URL: "cat.jpeg", Descriptor: srcset.Density(2)},
		{URL: "dog.jpeg", Descriptor: srcset.Width(100)},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}
}

// Ensure that read errors are returned from ParseReader.
func TestParseReader_ErrRead(t *testing.T) {
	errBoom := errors.New("boom")
	out, err := srcset.ParseReader(iotest.ErrReader(errBoom))
	if !errors.Is(err, errBoom) {
		t.Fatalf("unexpected error: %v", err)
	} else if err.Error() != "srcset: read: boom" {
		t.Fatalf("unexpected error message: %s", err)
	} else if out != nil {
		t.Fatalf("unexpected candidates: %s", out)
	}
}
