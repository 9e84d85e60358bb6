/*
Package srcset implements a scanner and parser for the srcset attribute of
responsive images. It extracts image candidates from raw attribute text; it
does not fetch, decode or select images.

# Basics

A srcset is a comma separated list of image candidates. Each candidate is a
URL optionally followed by whitespace and a descriptor: a width such as 100w
or a pixel density such as 2x.

	cat.jpeg 1x, cat-@2x.jpeg 2x
	small.png 480w, https://example.com/w=800,h=600/large.png 800w

Parsing occurs in two steps. First the Scanner breaks the text
into URL and DESCRIPTOR tokens, skipping the whitespace and commas between
them. The Parser then pairs each URL with the descriptor that follows it.
Parse runs both steps on a string.

# Leniency

The grammar is permissive rather than strict. A URL is a run of
non-whitespace characters up to its last non-comma character, so commas
inside URLs are kept and a trailing comma acts as a separator. Text that does
not form a descriptor is scanned as the next URL. A descriptor number that
cannot be parsed, such as "1.2.3", is read as zero. Parse never fails.

A comma that is directly followed by the next URL, with no whitespace in
between, is kept at the start of that URL.

# Ordering

Candidates are partially ordered. Two width candidates compare by width and
two density candidates compare by density. Any other pair is Incomparable.
Callers that sort candidates should group them by descriptor kind first.
*/
package srcset
