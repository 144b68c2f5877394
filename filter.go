package content

import (
	"unicode"

	"github.com/jmgilman/go/content/errors"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// nonASCII also matches utf8.RuneError, so bytes that do not decode are
// dropped along with everything above 127.
var nonASCII = runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })

// ASCIIFilter is a Content decorator that only lets ASCII through.
//
// Read returns the wrapped text with every code point above 127 removed.
// Write removes them before delegating. Errors from the wrapped Content are
// returned as is. Filters may be stacked; extra layers change nothing.
type ASCIIFilter struct {
	content Content
}

// NewASCIIFilter wraps c, which must not be nil. The filter becomes the only
// caller of c.
func NewASCIIFilter(c Content) *ASCIIFilter {
	return &ASCIIFilter{content: c}
}

// Unwrap returns the wrapped Content.
func (f *ASCIIFilter) Unwrap() Content {
	return f.content
}

// Read returns the wrapped text restricted to ASCII.
func (f *ASCIIFilter) Read() (string, error) {
	text, err := f.content.Read()
	if err != nil {
		return "", err
	}
	return StripNonASCII(text)
}

// Write stores text restricted to ASCII.
func (f *ASCIIFilter) Write(text string) error {
	filtered, err := StripNonASCII(text)
	if err != nil {
		return err
	}
	return f.content.Write(filtered)
}

// StripNonASCII removes every code point above 127 from s and keeps the rest
// in order. Invalid UTF-8 bytes are removed as well, so the result is always
// pure ASCII. Applying it twice gives the same result as applying it once.
func StripNonASCII(s string) (string, error) {
	out, _, err := transform.String(runes.Remove(nonASCII), s)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "failed to filter text")
	}
	return out, nil
}
