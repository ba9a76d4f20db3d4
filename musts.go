package fraction

import "fmt"

// MustNew is like [New] but panics if the result is the invalid sentinel.
// It simplifies safe initialization of global variables holding fractions.
func MustNew(num, den int64) Fraction {
	f := New(num, den)
	if !f.IsValid() {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", num, den, errInvalidFraction))
	}
	return f
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding fractions.
func MustParse(s string) Fraction {
	f := Parse(s)
	if !f.IsValid() {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, errInvalidFraction))
	}
	return f
}

// MustParseRatio is like [ParseRatio] but panics if the string cannot
// be parsed.
func MustParseRatio(s string) Fraction {
	f := ParseRatio(s)
	if !f.IsValid() {
		panic(fmt.Sprintf("MustParseRatio(%q) failed: %v", s, errInvalidFraction))
	}
	return f
}
