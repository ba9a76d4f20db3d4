package fraction

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Fraction type represents an exact ratio of two signed 64-bit integers.
// The zero value is the numeric value 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A fraction is always kept in canonical form:
//
//   - The denominator is positive; the sign is carried by the numerator.
//   - The numerator and denominator share no common divisor.
//   - The value 0 is always represented as 0/1.
//
// Because the representation is canonical, two valid fractions are
// numerically equal if and only if their values are equal under ==.
//
// A fraction can also hold the invalid sentinel 0/0, produced by
// construction with a zero denominator, by division by a zero-valued
// fraction, or by parsing malformed input.
// The sentinel is ordinary data, not an error: it propagates through
// arithmetic and can be tested with [Fraction.IsValid].
type Fraction struct {
	m int64 // numerator, carries the sign
	n int64 // denominator minus one; -1 marks the invalid sentinel
}

var (
	// Zero is the canonical zero value 0/1.
	Zero = New(0, 1)
	// One is the multiplicative identity 1/1.
	One = New(1, 1)
)

var (
	errInvalidFraction = errors.New("invalid fraction")
	errScanType        = errors.New("unsupported scan type")
)

// New returns a fraction equal to num / den reduced to canonical form.
//
// The denominator of the result is always positive and shares no common
// divisor with the numerator.
// If den is 0, New returns the invalid sentinel.
func New(num, den int64) Fraction {
	switch {
	case den == 0:
		return Fraction{0, -1}
	case num == 0:
		return Fraction{}
	case den == 1:
		return Fraction{num, 0}
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs64(num), den)
	return Fraction{num / g, den/g - 1}
}

// NewFromBool returns the canonical zero if valid is true and the invalid
// sentinel otherwise.
// NewFromBool(false) is the designated escape hatch for constructing an
// invalid fraction on purpose, for example to report an undefined result
// from caller code.
func NewFromBool(valid bool) Fraction {
	if valid {
		return Fraction{}
	}
	return Fraction{0, -1}
}

// FromInt converts an integer of any supported width to an exact fraction
// with denominator 1.
func FromInt[T constraints.Integer](v T) Fraction {
	return New(int64(v), 1)
}

// FromFloat converts a floating-point value to an exact fraction.
//
// The value is first rendered to its shortest decimal representation and
// then parsed with [Parse], so the result is exactly equal to the decimal
// text of v rather than to its binary expansion.
// For example, FromFloat(0.2) is exactly 1/5, even though 0.2 has no
// finite binary representation.
// NaN and infinities convert to the invalid sentinel.
func FromFloat[T constraints.Float](v T) Fraction {
	switch any(v).(type) {
	case float32:
		return newFromFloat(float64(v), 32)
	}
	return newFromFloat(float64(v), 64)
}

func newFromFloat(v float64, bitSize int) Fraction {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Fraction{0, -1}
	}
	return Parse(strconv.FormatFloat(v, 'f', -1, bitSize))
}

// FromRat converts a big.Rat to a fraction.
// If r is nil or its numerator or denominator does not fit in an int64,
// FromRat returns the invalid sentinel.
func FromRat(r *big.Rat) Fraction {
	if r == nil || !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return Fraction{0, -1}
	}
	return New(r.Num().Int64(), r.Denom().Int64())
}

// Parse converts a decimal literal to an exact fraction.
// The input must consist of an optional leading minus sign followed by
// digits with at most one decimal separator, either '.' or ','.
// The first character after the sign must be a digit and the separator
// must not be the last character.
// Malformed input yields the invalid sentinel.
//
// The literal is decomposed into its integer and fractional parts and
// recombined by exact fraction addition, so Parse("1.5") equals 3/2 and
// Parse("-3.25") equals -13/4 with no floating-point rounding involved.
// Digits beyond the precision of an int64 wrap around silently.
func Parse(s string) Fraction {
	var (
		pos   int
		width int
		neg   bool
		whole int64
		frac  int64
		scale int
		sep   bool
		last  byte
	)

	width = len(s)

	// Sign
	if pos < width && s[pos] == '-' {
		neg = true
		pos++
	}

	// First character must be a digit
	if pos == width || s[pos] < '0' || s[pos] > '9' {
		return Fraction{0, -1}
	}

	// Digits and separator
	for ; pos < width; pos++ {
		last = s[pos]
		switch {
		case last >= '0' && last <= '9':
			if sep {
				frac = frac*10 + int64(last-'0')
				scale++
			} else {
				whole = whole*10 + int64(last-'0')
			}
		case last == '.' || last == ',':
			if sep {
				return Fraction{0, -1}
			}
			sep = true
		default:
			return Fraction{0, -1}
		}
	}

	// Separator must not be last
	if last == '.' || last == ',' {
		return Fraction{0, -1}
	}

	f := New(whole, 1).Add(New(frac, pow10(scale)))
	if neg {
		f = f.Neg()
	}
	return f
}

// ParseRatio converts a string in the form "m/n" to a fraction, where m
// and n are base-10 integers and only m may carry a sign.
// The result is reduced to canonical form; it is not necessary for m/n
// to be in lowest terms.
// Malformed input yields the invalid sentinel, as does a zero n.
func ParseRatio(s string) Fraction {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return Fraction{0, -1}
	}
	m, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return Fraction{0, -1}
	}
	n, err := strconv.ParseInt(den, 10, 64)
	if err != nil {
		return Fraction{0, -1}
	}
	return New(m, n)
}

// Num returns the numerator of f.
func (f Fraction) Num() int64 {
	return f.m
}

// Den returns the denominator of f.
// For the invalid sentinel, Den returns 0.
func (f Fraction) Den() int64 {
	return f.n + 1
}

// IsValid returns true if f holds a defined numeric value and false if it
// holds the invalid sentinel.
func (f Fraction) IsValid() bool {
	return f.n >= 0
}

// IsZero returns true if f == 0.
// The invalid sentinel is not zero.
func (f Fraction) IsZero() bool {
	return f.m == 0 && f.n >= 0
}

// IsInt returns true if f is an integer, that is, its denominator is 1.
func (f Fraction) IsInt() bool {
	return f.n == 0
}

// IsOne returns true if f == 1.
func (f Fraction) IsOne() bool {
	return f.m == 1 && f.n == 0
}

// IsPos returns true if f > 0.
func (f Fraction) IsPos() bool {
	return f.m > 0 && f.n >= 0
}

// IsNeg returns true if f < 0.
func (f Fraction) IsNeg() bool {
	return f.m < 0
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f == 0 or f is invalid
//	+1 if f > 0
func (f Fraction) Sign() int {
	switch {
	case f.m < 0:
		return -1
	case f.m > 0 && f.n >= 0:
		return 1
	}
	return 0
}

// Bool reports whether f is non-zero.
// The invalid sentinel converts to false.
func (f Fraction) Bool() bool {
	return f.m != 0
}

// Add returns the exact sum of f and e.
// If either operand is invalid, the result is invalid.
func (f Fraction) Add(e Fraction) Fraction {
	num := f.m*e.Den() + e.m*f.Den()
	den := f.Den() * e.Den()
	return New(num, den)
}

// Sub returns the exact difference of f and e.
// If either operand is invalid, the result is invalid.
func (f Fraction) Sub(e Fraction) Fraction {
	num := f.m*e.Den() - e.m*f.Den()
	den := f.Den() * e.Den()
	return New(num, den)
}

// Mul returns the exact product of f and e.
// If either operand is invalid, the result is invalid.
func (f Fraction) Mul(e Fraction) Fraction {
	return New(f.m*e.m, f.Den()*e.Den())
}

// Quo returns the exact quotient of f and e.
// If e is zero, or either operand is invalid, the result is invalid.
func (f Fraction) Quo(e Fraction) Fraction {
	return New(f.m*e.Den(), f.Den()*e.m)
}

// Inc returns f + 1.
func (f Fraction) Inc() Fraction {
	return New(f.m+f.Den(), f.Den())
}

// Dec returns f - 1.
func (f Fraction) Dec() Fraction {
	return New(f.m-f.Den(), f.Den())
}

// Neg returns f with the opposite sign.
func (f Fraction) Neg() Fraction {
	return Fraction{-f.m, f.n}
}

// Abs returns the absolute value of f.
func (f Fraction) Abs() Fraction {
	return Fraction{abs64(f.m), f.n}
}

// Inv returns the multiplicative inverse of f, with the sign moved back
// to the numerator.
// The inverse of zero, or of the invalid sentinel, is invalid.
func (f Fraction) Inv() Fraction {
	return New(f.Den(), f.m)
}

// Pow returns f raised to the integer power exp.
//
// Pow follows the usual mathematical rules: any fraction to the power 0
// is 1, and a negative exponent inverts the base.
// Positive exponents are computed by repeated multiplication; exponents
// are expected to be small.
// Non-integer exponents are not supported.
func (f Fraction) Pow(exp int) Fraction {
	if f.n < 0 {
		return f
	}
	if exp == 0 {
		return One
	}
	if exp < 0 {
		return f.Inv().Pow(-exp)
	}
	g := f
	for i := 1; i < exp; i++ {
		g = g.Mul(f)
	}
	return g
}

// Min returns the smaller of f and e.
// If either operand is invalid, the result is invalid.
func (f Fraction) Min(e Fraction) Fraction {
	switch {
	case f.n < 0 || e.n < 0:
		return Fraction{0, -1}
	case e.Less(f):
		return e
	}
	return f
}

// Max returns the larger of f and e.
// If either operand is invalid, the result is invalid.
func (f Fraction) Max(e Fraction) Fraction {
	switch {
	case f.n < 0 || e.n < 0:
		return Fraction{0, -1}
	case e.Greater(f):
		return e
	}
	return f
}

// Equal returns true if f and e are numerically equal.
// Since both values are in canonical form, this is a direct comparison
// of their components.
// A comparison involving the invalid sentinel is always false, so two
// invalid fractions are not equal to each other.
func (f Fraction) Equal(e Fraction) bool {
	return f.n >= 0 && e.n >= 0 && f == e
}

// Less returns true if f < e.
// The operands are brought to the least common denominator and their
// scaled numerators compared, avoiding floating-point drift.
// A comparison involving the invalid sentinel is always false.
func (f Fraction) Less(e Fraction) bool {
	if f.n < 0 || e.n < 0 {
		return false
	}
	m := lcm(f.Den(), e.Den())
	return f.m*(m/f.Den()) < e.m*(m/e.Den())
}

// Greater returns true if f > e.
// A comparison involving the invalid sentinel is always false.
func (f Fraction) Greater(e Fraction) bool {
	if f.n < 0 || e.n < 0 {
		return false
	}
	m := lcm(f.Den(), e.Den())
	return f.m*(m/f.Den()) > e.m*(m/e.Den())
}

// LessOrEqual returns true if f <= e.
// For valid operands it is the negation of [Fraction.Greater]; if either
// operand is invalid it returns false.
func (f Fraction) LessOrEqual(e Fraction) bool {
	return f.n >= 0 && e.n >= 0 && !f.Greater(e)
}

// GreaterOrEqual returns true if f >= e.
// For valid operands it is the negation of [Fraction.Less]; if either
// operand is invalid it returns false.
func (f Fraction) GreaterOrEqual(e Fraction) bool {
	return f.n >= 0 && e.n >= 0 && !f.Less(e)
}

// Int64 returns the integer value of f truncated towards zero.
// The second return value is false if f is invalid.
func (f Fraction) Int64() (int64, bool) {
	if f.n < 0 {
		return 0, false
	}
	return f.m / f.Den(), true
}

// Float64 returns the nearest floating-point approximation of f.
// The second return value is false if f is invalid.
func (f Fraction) Float64() (float64, bool) {
	if f.n < 0 {
		return 0, false
	}
	return float64(f.m) / float64(f.Den()), true
}

// ToInt converts f to an integer of any supported width, truncating
// towards zero first and then narrowing with Go conversion semantics.
// The second return value is false if f is invalid.
func ToInt[T constraints.Integer](f Fraction) (T, bool) {
	v, ok := f.Int64()
	if !ok {
		return 0, false
	}
	return T(v), true
}

// ToFloat converts f to a floating-point value of any supported width.
// The second return value is false if f is invalid.
func ToFloat[T constraints.Float](f Fraction) (T, bool) {
	v, ok := f.Float64()
	if !ok {
		return 0, false
	}
	return T(v), true
}

// Rat returns f as a big.Rat, or nil if f is invalid.
func (f Fraction) Rat() *big.Rat {
	if f.n < 0 {
		return nil
	}
	return big.NewRat(f.m, f.Den())
}

// String method implements the [fmt.Stringer] interface and returns the
// diagnostic representation of f in the form "numerator/denominator".
// The invalid sentinel renders as "0/0".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fraction) String() string {
	return strconv.FormatInt(f.m, 10) + "/" + strconv.FormatInt(f.Den(), 10)
}

// Decimal returns the decimal display string of f: the shortest decimal
// rendering of its floating-point approximation.
// The invalid sentinel renders as "NaN".
func (f Fraction) Decimal() string {
	v, ok := f.Float64()
	if !ok {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: 3/2
//	%q:     "3/2"
//	%f:     1.5
//
// Precision is supported for the %f verb; without it the shortest
// decimal rendering is used.
// Width and the '-' flag are supported for all verbs.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (f Fraction) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'S', 'v', 'V':
		s = f.String()
	case 'q', 'Q':
		s = strconv.Quote(f.String())
	case 'f', 'F':
		v, ok := f.Float64()
		switch prec, set := state.Precision(); {
		case !ok:
			s = "NaN"
		case set:
			s = strconv.FormatFloat(v, 'f', prec, 64)
		default:
			s = strconv.FormatFloat(v, 'f', -1, 64)
		}
	default:
		state.Write([]byte("%!"))
		state.Write([]byte(string(verb)))
		state.Write([]byte("(fraction.Fraction="))
		state.Write([]byte(f.String()))
		state.Write([]byte(")"))
		return
	}
	if w, ok := state.Width(); ok && w > len(s) {
		pad := strings.Repeat(" ", w-len(s))
		if state.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	state.Write([]byte(s))
}

// MarshalText implements the [encoding.TextMarshaler] interface using
// the diagnostic "numerator/denominator" form, which round-trips exactly.
// Marshaling the invalid sentinel is an error.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (f Fraction) MarshalText() ([]byte, error) {
	if f.n < 0 {
		return nil, errInvalidFraction
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// It accepts both the ratio form understood by [ParseRatio] and the
// decimal-literal form understood by [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (f *Fraction) UnmarshalText(text []byte) error {
	var g Fraction
	s := string(text)
	if strings.ContainsRune(s, '/') {
		g = ParseRatio(s)
	} else {
		g = Parse(s)
	}
	if !g.IsValid() {
		return fmt.Errorf("unmarshaling %q: %w", s, errInvalidFraction)
	}
	*f = g
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The fraction is encoded as a quoted ratio string, for example "3/2".
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (f Fraction) MarshalJSON() ([]byte, error) {
	if f.n < 0 {
		return nil, errInvalidFraction
	}
	return []byte(strconv.Quote(f.String())), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// It accepts a quoted ratio or decimal string as well as a bare JSON
// number without an exponent.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (f *Fraction) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 0 && s[0] == '"' {
		u, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("unmarshaling %s: %w", s, errInvalidFraction)
		}
		return f.UnmarshalText([]byte(u))
	}
	g := Parse(s)
	if !g.IsValid() {
		return fmt.Errorf("unmarshaling %s: %w", s, errInvalidFraction)
	}
	*f = g
	return nil
}

// Value implements the [driver.Valuer] interface, encoding the fraction
// as its ratio string.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (f Fraction) Value() (driver.Value, error) {
	if f.n < 0 {
		return nil, errInvalidFraction
	}
	return f.String(), nil
}

// Scan implements the [sql.Scanner] interface.
// Strings and byte slices are parsed like [Fraction.UnmarshalText];
// int64 and float64 values are promoted with [FromInt] and [FromFloat].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (f *Fraction) Scan(value any) error {
	switch v := value.(type) {
	case string:
		return f.UnmarshalText([]byte(v))
	case []byte:
		return f.UnmarshalText(v)
	case int64:
		*f = FromInt(v)
		return nil
	case float64:
		g := FromFloat(v)
		if !g.IsValid() {
			return fmt.Errorf("scanning %v: %w", v, errInvalidFraction)
		}
		*f = g
		return nil
	default:
		return fmt.Errorf("scanning %T: %w", value, errScanType)
	}
}
