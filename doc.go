/*
Package fraction implements immutable exact rational numbers.
It is designed as a drop-in replacement for floating-point values in
computations, such as matrix inversion or long multiply/divide chains,
where accumulated rounding error is unacceptable.

# Representation

[Fraction] is a ratio of two signed 64-bit integers kept in canonical
form:

  - The denominator is always positive; the sign lives in the numerator.
  - The numerator and denominator are coprime.
  - Zero is always represented as 0/1.

Every constructor and arithmetic operation funnels its result through a
single normalization step, so the invariants above hold for every valid
value the package ever hands out.
Canonical form makes numeric equality of valid fractions the same as Go
value equality, and it makes the zero value of the type the numeric
value 0.

# Invalid values

There are no NaNs, infinities, errors, or panics on the arithmetic
surface.
Instead, an undefined result, such as construction with a zero
denominator or division by a zero-valued fraction, is encoded in-band as
the invalid sentinel 0/0.
The sentinel can be tested with [Fraction.IsValid] and constructed
deliberately with [NewFromBool].

Invalidity propagates: any arithmetic operation with an invalid operand
produces an invalid result.
Comparisons involving an invalid operand return false, with the single
exception of inequality, which is the negation of [Fraction.Equal]; in
particular, two invalid fractions are not equal to each other.

# Supported primitive types

Interoperation with Go's built-in numeric types is constrained at
compile time.
[FromInt] promotes any integer type by direct embedding over a
denominator of 1, and [FromFloat] promotes any floating-point type by
rendering it to decimal text and parsing the text exactly; [ToInt] and
[ToFloat] convert back.
Using an unsupported type with these functions is a compile-time error,
not a run-time one.

Routing floats through their decimal text form means the fraction is
exactly equal to the number a human reads, not to its binary expansion:
FromFloat(0.2) is exactly 1/5.

# Range

The representable set is exactly {n/d : n, d signed 64-bit integers,
d != 0} after reduction, spanning positive magnitudes from roughly
1.0842e-19 up to 9,223,372,036,854,775,807.

# Overflow

Intermediate products in addition, multiplication, and least common
multiple computation can exceed 64 bits.
Such products wrap around with ordinary two's-complement semantics; no
error is reported.
This is an accepted precision-range limitation of the fixed-width
representation, which exists so that values stay flat, allocation-free,
and comparable with ==.
Callers needing arbitrary precision should use [math/big.Rat], to which
[Fraction.Rat] and [FromRat] provide bridges.

# Conversions

The package provides functions and methods for converting fractions:

  - from/to string:
    [Parse], [ParseRatio], [Fraction.String], [Fraction.Decimal],
    [Fraction.Format].
  - from/to primitive numeric types:
    [FromInt], [FromFloat], [ToInt], [ToFloat],
    [Fraction.Int64], [Fraction.Float64].
  - from/to math/big:
    [FromRat], [Fraction.Rat].

Fractions also implement text, JSON, and database/sql encoding
interfaces; the wire form is the diagnostic ratio string "3/2", which
round-trips exactly.

# Concurrency

A fraction is a plain value with no shared mutable state.
Distinct copies may be used from multiple goroutines without
synchronization; a single variable mutated in place needs the same
external synchronization as any other Go value.
*/
package fraction
