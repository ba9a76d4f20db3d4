package fraction

// pow10tab is a cache of powers of 10, where pow10tab[x] = 10^x.
var pow10tab = [...]int64{
	1,                         // 10^0
	10,                        // 10^1
	100,                       // 10^2
	1_000,                     // 10^3
	10_000,                    // 10^4
	100_000,                   // 10^5
	1_000_000,                 // 10^6
	10_000_000,                // 10^7
	100_000_000,               // 10^8
	1_000_000_000,             // 10^9
	10_000_000_000,            // 10^10
	100_000_000_000,           // 10^11
	1_000_000_000_000,         // 10^12
	10_000_000_000_000,        // 10^13
	100_000_000_000_000,       // 10^14
	1_000_000_000_000_000,     // 10^15
	10_000_000_000_000_000,    // 10^16
	100_000_000_000_000_000,   // 10^17
	1_000_000_000_000_000_000, // 10^18
}

// pow10 calculates 10^n.
// Beyond 10^18 the result wraps around, like any other
// overflowing int64 product in this package.
func pow10(n int) int64 {
	if n < len(pow10tab) {
		return pow10tab[n]
	}
	z := pow10tab[len(pow10tab)-1]
	for i := len(pow10tab) - 1; i < n; i++ {
		z *= 10
	}
	return z
}

// abs64 calculates |x|.
// abs64(math.MinInt64) wraps around.
func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// gcd calculates the greatest common divisor of x and y using the
// iterative Euclidean algorithm.
// Both arguments must be non-negative; the result is undefined otherwise.
func gcd(x, y int64) int64 {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// lcm calculates the least common multiple of x and y.
// Both arguments must be positive; the result is undefined otherwise.
// The product may wrap around for large arguments.
func lcm(x, y int64) int64 {
	return abs64(x) / gcd(x, y) * abs64(y)
}
