package fraction

import "testing"

func TestGcd(t *testing.T) {
	tests := []struct {
		x, y, want int64
	}{
		{0, 5, 5},
		{5, 0, 5},
		{1, 1, 1},
		{12, 18, 6},
		{18, 12, 6},
		{7, 13, 1},
		{100, 10, 10},
		{21, 14, 7},
		{1071, 462, 21},
	}
	for _, tt := range tests {
		if got := gcd(tt.x, tt.y); got != tt.want {
			t.Errorf("gcd(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestLcm(t *testing.T) {
	tests := []struct {
		x, y, want int64
	}{
		{1, 1, 1},
		{2, 3, 6},
		{4, 6, 12},
		{6, 4, 12},
		{5, 5, 5},
		{7, 13, 91},
		{10, 100, 100},
	}
	for _, tt := range tests {
		if got := lcm(tt.x, tt.y); got != tt.want {
			t.Errorf("lcm(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPow10(t *testing.T) {
	want := int64(1)
	for n := 0; n <= 18; n++ {
		if got := pow10(n); got != want {
			t.Errorf("pow10(%v) = %v, want %v", n, got, want)
		}
		want *= 10
	}
}

func TestAbs64(t *testing.T) {
	tests := []struct {
		x, want int64
	}{
		{0, 0},
		{1, 1},
		{-1, 1},
		{42, 42},
		{-42, 42},
	}
	for _, tt := range tests {
		if got := abs64(tt.x); got != tt.want {
			t.Errorf("abs64(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}
