package fraction_test

import (
	"encoding/json"
	"fmt"

	"github.com/govalues/fraction"
)

func Example() {
	// One tenth of a unit, added ten times, is exactly one unit.
	sum := fraction.Zero
	tenth := fraction.FromFloat(0.1)
	for i := 0; i < 10; i++ {
		sum = sum.Add(tenth)
	}
	fmt.Println(sum.Equal(fraction.One))
	// Output: true
}

func ExampleNew() {
	fmt.Println(fraction.New(2, 4))
	fmt.Println(fraction.New(-2, 4))
	fmt.Println(fraction.New(2, -4))
	fmt.Println(fraction.New(5, 0))
	// Output:
	// 1/2
	// -1/2
	// -1/2
	// 0/0
}

func ExampleParse() {
	fmt.Println(fraction.Parse("1.5"))
	fmt.Println(fraction.Parse("-3.25"))
	fmt.Println(fraction.Parse("1,5"))
	fmt.Println(fraction.Parse("abc"))
	// Output:
	// 3/2
	// -13/4
	// 3/2
	// 0/0
}

func ExampleFromFloat() {
	fmt.Println(fraction.FromFloat(0.2))
	fmt.Println(fraction.FromFloat(float32(0.2)))
	// Output:
	// 1/5
	// 1/5
}

func ExampleFraction_Add() {
	f := fraction.New(1, 2)
	e := fraction.New(1, 3)
	fmt.Println(f.Add(e))
	// Output: 5/6
}

func ExampleFraction_Quo() {
	f := fraction.New(1, 2)
	fmt.Println(f.Quo(fraction.New(2, 3)))
	fmt.Println(f.Quo(fraction.Zero))
	// Output:
	// 3/4
	// 0/0
}

func ExampleFraction_Inv() {
	fmt.Println(fraction.New(-2, 3).Inv())
	// Output: -3/2
}

func ExampleFraction_Pow() {
	f := fraction.New(2, 3)
	fmt.Println(f.Pow(3))
	fmt.Println(f.Pow(-2))
	fmt.Println(f.Pow(0))
	// Output:
	// 8/27
	// 9/4
	// 1/1
}

func ExampleFraction_Less() {
	fmt.Println(fraction.New(1, 3).Less(fraction.New(1, 2)))
	fmt.Println(fraction.New(1, 2).Less(fraction.New(2, 4)))
	// Output:
	// true
	// false
}

func ExampleFraction_IsValid() {
	fmt.Println(fraction.New(1, 2).IsValid())
	fmt.Println(fraction.New(1, 0).IsValid())
	// Output:
	// true
	// false
}

func ExampleFraction_Decimal() {
	fmt.Println(fraction.New(3, 2).Decimal())
	fmt.Println(fraction.New(7, 1).Decimal())
	// Output:
	// 1.5
	// 7
}

func ExampleFraction_Format() {
	fmt.Printf("%s | %q | %.2f\n", fraction.New(3, 2), fraction.New(3, 2), fraction.New(3, 2))
	// Output: 3/2 | "3/2" | 1.50
}

func ExampleFraction_MarshalJSON() {
	b, err := json.Marshal(fraction.New(3, 2))
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output: "3/2"
}

func ExampleFraction_UnmarshalJSON() {
	var f fraction.Fraction
	if err := json.Unmarshal([]byte(`"-1.5"`), &f); err != nil {
		panic(err)
	}
	fmt.Println(f)
	// Output: -3/2
}
