package fraction_test

import (
	"fmt"
	"slices"

	"github.com/aatomu/fraction"
)

func ExampleNew() {
	f := fraction.New(15, 63)
	fmt.Println(f, f.Neg(), fraction.New(0, 7))
	// Output: 5/21 -5/21 0/1
}

func ExampleFrac_AddAssign() {
	f := fraction.New(1, 2)
	f.AddAssign(fraction.New(1, 3)).MulAssignInt(3)
	fmt.Println(f)
	// Output: 5/2
}

func ExampleToReal() {
	fmt.Println(fraction.ToReal[float64](fraction.New(1, 2)))
	// Output: 0.5
}

func ExampleCompare() {
	fs := []fraction.Frac[int]{
		fraction.New(1, 2),
		fraction.New(-3, 4),
		fraction.New(1, 3),
	}
	slices.SortFunc(fs, fraction.Compare[int])
	fmt.Println(fs)
	// Output: [-3/4 1/3 1/2]
}
