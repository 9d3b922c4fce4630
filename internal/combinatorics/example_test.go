package combinatorics

import "fmt"

// ExampleBinomial shows the arbitrary-precision binomial coefficient.
func ExampleBinomial() {
	for _, c := range [][2]int64{{5, 2}, {10, 3}, {20, 10}, {100, 50}} {
		v, err := Binomial(c[0], c[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("C(%d, %d) = %s\n", c[0], c[1], v)
	}
	// Output:
	// C(5, 2) = 10
	// C(10, 3) = 120
	// C(20, 10) = 184756
	// C(100, 50) = 100891344545564193334812497256
}

// ExampleBinomialInt64 shows the fixed-width variant and its overflow error.
func ExampleBinomialInt64() {
	v, err := BinomialInt64(66, 33)
	fmt.Println(v, err)

	_, err = BinomialInt64(67, 33)
	fmt.Println(err)
	// Output:
	// 7219428434016265740 <nil>
	// integer overflow: C(67, 33) does not fit in int64
}

// ExampleReduceFraction shows the sign conventions of fraction reduction.
func ExampleReduceFraction() {
	for _, f := range [][2]int64{{4, 8}, {6, 3}, {17, 13}, {-9, 12}, {9, -12}, {0, -5}} {
		n, d, _ := ReduceFraction(f[0], f[1])
		fmt.Printf("%d/%d -> %d/%d\n", f[0], f[1], n, d)
	}

	_, _, err := ReduceFraction(1, 0)
	fmt.Println(err)
	// Output:
	// 4/8 -> 1/2
	// 6/3 -> 2/1
	// 17/13 -> 17/13
	// -9/12 -> -3/4
	// 9/-12 -> 3/-4
	// 0/-5 -> 0/-1
	// division by zero: 1/0
}
