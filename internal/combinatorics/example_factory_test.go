//go:build !gmp

package combinatorics

import (
	"context"
	"fmt"
)

// ExampleDefaultFactory demonstrates using the factory to obtain
// pre-registered calculators by name.
func ExampleDefaultFactory() {
	factory := NewDefaultFactory()

	fmt.Println(factory.List())

	calc, err := factory.Get("pascal")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := calc.Calculate(context.Background(), nil, 0, 52, 5)
	if err != nil {
		fmt.Printf("Calculation error: %v\n", err)
		return
	}
	fmt.Println(calc.Name())
	fmt.Println(result)
	// Output:
	// [multiplicative pascal recursive stdlib]
	// Pascal Triangle (O(n*k), additions only)
	// 2598960
}
