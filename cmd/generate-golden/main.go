// Command generate-golden writes internal/combinatorics/testdata/golden.json
// from independent oracles: factorial quotients for binomial coefficients
// and Euclid's algorithm on big integers for fractions.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
)

type binomialCase struct {
	N     int64  `json:"n"`
	R     int64  `json:"r"`
	Value string `json:"value"`
}

type fractionCase struct {
	Num     string `json:"num"`
	Den     string `json:"den"`
	WantNum string `json:"want_num"`
	WantDen string `json:"want_den"`
}

type golden struct {
	Binomial  []binomialCase `json:"binomial"`
	Fractions []fractionCase `json:"fractions"`
}

var binomialInputs = [][2]int64{
	{0, 0}, {1, 0}, {1, 1}, {5, 2}, {10, 3}, {20, 10}, {30, 15}, {52, 5},
	{62, 31}, {66, 33}, {67, 33}, {100, 50}, {200, 3}, {500, 250},
	{1000, 1}, {1000, 500}, {1000, 999}, {4000, 17},
}

var fractionInputs = [][2]string{
	{"4", "8"}, {"6", "3"}, {"17", "13"}, {"-9", "12"}, {"9", "-12"},
	{"-9", "-12"}, {"0", "5"}, {"0", "-5"}, {"1", "1"}, {"100", "-250"},
	{"123456789", "987654321"},
	{"-4611686018427387904", "2305843009213693952"},
	{"9223372036854775807", "4611686018427387903"},
}

// factorial returns n! by repeated multiplication.
func factorial(n int64) *big.Int {
	result := big.NewInt(1)
	for i := int64(2); i <= n; i++ {
		result.Mul(result, big.NewInt(i))
	}
	return result
}

// binomialOracle returns n! / (r! (n-r)!).
func binomialOracle(n, r int64) *big.Int {
	den := new(big.Int).Mul(factorial(r), factorial(n-r))
	return new(big.Int).Quo(factorial(n), den)
}

// euclid returns gcd(|a|, |b|) using the remainder loop.
func euclid(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x.Rem(x, y)
		x, y = y, x
	}
	return x
}

func build() (golden, error) {
	var g golden
	for _, in := range binomialInputs {
		g.Binomial = append(g.Binomial, binomialCase{
			N: in[0], R: in[1], Value: binomialOracle(in[0], in[1]).String(),
		})
	}
	for _, in := range fractionInputs {
		num, ok1 := new(big.Int).SetString(in[0], 10)
		den, ok2 := new(big.Int).SetString(in[1], 10)
		if !ok1 || !ok2 || den.Sign() == 0 {
			return golden{}, fmt.Errorf("invalid fraction input %s/%s", in[0], in[1])
		}
		gcd := euclid(num, den)
		g.Fractions = append(g.Fractions, fractionCase{
			Num:     in[0],
			Den:     in[1],
			WantNum: new(big.Int).Quo(num, gcd).String(),
			WantDen: new(big.Int).Quo(den, gcd).String(),
		})
	}
	return g, nil
}

func main() {
	out := flag.String("o", "internal/combinatorics/testdata/golden.json", "output path")
	flag.Parse()

	g, err := build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, append(data, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d binomial and %d fraction cases to %s\n", len(g.Binomial), len(g.Fractions), *out)
}
