package combinatorics

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

func TestGCD(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b int64
		want uint64
	}{
		{0, 0, 0},
		{0, 7, 7},
		{7, 0, 7},
		{12, 18, 6},
		{-12, 18, 6},
		{12, -18, 6},
		{-12, -18, 6},
		{17, 13, 1},
		{math.MinInt64, 0, 1 << 63},
		{math.MinInt64, 6, 2},
		{math.MaxInt64, math.MaxInt64, math.MaxInt64},
	}
	for _, tt := range tests {
		if got := GCD(tt.a, tt.b); got != tt.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestReduceFraction(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name             string
		num, den         int64
		wantNum, wantDen int64
	}{
		{"halves", 4, 8, 1, 2},
		{"integer result", 6, 3, 2, 1},
		{"already coprime", 17, 13, 17, 13},
		{"negative numerator keeps sign", -9, 12, -3, 4},
		{"negative denominator keeps sign", 9, -12, 3, -4},
		{"both negative keep signs", -9, -12, -3, -4},
		{"zero numerator", 0, 5, 0, 1},
		{"zero numerator negative denominator", 0, -5, 0, -1},
		{"unit", 1, 1, 1, 1},
		{"min int64 over 2", math.MinInt64, 2, math.MinInt64 / 2, 1},
		{"min int64 over itself", math.MinInt64, math.MinInt64, -1, -1},
		{"zero over min int64", 0, math.MinInt64, 0, -1},
		{"min int64 over odd", math.MinInt64, 3, math.MinInt64, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gotNum, gotDen, err := ReduceFraction(tt.num, tt.den)
			if err != nil {
				t.Fatalf("ReduceFraction(%d, %d) returned error: %v", tt.num, tt.den, err)
			}
			if gotNum != tt.wantNum || gotDen != tt.wantDen {
				t.Errorf("ReduceFraction(%d, %d) = (%d, %d), want (%d, %d)",
					tt.num, tt.den, gotNum, gotDen, tt.wantNum, tt.wantDen)
			}
		})
	}
}

func TestReduceFraction_DivisionByZero(t *testing.T) {
	t.Parallel()
	for _, num := range []int64{0, 1, -7, math.MaxInt64} {
		_, _, err := ReduceFraction(num, 0)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("ReduceFraction(%d, 0) error = %v, want ErrDivisionByZero", num, err)
		}
	}
}

func TestReduceFraction_Idempotent(t *testing.T) {
	t.Parallel()
	inputs := [][2]int64{{4, 8}, {-9, 12}, {100, -250}, {0, 7}, {123456789, 987654321}}
	for _, in := range inputs {
		n1, d1, err := ReduceFraction(in[0], in[1])
		if err != nil {
			t.Fatalf("ReduceFraction(%d, %d): %v", in[0], in[1], err)
		}
		n2, d2, err := ReduceFraction(n1, d1)
		if err != nil {
			t.Fatalf("ReduceFraction(%d, %d): %v", n1, d1, err)
		}
		if n1 != n2 || d1 != d2 {
			t.Errorf("reducing (%d, %d) twice gave (%d, %d) then (%d, %d)", in[0], in[1], n1, d1, n2, d2)
		}
	}
}

func TestReduceFractionBig(t *testing.T) {
	t.Parallel()
	huge, _ := new(big.Int).SetString("340282366920938463463374607431768211456", 10) // 2^128
	tests := []struct {
		name             string
		num, den         *big.Int
		wantNum, wantDen string
	}{
		{"halves", big.NewInt(4), big.NewInt(8), "1", "2"},
		{"negative numerator", big.NewInt(-9), big.NewInt(12), "-3", "4"},
		{"negative denominator", big.NewInt(9), big.NewInt(-12), "3", "-4"},
		{"zero numerator", big.NewInt(0), big.NewInt(-5), "0", "-1"},
		{"beyond int64", huge, big.NewInt(-1 << 40), "309485009821345068724781056", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			numBefore, denBefore := tt.num.String(), tt.den.String()
			gotNum, gotDen, err := ReduceFractionBig(tt.num, tt.den)
			if err != nil {
				t.Fatalf("ReduceFractionBig(%s, %s) returned error: %v", tt.num, tt.den, err)
			}
			if gotNum.String() != tt.wantNum || gotDen.String() != tt.wantDen {
				t.Errorf("ReduceFractionBig(%s, %s) = (%s, %s), want (%s, %s)",
					tt.num, tt.den, gotNum, gotDen, tt.wantNum, tt.wantDen)
			}
			if tt.num.String() != numBefore || tt.den.String() != denBefore {
				t.Error("ReduceFractionBig modified its inputs")
			}
		})
	}
}

func TestReduceFractionBig_Errors(t *testing.T) {
	t.Parallel()
	if _, _, err := ReduceFractionBig(big.NewInt(3), big.NewInt(0)); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("zero denominator: error = %v, want ErrDivisionByZero", err)
	}
	if _, _, err := ReduceFractionBig(nil, big.NewInt(1)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil numerator: error = %v, want ErrInvalidArgument", err)
	}
}
