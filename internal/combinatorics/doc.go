// Package combinatorics implements exact integer combinatorics: binomial
// coefficients with several interchangeable strategies, and reduction of
// fractions to lowest terms.
//
// All functions are pure and safe for concurrent use. Binomial results are
// arbitrary-precision *big.Int values; BinomialInt64 offers a fixed-width
// variant that reports ErrOverflow instead of wrapping.
//
// Strategies are exposed through the Calculator interface and registered in a
// CalculatorFactory, so that callers can run one of them or cross-check all
// of them against each other.
package combinatorics
