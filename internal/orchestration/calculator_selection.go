package orchestration

import (
	"github.com/agbru/combicalc/internal/combinatorics"
)

// GetCalculatorsToRun determines which calculators to execute for algo.
// "all" selects every registered strategy in alphabetical order for
// reproducible output; an unknown name selects nothing.
//
// Parameters:
//   - algo: A strategy key or "all".
//   - factory: The calculator factory to retrieve implementations from.
//
// Returns:
//   - []combinatorics.Calculator: The calculators to execute.
func GetCalculatorsToRun(algo string, factory combinatorics.CalculatorFactory) []combinatorics.Calculator {
	if algo == "all" {
		keys := factory.List()
		calculators := make([]combinatorics.Calculator, 0, len(keys))
		for _, k := range keys {
			if calc, err := factory.Get(k); err == nil {
				calculators = append(calculators, calc)
			}
		}
		return calculators
	}
	if calc, err := factory.Get(algo); err == nil {
		return []combinatorics.Calculator{calc}
	}
	return nil
}
