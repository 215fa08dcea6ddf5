// Package factor evaluates the free-form arithmetic expressions used for
// flow correction factors, e.g. "1375/800".
package factor

import (
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
)

// FactorError reports an input that did not evaluate to a finite real
// number. It carries the raw input for the operator's diagnosis.
type FactorError struct {
	Input  string
	Reason string
}

func (e *FactorError) Error() string {
	return fmt.Sprintf("invalid factor expression %q: %s", e.Input, e.Reason)
}

// Evaluate parses and evaluates a correction-factor expression. The result
// must be a finite real number; anything else is a *FactorError.
func Evaluate(input string) (float64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, &FactorError{Input: input, Reason: "empty expression"}
	}

	out, err := expr.Eval(trimmed, nil)
	if err != nil {
		return 0, &FactorError{Input: input, Reason: err.Error()}
	}

	var v float64
	switch n := out.(type) {
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case float64:
		v = n
	default:
		return 0, &FactorError{Input: input, Reason: fmt.Sprintf("evaluates to %T, not a number", out)}
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &FactorError{Input: input, Reason: "does not evaluate to a finite number"}
	}
	return v, nil
}
