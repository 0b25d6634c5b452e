package guard

import (
	"math"

	"github.com/jmgilman/go/guard/errors"
)

// AddNumbers returns a + b.
//
// Returns CodeOverflow if the sum is above math.MaxInt or below math.MinInt.
func (g *Guard) AddNumbers(a, b int) (int, error) {
	sum, err := addInt(a, b)
	if err != nil {
		return 0, g.fail("AddNumbers", err)
	}
	return sum, nil
}

// DivideNumbers returns dividend / divisor truncated toward zero.
//
// Returns CodeDivideByZero if divisor is 0 and CodeOverflow for
// math.MinInt / -1, whose quotient has no int representation.
func (g *Guard) DivideNumbers(dividend, divisor int) (int, error) {
	operands := map[string]interface{}{
		"dividend": dividend,
		"divisor":  divisor,
	}

	if divisor == 0 {
		err := errors.Newf(errors.CodeDivideByZero, "cannot divide %d by zero", dividend)
		return 0, g.fail("DivideNumbers", errors.WithContextMap(err, operands))
	}
	if dividend == math.MinInt && divisor == -1 {
		err := errors.Newf(errors.CodeOverflow, "%d / %d overflows int", dividend, divisor)
		return 0, g.fail("DivideNumbers", errors.WithContextMap(err, operands))
	}

	return dividend / divisor, nil
}

// addInt adds with overflow detection in both directions.
func addInt(a, b int) (int, errors.CodedError) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		err := errors.Newf(errors.CodeOverflow, "%d + %d overflows int", a, b)
		return 0, errors.WithContextMap(err, map[string]interface{}{
			"a": a,
			"b": b,
		})
	}
	return sum, nil
}
