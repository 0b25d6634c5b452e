package guard

import (
	"github.com/shopspring/decimal"

	"github.com/jmgilman/go/guard/errors"
)

// maxDiscount is both the upper discount bound and the percentage divisor.
var maxDiscount = decimal.NewFromInt(100)

// CalculateDiscount returns the discount amount for totalPrice, where discount
// is a percentage: totalPrice × discount / 100.
//
// Returns CodeInvalidArgument if discount is below 0 or above 100. Both bounds
// are inclusive.
func (g *Guard) CalculateDiscount(totalPrice, discount decimal.Decimal) (decimal.Decimal, error) {
	if discount.IsNegative() || discount.GreaterThan(maxDiscount) {
		err := errors.Newf(errors.CodeInvalidArgument, "discount %s outside [0, 100]", discount)
		return decimal.Zero, g.fail("CalculateDiscount", errors.WithContext(err, "discount", discount.String()))
	}

	return totalPrice.Mul(discount).Div(maxDiscount), nil
}
