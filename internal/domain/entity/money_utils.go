package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
)

var maxAmount = decimal.NewFromInt(MaxBalance)

// AmountFromDecimal converts a decimal amount into whole currency units.
// Fractions are rejected, as are values beyond MaxBalance. The sign is kept
// so the ledger can report non-positive amounts itself.
func AmountFromDecimal(d decimal.Decimal) (int64, error) {
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: %s is not a whole amount", errs.ErrInvalidAmount, d.String())
	}
	if d.Abs().GreaterThan(maxAmount) {
		return 0, errs.ErrAmountOverflow
	}
	return d.IntPart(), nil
}

// ParseAmount reads a whole amount typed into a form field
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, amount)
	}
	return AmountFromDecimal(d)
}

// AddCapped sums two non-negative amounts, stopping at MaxBalance so
// aggregates stay JSON-safe and cannot wrap around
func AddCapped(total, amount int64) int64 {
	if amount > MaxBalance-total {
		return MaxBalance
	}
	return total + amount
}
