package kernel

import (
	"fmt"

	"parcelmatch/internal/pkg/errs"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created via NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money is a value object holding an amount in minor units (cents) together
// with a three-letter currency code. It is copied from the shipment into the
// escrow ledger at hold time and is immutable thereafter.
//
// Example:
//
//	price, err := kernel.NewMoney(4500, "EUR") // 45.00 EUR
//	if err != nil {
//	    // handle validation error
//	}
type Money struct {
	amount        int64
	currency      string
	isConstructed bool
}

// NewMoney creates a Money value. The amount is in minor units and must not be
// negative; the currency must be a three-letter code.
func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%d is negative", amount))
	}
	if len(currency) != 3 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"currency", fmt.Errorf("%q is not a three-letter currency code", currency))
	}

	return Money{
		amount:        amount,
		currency:      currency,
		isConstructed: true,
	}, nil
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the three-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsEqual compares two Money values by amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// String returns the amount and currency, e.g. "4500 EUR".
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}

// Validate returns ErrMoneyIsNotConstructed if the value was not created via NewMoney.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
