package coupon

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountType    = errors.New("discount type must be percent or fixed")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

const maxCodeLength = 50

var hundred = decimal.NewFromInt(100)

// Code is matched exactly; only surrounding whitespace is dropped.
type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > maxCodeLength || strings.ContainsAny(code, " \t\n") {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

type Discount struct {
	kind  DiscountType
	value decimal.Decimal
}

func NewFixedDiscount(amount decimal.Decimal) (Discount, error) {
	if amount.IsNegative() {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{kind: DiscountFixed, value: amount}, nil
}

func NewPercentageDiscount(percent decimal.Decimal) (Discount, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{kind: DiscountPercent, value: percent}, nil
}

func NewDiscount(kind string, value decimal.Decimal) (Discount, error) {
	switch DiscountType(kind) {
	case DiscountPercent:
		return NewPercentageDiscount(value)
	case DiscountFixed:
		return NewFixedDiscount(value)
	default:
		return Discount{}, ErrInvalidDiscountType
	}
}

func (d Discount) Type() DiscountType     { return d.kind }
func (d Discount) Value() decimal.Decimal { return d.value }
func (d Discount) IsPercentage() bool     { return d.kind == DiscountPercent }
func (d Discount) IsFixed() bool          { return d.kind == DiscountFixed }

// AmountFor returns the discount for subtotal. Percent discounts round half up
// to a whole currency unit; both kinds are capped at the subtotal.
func (d Discount) AmountFor(subtotal decimal.Decimal) decimal.Decimal {
	if !subtotal.IsPositive() {
		return decimal.Zero
	}

	var amount decimal.Decimal
	if d.IsPercentage() {
		amount = subtotal.Mul(d.value).Div(hundred).Round(0)
	} else {
		amount = d.value
	}

	if amount.GreaterThan(subtotal) {
		return subtotal
	}
	return amount
}

// Apply returns the total after discount, never below zero.
func (d Discount) Apply(subtotal decimal.Decimal) decimal.Decimal {
	result := subtotal.Sub(d.AmountFor(subtotal))
	if result.IsNegative() {
		return decimal.Zero
	}
	return result
}
