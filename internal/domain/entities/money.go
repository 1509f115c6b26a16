package entities

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidAmount = errors.New("invalid monetary amount")

// Cents is a monetary value in integer minor units (2 fraction digits).
//
// Keeping balances and prices in cents makes every comparison and the 25%
// deposit cap exact integer math; floats exist only at the API boundary.

type Cents int64

// CentsFromFloat converts an API-facing decimal amount, rounding to the cent.
func CentsFromFloat(v float64) Cents {
	return Cents(math.Round(v * 100))
}

// ParseAmount validates an API-facing amount and converts it to cents.
// Rejects NaN, infinities and non-positive values.
func ParseAmount(v float64) (Cents, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, ErrInvalidAmount
	}
	c := CentsFromFloat(v)
	if c <= 0 {
		return 0, ErrInvalidAmount
	}
	return c, nil
}

func (c Cents) Float() float64 {
	return float64(c) / 100
}

// String renders the value with 2 fraction digits, e.g. "1013.00".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
