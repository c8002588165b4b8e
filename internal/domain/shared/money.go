package shared

import (
	"fmt"
	"math"
)

// Money is an amount in cents. Integer cents keep order totals exact.
type Money int64

// Dollars converts a dollar amount to Money, rounding to the nearest cent
func Dollars(amount float64) Money {
	return Money(math.Round(amount * 100))
}

// Times multiplies a unit price by a quantity
func (m Money) Times(quantity int) Money {
	return m * Money(quantity)
}

// Float returns the amount in dollars
func (m Money) Float() float64 {
	return float64(m) / 100
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}
