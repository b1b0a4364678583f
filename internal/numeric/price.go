package numeric

import (
	"fmt"
	"math/bits"
)

// Price is a signed 64-bit fixed-point decimal scaled by Accuracy. Oracle
// quotes and order prices are signed so the corridor math can subtract
// freely; a price crossing into the balance domain converts through Value
// and rejects non-positive inputs there.
type Price int64

func PriceFromInteger(n int64) Price {
	return Price(n * int64(Accuracy))
}

// PriceFromRational builds num/den rounding toward zero. Panics on a zero
// denominator.
func PriceFromRational(num, den int64) Price {
	if den == 0 {
		panic("numeric: PriceFromRational division by zero")
	}
	negative := (num < 0) != (den < 0)
	n := absInt64(num)
	d := absInt64(den)
	v, ok := div128By64(mul64To128(n, Accuracy), d)
	if !ok || v.hi != 0 || v.lo > uint64(maxPriceInner) {
		if negative {
			return Price(-maxPriceInner)
		}
		return Price(maxPriceInner)
	}
	if negative {
		return Price(-int64(v.lo))
	}
	return Price(int64(v.lo))
}

const maxPriceInner = int64(^uint64(0) >> 1)

func mul64To128(a, b uint64) Value {
	hi, lo := bits.Mul64(a, b)
	return Value{hi: hi, lo: lo}
}

func (p Price) Inner() int64     { return int64(p) }
func (p Price) IsZero() bool     { return p == 0 }
func (p Price) IsPositive() bool { return p > 0 }
func (p Price) IsNegative() bool { return p < 0 }

// Value converts to the unsigned domain; non-positive prices report false.
func (p Price) Value() (Value, bool) {
	if p <= 0 {
		return Zero(), false
	}
	return Value{lo: uint64(p)}, true
}

// PriceFromValue converts down from the unsigned domain; values past the
// signed range report false.
func PriceFromValue(v Value) (Price, bool) {
	if v.hi != 0 || v.lo > uint64(maxPriceInner) {
		return 0, false
	}
	return Price(int64(v.lo)), true
}

func (p Price) String() string {
	inner := int64(p)
	sign := ""
	if inner < 0 {
		sign = "-"
		inner = -inner
	}
	return fmt.Sprintf("%s%d.%09d", sign, inner/int64(Accuracy), inner%int64(Accuracy))
}

func MinPrice(a, b Price) Price {
	if a < b {
		return a
	}
	return b
}

func MaxPrice(a, b Price) Price {
	if a > b {
		return a
	}
	return b
}

// MidPrice averages two prices rounding toward zero.
func MidPrice(a, b Price) Price {
	return Price((int64(a) + int64(b)) / 2)
}
