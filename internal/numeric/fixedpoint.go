package numeric

import (
	"fmt"
	"math/big"
	"math/bits"
	"sync"
)

// Accuracy is the fixed-point scale: 9 decimal places, one token = 10^9.
const Accuracy uint64 = 1_000_000_000

// Value is an immutable 128-bit unsigned fixed-point decimal scaled by
// Accuracy. All arithmetic is deterministic integer math; widened
// intermediates go through pooled big.Int, never through floats.
type Value struct {
	hi, lo uint64
}

var (
	maxValue = Value{hi: ^uint64(0), lo: ^uint64(0)}
	oneValue = Value{lo: Accuracy}
)

func Zero() Value { return Value{} }
func One() Value  { return oneValue }
func Max() Value  { return maxValue }

// FromParts builds a Value from the raw 128-bit inner representation.
func FromParts(hi, lo uint64) Value { return Value{hi: hi, lo: lo} }

// FromInner builds a Value from a raw scaled inner that fits in 64 bits.
func FromInner(inner uint64) Value { return Value{lo: inner} }

// Inner returns the raw 128-bit scaled representation.
func (v Value) Inner() (hi, lo uint64) { return v.hi, v.lo }

// SaturatingFromInteger converts an integer token count. The product
// n * Accuracy always fits in 128 bits, so this never actually saturates.
func SaturatingFromInteger(n uint64) Value {
	hi, lo := bits.Mul64(n, Accuracy)
	return Value{hi: hi, lo: lo}
}

// SaturatingFromRational builds num/den, saturating on overflow. The bound
// is selected by sign: mixed signs saturate to zero (the unsigned minimum),
// matching signs saturate to Max. Panics on a zero denominator; callers that
// need a fallible path use CheckedFromRational.
func SaturatingFromRational(num, den int64) Value {
	if den == 0 {
		panic("numeric: SaturatingFromRational division by zero")
	}
	negative := (num < 0) != (den < 0)
	if negative {
		return Zero()
	}
	v, ok := CheckedFromRational(num, den)
	if !ok {
		return Max()
	}
	return v
}

// CheckedFromRational builds num/den rounding toward zero. Returns false on
// a zero denominator or when the result is negative or does not fit.
func CheckedFromRational(num, den int64) (Value, bool) {
	if den == 0 {
		return Zero(), false
	}
	if (num < 0) != (den < 0) && num != 0 {
		return Zero(), false
	}
	n := absInt64(num)
	d := absInt64(den)
	// num * Accuracy / den on a 128-bit intermediate
	hi, lo := bits.Mul64(n, Accuracy)
	return div128By64(Value{hi: hi, lo: lo}, d)
}

func absInt64(n int64) uint64 {
	if n < 0 {
		return uint64(-n)
	}
	return uint64(n)
}

// --- add / sub ---

func (v Value) CheckedAdd(o Value) (Value, bool) {
	lo, carry := bits.Add64(v.lo, o.lo, 0)
	hi, carry := bits.Add64(v.hi, o.hi, carry)
	if carry != 0 {
		return Zero(), false
	}
	return Value{hi: hi, lo: lo}, true
}

func (v Value) CheckedSub(o Value) (Value, bool) {
	lo, borrow := bits.Sub64(v.lo, o.lo, 0)
	hi, borrow := bits.Sub64(v.hi, o.hi, borrow)
	if borrow != 0 {
		return Zero(), false
	}
	return Value{hi: hi, lo: lo}, true
}

func (v Value) SaturatingAdd(o Value) Value {
	r, ok := v.CheckedAdd(o)
	if !ok {
		return Max()
	}
	return r
}

func (v Value) SaturatingSub(o Value) Value {
	r, ok := v.CheckedSub(o)
	if !ok {
		return Zero()
	}
	return r
}

// --- mul / div ---

// CheckedMul computes v * o / Accuracy rounding toward zero.
func (v Value) CheckedMul(o Value) (Value, bool) {
	if v.IsZero() || o.IsZero() {
		return Zero(), true
	}
	return mulDivDown(v, o, Value{lo: Accuracy})
}

// CheckedDiv computes v * Accuracy / o rounding toward zero. Returns false
// when o is zero.
func (v Value) CheckedDiv(o Value) (Value, bool) {
	if o.IsZero() {
		return Zero(), false
	}
	return mulDivDown(v, Value{lo: Accuracy}, o)
}

func (v Value) SaturatingMul(o Value) Value {
	r, ok := v.CheckedMul(o)
	if !ok {
		return Max()
	}
	return r
}

// CheckedMulInt multiplies by a plain integer (no scale adjustment).
func (v Value) CheckedMulInt(n uint64) (Value, bool) {
	if n == 0 || v.IsZero() {
		return Zero(), true
	}
	carryLo, lo := bits.Mul64(v.lo, n)
	carryHi, hiPart := bits.Mul64(v.hi, n)
	hi, carry := bits.Add64(carryLo, hiPart, 0)
	if carryHi != 0 || carry != 0 {
		return Zero(), false
	}
	return Value{hi: hi, lo: lo}, true
}

// CheckedDivInt divides the inner by a plain integer, rounding toward zero.
func (v Value) CheckedDivInt(n uint64) (Value, bool) {
	if n == 0 {
		return Zero(), false
	}
	return div128By64(v, n)
}

// SaturatingPow raises v to exp by squaring. exp 0 yields One.
func (v Value) SaturatingPow(exp uint32) Value {
	result := One()
	base := v
	for exp > 0 {
		if exp&1 == 1 {
			r, ok := result.CheckedMul(base)
			if !ok {
				return Max()
			}
			result = r
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		b, ok := base.CheckedMul(base)
		if !ok {
			return Max()
		}
		base = b
	}
	return result
}

// --- rounding decomposition ---

// Trunc drops the fractional part.
func (v Value) Trunc() Value {
	_, rem := divModAccuracy(v)
	r, _ := v.CheckedSub(Value{lo: rem})
	return r
}

// Frac returns only the fractional part.
func (v Value) Frac() Value {
	_, rem := divModAccuracy(v)
	return Value{lo: rem}
}

// Floor equals Trunc in the unsigned domain.
func (v Value) Floor() Value { return v.Trunc() }

// Ceil rounds up to the next integer. At the representable maximum the
// increment would overflow, so it falls back to Trunc.
func (v Value) Ceil() Value {
	if v.Frac().IsZero() {
		return v
	}
	r, ok := v.Trunc().CheckedAdd(One())
	if !ok {
		return v.Trunc()
	}
	return r
}

// Round rounds half up on the fractional part.
func (v Value) Round() Value {
	_, rem := divModAccuracy(v)
	if rem >= Accuracy/2 {
		return v.Ceil()
	}
	return v.Trunc()
}

// --- ordering ---

func (v Value) Cmp(o Value) int {
	if v.hi != o.hi {
		if v.hi < o.hi {
			return -1
		}
		return 1
	}
	if v.lo != o.lo {
		if v.lo < o.lo {
			return -1
		}
		return 1
	}
	return 0
}

func (v Value) IsZero() bool { return v.hi == 0 && v.lo == 0 }

func (v Value) LT(o Value) bool { return v.Cmp(o) < 0 }
func (v Value) LE(o Value) bool { return v.Cmp(o) <= 0 }
func (v Value) GT(o Value) bool { return v.Cmp(o) > 0 }
func (v Value) GE(o Value) bool { return v.Cmp(o) >= 0 }

// Uint64 returns the integer token count, false if it exceeds 64 bits.
func (v Value) Uint64() (uint64, bool) {
	q, _ := divModAccuracy(v)
	if q.hi != 0 {
		return 0, false
	}
	return q.lo, true
}

func (v Value) String() string {
	q, rem := divModAccuracy(v)
	if q.hi == 0 {
		return fmt.Sprintf("%d.%09d", q.lo, rem)
	}
	b := getBig()
	defer putBig(b)
	return fmt.Sprintf("%s.%09d", toBig(b, q).String(), rem)
}

// --- I129: signed 129-bit intermediate ---

// I129 carries a signed intermediate out of subtraction so the saturation
// bound can be picked by sign before converting back to the unsigned domain.
type I129 struct {
	Mag      Value
	Negative bool
}

// SubToI129 computes a - b as a signed intermediate, never failing.
func SubToI129(a, b Value) I129 {
	if a.GE(b) {
		d, _ := a.CheckedSub(b)
		return I129{Mag: d}
	}
	d, _ := b.CheckedSub(a)
	return I129{Mag: d, Negative: !d.IsZero()}
}

// FromI129 converts back to the unsigned domain; negative magnitudes do not
// fit and report false.
func FromI129(n I129) (Value, bool) {
	if n.Negative && !n.Mag.IsZero() {
		return Zero(), false
	}
	return n.Mag, true
}

// ToBound picks the saturation bound for an (a, b) sign pair: mixed signs
// saturate to the minimum, matching signs to the maximum.
func ToBound(aNegative, bNegative bool) Value {
	if aNegative != bNegative {
		return Zero()
	}
	return Max()
}

// --- widened helpers ---

var bigPool = &sync.Pool{
	New: func() interface{} {
		return new(big.Int)
	},
}

func getBig() *big.Int {
	return bigPool.Get().(*big.Int)
}

func putBig(v *big.Int) {
	v.SetInt64(0)
	bigPool.Put(v)
}

func toBig(dst *big.Int, v Value) *big.Int {
	dst.SetUint64(v.hi)
	dst.Lsh(dst, 64)
	var lo big.Int
	lo.SetUint64(v.lo)
	return dst.Or(dst, &lo)
}

func fromBig(x *big.Int) (Value, bool) {
	if x.Sign() < 0 || x.BitLen() > 128 {
		return Zero(), false
	}
	hi := getBig()
	defer putBig(hi)
	hi.Rsh(x, 64)
	lo := getBig()
	defer putBig(lo)
	lo.And(x, mask64)
	return Value{hi: hi.Uint64(), lo: lo.Uint64()}, true
}

var mask64 = new(big.Int).SetUint64(^uint64(0))

// mulDivDown computes a * b / c on a 256-bit intermediate, rounding toward
// zero. This is the only widening path shared by CheckedMul and CheckedDiv.
func mulDivDown(a, b, c Value) (Value, bool) {
	if c.IsZero() {
		return Zero(), false
	}
	x := getBig()
	y := getBig()
	d := getBig()
	defer putBig(x)
	defer putBig(y)
	defer putBig(d)

	toBig(x, a)
	toBig(y, b)
	toBig(d, c)

	x.Mul(x, y)
	x.Quo(x, d)

	return fromBig(x)
}

// div128By64 divides the 128-bit inner by a 64-bit divisor, rounding toward
// zero.
func div128By64(v Value, d uint64) (Value, bool) {
	if d == 0 {
		return Zero(), false
	}
	qHi := v.hi / d
	rem := v.hi % d
	qLo, _ := bits.Div64(rem, v.lo, d)
	return Value{hi: qHi, lo: qLo}, true
}

// divModAccuracy splits a value into integer quotient and fractional
// remainder relative to the scale.
func divModAccuracy(v Value) (Value, uint64) {
	qHi := v.hi / Accuracy
	rem := v.hi % Accuracy
	qLo, r := bits.Div64(rem, v.lo, Accuracy)
	return Value{hi: qHi, lo: qLo}, r
}
