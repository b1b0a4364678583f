package balance

import (
	"fmt"

	"EqCore/internal/numeric"
)

// SignedBalance is the stored representation of one (account, asset) pair:
// an always-non-negative magnitude with the sign carried by the variant
// flag. Positive magnitudes are collateral, negative magnitudes are debt.
// Arithmetic against a plain amount may flip the variant, e.g.
// Negative(5) + 8 = Positive(3).
type SignedBalance struct {
	Amount   numeric.Value
	Negative bool
}

// Positive wraps a magnitude as collateral.
func Positive(a numeric.Value) SignedBalance {
	return SignedBalance{Amount: a}
}

// Debt wraps a magnitude as debt. A zero magnitude normalizes to the
// canonical positive zero.
func Debt(a numeric.Value) SignedBalance {
	if a.IsZero() {
		return SignedBalance{}
	}
	return SignedBalance{Amount: a, Negative: true}
}

func (b SignedBalance) IsZero() bool     { return b.Amount.IsZero() }
func (b SignedBalance) IsPositive() bool { return !b.Negative }
func (b SignedBalance) IsNegative() bool { return b.Negative }

// Abs returns the magnitude.
func (b SignedBalance) Abs() numeric.Value { return b.Amount }

// Negate flips the variant.
func (b SignedBalance) Negate() SignedBalance {
	if b.Amount.IsZero() {
		return SignedBalance{}
	}
	return SignedBalance{Amount: b.Amount, Negative: !b.Negative}
}

// AddAmount adds a plain magnitude, consuming debt before accruing
// collateral. Returns false on overflow.
func (b SignedBalance) AddAmount(a numeric.Value) (SignedBalance, bool) {
	if b.Negative {
		minToRemove := a
		if b.Amount.LT(a) {
			minToRemove = b.Amount
		}
		newValue, _ := b.Amount.CheckedSub(minToRemove)
		newOther, _ := a.CheckedSub(minToRemove)
		if newValue.IsZero() {
			return Positive(newOther), true
		}
		return Debt(newValue), true
	}
	sum, ok := b.Amount.CheckedAdd(a)
	if !ok {
		return SignedBalance{}, false
	}
	return Positive(sum), true
}

// SubAmount subtracts a plain magnitude, consuming collateral before
// accruing debt. Returns false on overflow.
func (b SignedBalance) SubAmount(a numeric.Value) (SignedBalance, bool) {
	if b.Negative {
		sum, ok := b.Amount.CheckedAdd(a)
		if !ok {
			return SignedBalance{}, false
		}
		return Debt(sum), true
	}
	minToRemove := a
	if b.Amount.LT(a) {
		minToRemove = b.Amount
	}
	newValue, _ := b.Amount.CheckedSub(minToRemove)
	newOther, _ := a.CheckedSub(minToRemove)
	if newOther.IsZero() {
		return Positive(newValue), true
	}
	return Debt(newOther), true
}

// Add combines two signed balances.
func (b SignedBalance) Add(o SignedBalance) (SignedBalance, bool) {
	if o.Negative {
		return b.SubAmount(o.Amount)
	}
	return b.AddAmount(o.Amount)
}

// Sub subtracts a signed balance.
func (b SignedBalance) Sub(o SignedBalance) (SignedBalance, bool) {
	if o.Negative {
		return b.AddAmount(o.Amount)
	}
	return b.SubAmount(o.Amount)
}

// Cmp orders balances with debt below collateral; two debts compare
// inverted (the larger magnitude is the smaller balance).
func (b SignedBalance) Cmp(o SignedBalance) int {
	switch {
	case !b.Negative && !o.Negative:
		return b.Amount.Cmp(o.Amount)
	case !b.Negative && o.Negative:
		return 1
	case b.Negative && !o.Negative:
		return -1
	default:
		return o.Amount.Cmp(b.Amount)
	}
}

func (b SignedBalance) String() string {
	if b.Negative {
		return fmt.Sprintf("-%s", b.Amount)
	}
	return b.Amount.String()
}
