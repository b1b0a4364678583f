package numeric_test

import (
	"EqCore/internal/numeric"
	"testing"
)

// ============================================================================
// Test: construction round trips
// ============================================================================

func TestFromInteger_RoundTrip(t *testing.T) {
	for _, n := range []uint64{0, 1, 2, 1000, 123_456_789, 1 << 40} {
		v := numeric.SaturatingFromInteger(n)
		got, ok := v.Uint64()
		if !ok {
			t.Fatalf("Uint64 failed for %d", n)
		}
		if got != n {
			t.Errorf("round trip %d: got %d", n, got)
		}
	}
}

func TestFromInner_RoundTrip(t *testing.T) {
	v := numeric.FromInner(1_500_000_000) // 1.5
	hi, lo := v.Inner()
	if hi != 0 || lo != 1_500_000_000 {
		t.Errorf("inner mismatch: hi=%d lo=%d", hi, lo)
	}
	if numeric.FromParts(hi, lo).Cmp(v) != 0 {
		t.Error("FromParts(Inner()) should equal original")
	}
}

func TestFromRational_NOverN_IsOne(t *testing.T) {
	for _, n := range []int64{1, 7, 999, 1 << 30, -5, -1} {
		v := numeric.SaturatingFromRational(n, n)
		if v.Cmp(numeric.One()) != 0 {
			t.Errorf("%d/%d: got %s, want 1", n, n, v)
		}
	}
}

func TestFromRational_ZeroDenominator_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on zero denominator")
		}
	}()
	numeric.SaturatingFromRational(1, 0)
}

func TestCheckedFromRational_ZeroDenominator(t *testing.T) {
	if _, ok := numeric.CheckedFromRational(1, 0); ok {
		t.Error("expected failure on zero denominator")
	}
}

func TestFromRational_MixedSigns_SaturateToZero(t *testing.T) {
	if v := numeric.SaturatingFromRational(1, -2); !v.IsZero() {
		t.Errorf("1/-2 should saturate to zero, got %s", v)
	}
	if v := numeric.SaturatingFromRational(-1, 2); !v.IsZero() {
		t.Errorf("-1/2 should saturate to zero, got %s", v)
	}
	// matching negative signs stay in range
	if v := numeric.SaturatingFromRational(-1, -2); v.IsZero() {
		t.Error("-1/-2 should be 0.5, not zero")
	}
}

func TestFromRational_RoundsDown(t *testing.T) {
	// 1/3 = 0.333333333... truncated at 9 decimals
	v := numeric.SaturatingFromRational(1, 3)
	_, lo := v.Inner()
	if lo != 333_333_333 {
		t.Errorf("1/3 inner: got %d, want 333333333", lo)
	}
	// 2/3 = 0.666666666 (not ...667; rounding is toward zero)
	v = numeric.SaturatingFromRational(2, 3)
	_, lo = v.Inner()
	if lo != 666_666_666 {
		t.Errorf("2/3 inner: got %d, want 666666666", lo)
	}
}

// ============================================================================
// Test: checked arithmetic
// ============================================================================

func TestCheckedAdd_Overflow(t *testing.T) {
	if _, ok := numeric.Max().CheckedAdd(numeric.FromInner(1)); ok {
		t.Error("Max + epsilon should overflow")
	}
	r, ok := numeric.SaturatingFromInteger(2).CheckedAdd(numeric.SaturatingFromInteger(3))
	if !ok || r.Cmp(numeric.SaturatingFromInteger(5)) != 0 {
		t.Errorf("2+3: got %s ok=%v", r, ok)
	}
}

func TestCheckedSub_Underflow(t *testing.T) {
	if _, ok := numeric.Zero().CheckedSub(numeric.FromInner(1)); ok {
		t.Error("0 - epsilon should underflow")
	}
}

func TestCheckedMul_Basic(t *testing.T) {
	half := numeric.SaturatingFromRational(1, 2)
	r, ok := half.CheckedMul(numeric.SaturatingFromInteger(10))
	if !ok || r.Cmp(numeric.SaturatingFromInteger(5)) != 0 {
		t.Errorf("0.5 * 10: got %s ok=%v", r, ok)
	}
}

func TestCheckedMul_Overflow(t *testing.T) {
	big := numeric.Max()
	if _, ok := big.CheckedMul(numeric.SaturatingFromInteger(2)); ok {
		t.Error("Max * 2 should overflow")
	}
}

func TestCheckedDiv_ByZero(t *testing.T) {
	for _, v := range []numeric.Value{numeric.Zero(), numeric.One(), numeric.Max()} {
		if _, ok := v.CheckedDiv(numeric.Zero()); ok {
			t.Errorf("%s / 0 should fail", v)
		}
	}
}

func TestCheckedDiv_RoundsDown(t *testing.T) {
	ten := numeric.SaturatingFromInteger(10)
	three := numeric.SaturatingFromInteger(3)
	r, ok := ten.CheckedDiv(three)
	if !ok {
		t.Fatal("10/3 failed")
	}
	_, lo := r.Inner()
	if lo != 3_333_333_333 {
		t.Errorf("10/3 inner: got %d, want 3333333333", lo)
	}
}

func TestCheckedMulInt(t *testing.T) {
	v := numeric.SaturatingFromRational(3, 2) // 1.5
	r, ok := v.CheckedMulInt(4)
	if !ok || r.Cmp(numeric.SaturatingFromInteger(6)) != 0 {
		t.Errorf("1.5 * 4: got %s ok=%v", r, ok)
	}
	if _, ok := numeric.Max().CheckedMulInt(2); ok {
		t.Error("Max * 2 should overflow")
	}
}

// ============================================================================
// Test: saturating arithmetic
// ============================================================================

func TestSaturatingAddSub_Bounds(t *testing.T) {
	if numeric.Max().SaturatingAdd(numeric.One()).Cmp(numeric.Max()) != 0 {
		t.Error("Max +sat 1 should stay Max")
	}
	if !numeric.Zero().SaturatingSub(numeric.One()).IsZero() {
		t.Error("0 -sat 1 should stay 0")
	}
}

func TestSaturatingPow(t *testing.T) {
	two := numeric.SaturatingFromInteger(2)
	if two.SaturatingPow(0).Cmp(numeric.One()) != 0 {
		t.Error("x^0 should be one")
	}
	if two.SaturatingPow(10).Cmp(numeric.SaturatingFromInteger(1024)) != 0 {
		t.Error("2^10 should be 1024")
	}
	if two.SaturatingPow(200).Cmp(numeric.Max()) != 0 {
		t.Error("2^200 should saturate to Max")
	}
	half := numeric.SaturatingFromRational(1, 2)
	if half.SaturatingPow(2).Cmp(numeric.SaturatingFromRational(1, 4)) != 0 {
		t.Error("0.5^2 should be 0.25")
	}
}

// ============================================================================
// Test: rounding decomposition
// ============================================================================

func TestTruncFracCeilRound(t *testing.T) {
	v := numeric.SaturatingFromRational(5, 2) // 2.5
	if v.Trunc().Cmp(numeric.SaturatingFromInteger(2)) != 0 {
		t.Errorf("trunc(2.5): got %s", v.Trunc())
	}
	if v.Frac().Cmp(numeric.SaturatingFromRational(1, 2)) != 0 {
		t.Errorf("frac(2.5): got %s", v.Frac())
	}
	if v.Ceil().Cmp(numeric.SaturatingFromInteger(3)) != 0 {
		t.Errorf("ceil(2.5): got %s", v.Ceil())
	}
	if v.Round().Cmp(numeric.SaturatingFromInteger(3)) != 0 {
		t.Errorf("round(2.5): got %s", v.Round())
	}
	low := numeric.SaturatingFromRational(9, 4) // 2.25
	if low.Round().Cmp(numeric.SaturatingFromInteger(2)) != 0 {
		t.Errorf("round(2.25): got %s", low.Round())
	}
	if low.Floor().Cmp(numeric.SaturatingFromInteger(2)) != 0 {
		t.Errorf("floor(2.25): got %s", low.Floor())
	}
}

func TestCeil_AtMax_NoOverflow(t *testing.T) {
	// Max has a nonzero fractional part; ceil must not overflow
	got := numeric.Max().Ceil()
	if got.Cmp(numeric.Max().Trunc()) != 0 {
		t.Errorf("ceil(Max) should fall back to trunc, got %s", got)
	}
}

// ============================================================================
// Test: I129 / ToBound
// ============================================================================

func TestSubToI129(t *testing.T) {
	a := numeric.SaturatingFromInteger(3)
	b := numeric.SaturatingFromInteger(5)

	d := numeric.SubToI129(b, a)
	if d.Negative || d.Mag.Cmp(numeric.SaturatingFromInteger(2)) != 0 {
		t.Errorf("5-3: got neg=%v mag=%s", d.Negative, d.Mag)
	}

	d = numeric.SubToI129(a, b)
	if !d.Negative || d.Mag.Cmp(numeric.SaturatingFromInteger(2)) != 0 {
		t.Errorf("3-5: got neg=%v mag=%s", d.Negative, d.Mag)
	}

	d = numeric.SubToI129(a, a)
	if d.Negative || !d.Mag.IsZero() {
		t.Errorf("3-3 should be non-negative zero")
	}
}

func TestFromI129_NegativeFails(t *testing.T) {
	neg := numeric.SubToI129(numeric.Zero(), numeric.One())
	if _, ok := numeric.FromI129(neg); ok {
		t.Error("negative I129 should not convert")
	}
}

func TestToBound(t *testing.T) {
	if !numeric.ToBound(true, false).IsZero() {
		t.Error("mixed signs should bound at zero")
	}
	if !numeric.ToBound(false, true).IsZero() {
		t.Error("mixed signs should bound at zero")
	}
	if numeric.ToBound(false, false).Cmp(numeric.Max()) != 0 {
		t.Error("matching signs should bound at Max")
	}
	if numeric.ToBound(true, true).Cmp(numeric.Max()) != 0 {
		t.Error("matching signs should bound at Max")
	}
}

// ============================================================================
// Test: Price
// ============================================================================

func TestPrice_ValueConversion(t *testing.T) {
	p := numeric.PriceFromInteger(42)
	v, ok := p.Value()
	if !ok || v.Cmp(numeric.SaturatingFromInteger(42)) != 0 {
		t.Errorf("price 42 to value: got %s ok=%v", v, ok)
	}

	if _, ok := numeric.PriceFromInteger(-1).Value(); ok {
		t.Error("negative price should not convert to Value")
	}
	if _, ok := numeric.Price(0).Value(); ok {
		t.Error("zero price should not convert to Value")
	}

	back, ok := numeric.PriceFromValue(v)
	if !ok || back != p {
		t.Errorf("value back to price: got %s ok=%v", back, ok)
	}
}

func TestPrice_MidMinMax(t *testing.T) {
	a := numeric.PriceFromInteger(10)
	b := numeric.PriceFromInteger(20)
	if numeric.MinPrice(a, b) != a || numeric.MaxPrice(a, b) != b {
		t.Error("min/max wrong")
	}
	if numeric.MidPrice(a, b) != numeric.PriceFromInteger(15) {
		t.Errorf("mid(10,20): got %s", numeric.MidPrice(a, b))
	}
}

func TestPriceFromRational(t *testing.T) {
	p := numeric.PriceFromRational(1, 2)
	if p.Inner() != 500_000_000 {
		t.Errorf("1/2: got inner %d", p.Inner())
	}
	p = numeric.PriceFromRational(-3, 2)
	if p.Inner() != -1_500_000_000 {
		t.Errorf("-3/2: got inner %d", p.Inner())
	}
}
