package balance_test

import (
	"EqCore/internal/assets"
	"EqCore/internal/balance"
	"EqCore/internal/numeric"
	"testing"

	"github.com/google/uuid"
)

func val(n uint64) numeric.Value { return numeric.SaturatingFromInteger(n) }

// ============================================================================
// Test: SignedBalance variant-carry arithmetic
// ============================================================================

func TestSignedBalance_AddCarry(t *testing.T) {
	cases := []struct {
		name  string
		start balance.SignedBalance
		add   uint64
		want  balance.SignedBalance
	}{
		{"pos plus", balance.Positive(val(2)), 4, balance.Positive(val(6))},
		{"neg fully consumed", balance.Debt(val(1)), 2, balance.Positive(val(1))},
		{"neg partially consumed", balance.Debt(val(5)), 2, balance.Debt(val(3))},
		{"neg exactly consumed", balance.Debt(val(3)), 3, balance.Positive(val(0))},
	}
	for _, tc := range cases {
		got, ok := tc.start.AddAmount(val(tc.add))
		if !ok {
			t.Fatalf("%s: overflow", tc.name)
		}
		if got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestSignedBalance_SubCarry(t *testing.T) {
	cases := []struct {
		name  string
		start balance.SignedBalance
		sub   uint64
		want  balance.SignedBalance
	}{
		{"pos covered", balance.Positive(val(5)), 3, balance.Positive(val(2))},
		{"pos flips negative", balance.Positive(val(2)), 6, balance.Debt(val(4))},
		{"pos to exactly zero", balance.Positive(val(2)), 2, balance.Positive(val(0))},
		{"neg deepens", balance.Debt(val(1)), 2, balance.Debt(val(3))},
	}
	for _, tc := range cases {
		got, ok := tc.start.SubAmount(val(tc.sub))
		if !ok {
			t.Fatalf("%s: overflow", tc.name)
		}
		if got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestSignedBalance_SignedAddSub(t *testing.T) {
	// Positive(2) + Negative(4) = Negative(2)
	got, ok := balance.Positive(val(2)).Add(balance.Debt(val(4)))
	if !ok || got != balance.Debt(val(2)) {
		t.Errorf("2 + (-4): got %s", got)
	}
	// Negative(1) - Negative(2) = Positive(1)
	got, ok = balance.Debt(val(1)).Sub(balance.Debt(val(2)))
	if !ok || got != balance.Positive(val(1)) {
		t.Errorf("-1 - (-2): got %s", got)
	}
}

func TestSignedBalance_DebtNormalizesZero(t *testing.T) {
	if balance.Debt(numeric.Zero()).IsNegative() {
		t.Error("zero debt should normalize to positive zero")
	}
}

func TestSignedBalance_Ordering(t *testing.T) {
	// debt compares below collateral; deeper debt is smaller
	if balance.Debt(val(1)).Cmp(balance.Positive(val(0))) >= 0 {
		t.Error("-1 should be below +0")
	}
	if balance.Debt(val(5)).Cmp(balance.Debt(val(2))) >= 0 {
		t.Error("-5 should be below -2")
	}
	if balance.Positive(val(5)).Cmp(balance.Positive(val(2))) <= 0 {
		t.Error("+5 should be above +2")
	}
}

// ============================================================================
// Test: Store
// ============================================================================

func TestStore_DepositWithdraw(t *testing.T) {
	s := balance.NewStore()
	who := uuid.New()

	if err := s.Deposit(who, assets.BTC, val(10)); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if got := s.Get(who, assets.BTC); got != balance.Positive(val(10)) {
		t.Errorf("after deposit: got %s", got)
	}

	if err := s.Withdraw(who, assets.BTC, val(4)); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if got := s.Get(who, assets.BTC); got != balance.Positive(val(6)) {
		t.Errorf("after withdraw: got %s", got)
	}

	// withdrawing past the balance flips into debt
	if err := s.Withdraw(who, assets.BTC, val(10)); err != nil {
		t.Fatalf("withdraw into debt: %v", err)
	}
	if got := s.Get(who, assets.BTC); got != balance.Debt(val(4)) {
		t.Errorf("after overdraw: got %s", got)
	}
}

func TestStore_Transfer_Conservation(t *testing.T) {
	s := balance.NewStore()
	a := uuid.New()
	b := uuid.New()

	if err := s.Deposit(a, assets.ETH, val(100)); err != nil {
		t.Fatal(err)
	}
	if err := s.Transfer(a, b, assets.ETH, val(30)); err != nil {
		t.Fatalf("transfer: %v", err)
	}

	if s.Get(a, assets.ETH) != balance.Positive(val(70)) {
		t.Errorf("a: got %s", s.Get(a, assets.ETH))
	}
	if s.Get(b, assets.ETH) != balance.Positive(val(30)) {
		t.Errorf("b: got %s", s.Get(b, assets.ETH))
	}

	// closed-system sum is unchanged by any transfer sequence
	totals := s.TotalByAsset()
	if totals[assets.ETH] != balance.Positive(val(100)) {
		t.Errorf("total: got %s, want 100", totals[assets.ETH])
	}
}

type rejectingChecker struct{ err error }

func (rc *rejectingChecker) CanChangeBalance(uuid.UUID, assets.Asset, balance.SignedBalance) error {
	return rc.err
}

func TestStore_CheckerRejectionAbortsAtomically(t *testing.T) {
	s := balance.NewStore()
	a := uuid.New()
	b := uuid.New()
	if err := s.Deposit(a, assets.DOT, val(50)); err != nil {
		t.Fatal(err)
	}

	rc := &rejectingChecker{}
	s.RegisterChecker(rc)
	rc.err = assets.ErrAssetNotFound // any sentinel

	if err := s.Transfer(a, b, assets.DOT, val(10)); err == nil {
		t.Fatal("transfer should have been rejected by checker")
	}

	// no partial application
	if s.Get(a, assets.DOT) != balance.Positive(val(50)) {
		t.Errorf("a changed: %s", s.Get(a, assets.DOT))
	}
	if !s.Get(b, assets.DOT).IsZero() {
		t.Errorf("b changed: %s", s.Get(b, assets.DOT))
	}
}

func TestStore_Exchange(t *testing.T) {
	s := balance.NewStore()
	a := uuid.New()
	b := uuid.New()
	if err := s.Deposit(a, assets.EQD, val(1000)); err != nil {
		t.Fatal(err)
	}
	if err := s.Deposit(b, assets.BTC, val(2)); err != nil {
		t.Fatal(err)
	}

	// a buys 1 BTC for 500 EQD
	if err := s.Exchange(a, b, assets.EQD, val(500), assets.BTC, val(1)); err != nil {
		t.Fatalf("exchange: %v", err)
	}

	if s.Get(a, assets.EQD) != balance.Positive(val(500)) || s.Get(a, assets.BTC) != balance.Positive(val(1)) {
		t.Errorf("a: eqd=%s btc=%s", s.Get(a, assets.EQD), s.Get(a, assets.BTC))
	}
	if s.Get(b, assets.EQD) != balance.Positive(val(500)) || s.Get(b, assets.BTC) != balance.Positive(val(1)) {
		t.Errorf("b: eqd=%s btc=%s", s.Get(b, assets.EQD), s.Get(b, assets.BTC))
	}
}

func TestStore_SystemAccountsSkipCheckers(t *testing.T) {
	s := balance.NewStore()
	treasury := s.SystemAccount("treasury")
	s.RegisterChecker(&rejectingChecker{err: assets.ErrAssetNotFound})

	if err := s.Deposit(treasury, assets.EQ, val(5)); err != nil {
		t.Fatalf("system account deposit should bypass checkers: %v", err)
	}
}

func TestStore_SystemAccountDerivationIsStable(t *testing.T) {
	s1 := balance.NewStore()
	s2 := balance.NewStore()
	if s1.SystemAccount("distribution") != s2.SystemAccount("distribution") {
		t.Error("system account ids must be deterministic")
	}
	if s1.SystemAccount("distribution") == s1.SystemAccount("treasury") {
		t.Error("distinct names must derive distinct ids")
	}
}

func TestStore_AccountBalancesSorted(t *testing.T) {
	s := balance.NewStore()
	who := uuid.New()
	s.Deposit(who, assets.DOT, val(1))
	s.Deposit(who, assets.BTC, val(2))
	s.Withdraw(who, assets.ETH, val(3))

	bals := s.AccountBalances(who)
	if len(bals) != 3 {
		t.Fatalf("got %d balances", len(bals))
	}
	for i := 1; i < len(bals); i++ {
		if bals[i-1].Asset >= bals[i].Asset {
			t.Error("balances must be in asset order")
		}
	}
}

func TestStore_SnapshotRestore(t *testing.T) {
	s := balance.NewStore()
	who := uuid.New()
	s.Deposit(who, assets.BTC, val(7))
	s.Withdraw(who, assets.EQD, val(3))

	snap := s.Snapshot()

	s2 := balance.NewStore()
	s2.Restore(snap)
	if s2.Get(who, assets.BTC) != balance.Positive(val(7)) {
		t.Error("restored BTC mismatch")
	}
	if s2.Get(who, assets.EQD) != balance.Debt(val(3)) {
		t.Error("restored EQD debt mismatch")
	}
}
