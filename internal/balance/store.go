package balance

import (
	"fmt"
	"sort"

	"EqCore/internal/assets"
	"EqCore/internal/numeric"

	"github.com/google/uuid"
)

// AccountKey identifies one stored balance.
type AccountKey struct {
	Account uuid.UUID
	Asset   assets.Asset
}

// MarshalText encodes the key as "uuid/assetID" so balance maps can be used
// as JSON object keys in snapshots.
func (k AccountKey) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%s/%d", k.Account, uint16(k.Asset))), nil
}

func (k *AccountKey) UnmarshalText(text []byte) error {
	var account string
	var asset uint16
	if _, err := fmt.Sscanf(string(text), "%36s/%d", &account, &asset); err != nil {
		return fmt.Errorf("bad account key %q: %w", text, err)
	}
	id, err := uuid.Parse(account)
	if err != nil {
		return fmt.Errorf("bad account key %q: %w", text, err)
	}
	k.Account = id
	k.Asset = assets.Asset(asset)
	return nil
}

// AssetBalance is a per-asset view row.
type AssetBalance struct {
	Asset   assets.Asset
	Balance SignedBalance
}

// GroupUpdater receives every balance mutation so group totals stay in sync
// within the same atomic step. An error here aborts the whole mutation.
// Declared as an interface to avoid a direct import cycle with the
// aggregates package.
type GroupUpdater interface {
	OnBalanceChanged(who uuid.UUID, asset assets.Asset, old, new SignedBalance) error
}

// ChangeChecker gates a proposed balance change for an account. Engines
// (bailsman temp-pool gate, margin gate) register themselves here.
type ChangeChecker interface {
	CanChangeBalance(who uuid.UUID, asset assets.Asset, change SignedBalance) error
}

// ExchangeSide attributes an exchange failure to one of the two parties.
type ExchangeSide int

const (
	ExchangeSideNone ExchangeSide = iota
	ExchangeSideFirst
	ExchangeSideSecond
)

// ExchangeError reports which leg of a two-party exchange failed.
type ExchangeError struct {
	Side ExchangeSide
	Err  error
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("exchange failed (side %d): %v", e.Side, e.Err)
}

func (e *ExchangeError) Unwrap() error { return e.Err }

var ErrBalanceOverflow = fmt.Errorf("balance arithmetic overflow")

// Store owns every signed balance. It is only touched from the
// single-threaded deterministic core, so it carries no locking.
type Store struct {
	balances map[AccountKey]SignedBalance
	updater  GroupUpdater
	checkers []ChangeChecker
	system   map[uuid.UUID]string
}

func NewStore() *Store {
	return &Store{
		balances: make(map[AccountKey]SignedBalance),
		system:   make(map[uuid.UUID]string),
	}
}

// SetGroupUpdater wires the aggregates store in; done once at startup.
func (s *Store) SetGroupUpdater(u GroupUpdater) { s.updater = u }

// RegisterChecker appends a balance-change gate. Checkers run in
// registration order on every checked mutation.
func (s *Store) RegisterChecker(c ChangeChecker) {
	s.checkers = append(s.checkers, c)
}

var systemNamespace = uuid.MustParse("7e8b2e30-3f1c-4a6e-9d8f-0ec000000001")

// SystemAccount derives the stable UUID for a named module account and
// marks it so the change gates can exempt it.
func (s *Store) SystemAccount(name string) uuid.UUID {
	id := uuid.NewSHA1(systemNamespace, []byte("eqcore:"+name))
	s.system[id] = name
	return id
}

// IsSystemAccount reports whether an account is a module technical account.
func (s *Store) IsSystemAccount(who uuid.UUID) bool {
	_, ok := s.system[who]
	return ok
}

// Get returns the stored balance (canonical zero when absent).
func (s *Store) Get(who uuid.UUID, asset assets.Asset) SignedBalance {
	return s.balances[AccountKey{Account: who, Asset: asset}]
}

// AccountBalances returns all non-zero balances of an account in asset
// order. Deterministic iteration matters: this feeds margin and bailsman
// math.
func (s *Store) AccountBalances(who uuid.UUID) []AssetBalance {
	var out []AssetBalance
	for key, bal := range s.balances {
		if key.Account == who && !bal.IsZero() {
			out = append(out, AssetBalance{Asset: key.Asset, Balance: bal})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Asset < out[j].Asset })
	return out
}

// applyChange is the single mutation point. It computes old and new, runs
// the change gates (unless skipped), writes the balance, and pushes the
// delta into the group totals: all or nothing.
func (s *Store) applyChange(who uuid.UUID, asset assets.Asset, change SignedBalance, checked bool) error {
	key := AccountKey{Account: who, Asset: asset}
	old := s.balances[key]

	next, ok := old.Add(change)
	if !ok {
		return ErrBalanceOverflow
	}

	if checked && !s.IsSystemAccount(who) {
		for _, c := range s.checkers {
			if err := c.CanChangeBalance(who, asset, change); err != nil {
				return err
			}
		}
	}

	if s.updater != nil {
		if err := s.updater.OnBalanceChanged(who, asset, old, next); err != nil {
			return err
		}
	}

	if next.IsZero() {
		delete(s.balances, key)
	} else {
		s.balances[key] = next
	}
	return nil
}

// Deposit credits an account.
func (s *Store) Deposit(who uuid.UUID, asset assets.Asset, amount numeric.Value) error {
	return s.applyChange(who, asset, Positive(amount), true)
}

// Withdraw debits an account. The balance may flip into debt; the change
// gates decide whether that is allowed.
func (s *Store) Withdraw(who uuid.UUID, asset assets.Asset, amount numeric.Value) error {
	return s.applyChange(who, asset, Debt(amount), true)
}

// ApplyUnchecked applies a signed change bypassing the gates. Used by the
// engines for internal moves that were validated at a higher level
// (distribution application, fee legs).
func (s *Store) ApplyUnchecked(who uuid.UUID, asset assets.Asset, change SignedBalance) error {
	return s.applyChange(who, asset, change, false)
}

// Transfer moves amount between two accounts. Both legs apply or neither.
func (s *Store) Transfer(from, to uuid.UUID, asset assets.Asset, amount numeric.Value) error {
	return s.transfer(from, to, asset, amount, true)
}

// TransferUnchecked is Transfer without the change gates.
func (s *Store) TransferUnchecked(from, to uuid.UUID, asset assets.Asset, amount numeric.Value) error {
	return s.transfer(from, to, asset, amount, false)
}

func (s *Store) transfer(from, to uuid.UUID, asset assets.Asset, amount numeric.Value, checked bool) error {
	if amount.IsZero() {
		return nil
	}
	if err := s.applyChange(from, asset, Debt(amount), checked); err != nil {
		return err
	}
	if err := s.applyChange(to, asset, Positive(amount), checked); err != nil {
		// revert the first leg; an unchecked revert of a just-applied
		// change cannot fail except by invariant violation
		if rerr := s.applyChange(from, asset, Positive(amount), false); rerr != nil {
			panic(fmt.Sprintf("FATAL: transfer rollback failed: %v", rerr))
		}
		return err
	}
	return nil
}

// Exchange atomically swaps amount1 of asset1 from first against amount2 of
// asset2 from second. On failure the error names the side at fault and no
// leg is applied.
func (s *Store) Exchange(
	first, second uuid.UUID,
	asset1 assets.Asset, amount1 numeric.Value,
	asset2 assets.Asset, amount2 numeric.Value,
) error {
	type leg struct {
		who    uuid.UUID
		asset  assets.Asset
		change SignedBalance
		side   ExchangeSide
	}
	legs := []leg{
		{first, asset1, Debt(amount1), ExchangeSideFirst},
		{second, asset1, Positive(amount1), ExchangeSideSecond},
		{second, asset2, Debt(amount2), ExchangeSideSecond},
		{first, asset2, Positive(amount2), ExchangeSideFirst},
	}

	for i, l := range legs {
		if err := s.applyChange(l.who, l.asset, l.change, true); err != nil {
			for j := i - 1; j >= 0; j-- {
				undo := legs[j]
				if rerr := s.applyChange(undo.who, undo.asset, undo.change.Negate(), false); rerr != nil {
					panic(fmt.Sprintf("FATAL: exchange rollback failed: %v", rerr))
				}
			}
			return &ExchangeError{Side: l.side, Err: err}
		}
	}
	return nil
}

// TotalByAsset sums all signed balances per asset. A closed system nets to
// zero for every asset; the invariant validator checks exactly that.
func (s *Store) TotalByAsset() map[assets.Asset]SignedBalance {
	totals := make(map[assets.Asset]SignedBalance)
	for key, bal := range s.balances {
		sum, ok := totals[key.Asset].Add(bal)
		if !ok {
			panic("FATAL: global balance total overflow")
		}
		totals[key.Asset] = sum
	}
	return totals
}

// Snapshot returns a copy of every stored balance.
func (s *Store) Snapshot() map[AccountKey]SignedBalance {
	out := make(map[AccountKey]SignedBalance, len(s.balances))
	for k, v := range s.balances {
		out[k] = v
	}
	return out
}

// Restore replaces the store contents; used during snapshot recovery.
func (s *Store) Restore(balances map[AccountKey]SignedBalance) {
	s.balances = make(map[AccountKey]SignedBalance, len(balances))
	for k, v := range balances {
		if !v.IsZero() {
			s.balances[k] = v
		}
	}
}
