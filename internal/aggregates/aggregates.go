package aggregates

import (
	"bytes"
	"fmt"
	"sort"

	"EqCore/internal/assets"
	"EqCore/internal/balance"
	"EqCore/internal/numeric"

	"github.com/google/uuid"
)

// UserGroup partitions tracked accounts. Group totals drive the bailsman
// pool valuation and the system-wide rate model.
type UserGroup int

const (
	GroupBalances UserGroup = iota + 1
	GroupBailsmen
	GroupBorrowers
)

func (g UserGroup) String() string {
	switch g {
	case GroupBalances:
		return "Balances"
	case GroupBailsmen:
		return "Bailsmen"
	case GroupBorrowers:
		return "Borrowers"
	default:
		return "Unknown"
	}
}

// TotalAggregates is the running (collateral, debt) pair for one
// (group, asset). Collateral sums positive magnitudes, debt sums negative
// magnitudes; both are always non-negative.
type TotalAggregates struct {
	Collateral numeric.Value
	Debt       numeric.Value
}

type groupAssetKey struct {
	Group UserGroup
	Asset assets.Asset
}

var ErrAggregateOverflow = fmt.Errorf("aggregate total overflow")

// BalanceSource supplies an account's current balances for membership
// replay. Declared locally to keep the dependency one-way.
type BalanceSource interface {
	AccountBalances(who uuid.UUID) []balance.AssetBalance
}

// Store keeps group membership and per-(group, asset) totals. Single-writer
// from the deterministic core; no locking.
type Store struct {
	totals  map[groupAssetKey]TotalAggregates
	members map[UserGroup]map[uuid.UUID]struct{}
}

func NewStore() *Store {
	return &Store{
		totals:  make(map[groupAssetKey]TotalAggregates),
		members: make(map[UserGroup]map[uuid.UUID]struct{}),
	}
}

// InGroup reports group membership.
func (s *Store) InGroup(who uuid.UUID, group UserGroup) bool {
	_, ok := s.members[group][who]
	return ok
}

// Members returns the group's accounts in deterministic byte order.
func (s *Store) Members(group UserGroup) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(s.members[group]))
	for id := range s.members[group] {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i][:], out[j][:]) < 0
	})
	return out
}

// MemberCount returns the group's size.
func (s *Store) MemberCount(group UserGroup) int {
	return len(s.members[group])
}

// Total returns the running totals for (group, asset).
func (s *Store) Total(group UserGroup, asset assets.Asset) TotalAggregates {
	return s.totals[groupAssetKey{Group: group, Asset: asset}]
}

// SetUserGroup adds or removes an account and replays its current balances
// into or out of the group totals in the same step.
func (s *Store) SetUserGroup(who uuid.UUID, group UserGroup, isIn bool, balances BalanceSource) error {
	already := s.InGroup(who, group)
	if already == isIn {
		return nil
	}

	for _, ab := range balances.AccountBalances(who) {
		prev := ab.Balance
		delta := ab.Balance
		if !isIn {
			delta = delta.Negate()
		} else {
			prev = balance.SignedBalance{}
		}
		if err := s.updateTotal(group, ab.Asset, prev, delta); err != nil {
			return err
		}
	}

	if isIn {
		if s.members[group] == nil {
			s.members[group] = make(map[uuid.UUID]struct{})
		}
		s.members[group][who] = struct{}{}
	} else {
		delete(s.members[group], who)
	}
	return nil
}

// OnBalanceChanged applies the (old, new) balance delta to every group the
// account belongs to. All group updates are computed before any is
// committed so an overflow leaves no partial application.
func (s *Store) OnBalanceChanged(who uuid.UUID, asset assets.Asset, old, next balance.SignedBalance) error {
	delta, ok := next.Sub(old)
	if !ok {
		return ErrAggregateOverflow
	}
	if delta.IsZero() {
		return nil
	}

	type pending struct {
		key   groupAssetKey
		total TotalAggregates
	}
	var updates []pending

	for group, accounts := range s.members {
		if _, in := accounts[who]; !in {
			continue
		}
		key := groupAssetKey{Group: group, Asset: asset}
		total, err := applyDelta(s.totals[key], old, delta)
		if err != nil {
			return err
		}
		updates = append(updates, pending{key: key, total: total})
	}

	for _, u := range updates {
		s.totals[u.key] = u.total
	}
	return nil
}

func (s *Store) updateTotal(group UserGroup, asset assets.Asset, prev, delta balance.SignedBalance) error {
	key := groupAssetKey{Group: group, Asset: asset}
	total, err := applyDelta(s.totals[key], prev, delta)
	if err != nil {
		return err
	}
	s.totals[key] = total
	return nil
}

// applyDelta is the four-case protocol on (delta sign, prev sign). A
// positive delta against a negative prev consumes debt before accruing
// collateral, and symmetrically. Every step is checked; overflow aborts.
func applyDelta(t TotalAggregates, prev, delta balance.SignedBalance) (TotalAggregates, error) {
	var ok bool
	switch {
	case delta.IsPositive() && prev.IsNegative():
		change := delta.Abs()
		if prev.Abs().LT(change) {
			change = prev.Abs()
		}
		grow, sub := delta.Abs().CheckedSub(change)
		if !sub {
			return t, ErrAggregateOverflow
		}
		t.Collateral, ok = t.Collateral.CheckedAdd(grow)
		if !ok {
			return t, ErrAggregateOverflow
		}
		t.Debt, ok = t.Debt.CheckedSub(change)
		if !ok {
			return t, ErrAggregateOverflow
		}

	case delta.IsPositive():
		t.Collateral, ok = t.Collateral.CheckedAdd(delta.Abs())
		if !ok {
			return t, ErrAggregateOverflow
		}

	case delta.IsNegative() && prev.IsNegative():
		t.Debt, ok = t.Debt.CheckedAdd(delta.Abs())
		if !ok {
			return t, ErrAggregateOverflow
		}

	default: // negative delta, positive prev
		change := delta.Abs()
		if prev.Abs().LT(change) {
			change = prev.Abs()
		}
		grow, sub := delta.Abs().CheckedSub(change)
		if !sub {
			return t, ErrAggregateOverflow
		}
		t.Collateral, ok = t.Collateral.CheckedSub(change)
		if !ok {
			return t, ErrAggregateOverflow
		}
		t.Debt, ok = t.Debt.CheckedAdd(grow)
		if !ok {
			return t, ErrAggregateOverflow
		}
	}
	return t, nil
}

// --- snapshot support ---

// GroupTotalSnapshot is one exported (group, asset, totals) row.
type GroupTotalSnapshot struct {
	Group      UserGroup
	Asset      assets.Asset
	Collateral numeric.Value
	Debt       numeric.Value
}

// MembershipSnapshot is one exported (group, account) row.
type MembershipSnapshot struct {
	Group   UserGroup
	Account uuid.UUID
}

func (s *Store) Snapshot() ([]GroupTotalSnapshot, []MembershipSnapshot) {
	var totals []GroupTotalSnapshot
	for key, t := range s.totals {
		totals = append(totals, GroupTotalSnapshot{
			Group: key.Group, Asset: key.Asset,
			Collateral: t.Collateral, Debt: t.Debt,
		})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Group != totals[j].Group {
			return totals[i].Group < totals[j].Group
		}
		return totals[i].Asset < totals[j].Asset
	})

	var membership []MembershipSnapshot
	for group, accounts := range s.members {
		for id := range accounts {
			membership = append(membership, MembershipSnapshot{Group: group, Account: id})
		}
	}
	sort.Slice(membership, func(i, j int) bool {
		if membership[i].Group != membership[j].Group {
			return membership[i].Group < membership[j].Group
		}
		return bytes.Compare(membership[i].Account[:], membership[j].Account[:]) < 0
	})
	return totals, membership
}

func (s *Store) Restore(totals []GroupTotalSnapshot, membership []MembershipSnapshot) {
	s.totals = make(map[groupAssetKey]TotalAggregates, len(totals))
	for _, row := range totals {
		s.totals[groupAssetKey{Group: row.Group, Asset: row.Asset}] = TotalAggregates{
			Collateral: row.Collateral, Debt: row.Debt,
		}
	}
	s.members = make(map[UserGroup]map[uuid.UUID]struct{})
	for _, row := range membership {
		if s.members[row.Group] == nil {
			s.members[row.Group] = make(map[uuid.UUID]struct{})
		}
		s.members[row.Group][row.Account] = struct{}{}
	}
}
