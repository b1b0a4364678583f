package dex

import "EqCore/internal/assets"

// BookChangeKind discriminates resting-book mutations.
type BookChangeKind int

const (
	BookChangeCreated BookChangeKind = iota + 1
	BookChangeReduced
	BookChangeDeleted
)

func (k BookChangeKind) String() string {
	switch k {
	case BookChangeCreated:
		return "Created"
	case BookChangeReduced:
		return "Reduced"
	case BookChangeDeleted:
		return "Deleted"
	default:
		return "Unknown"
	}
}

// BookChange is one resting-book mutation recorded while an extrinsic runs.
// For Created and Reduced the Order carries the post-change state; for
// Deleted it carries the order as it left the book, with Reason set.
type BookChange struct {
	Kind   BookChangeKind
	Asset  assets.Asset
	Order  Order
	Reason DeleteReason
}

// DrainBookChanges returns the mutations recorded since the previous drain
// and clears the journal. The core drains once per extrinsic so downstream
// read models see every insert, fill and removal, including maker-side
// effects of matching.
func (e *Engine) DrainBookChanges() []BookChange {
	if len(e.journal) == 0 {
		return nil
	}
	out := e.journal
	e.journal = nil
	return out
}
