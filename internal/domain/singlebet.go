package domain

import "time"

// BetOwnerKind discriminates which parent a single bet belongs to.
type BetOwnerKind int

const (
	OwnedByFriday BetOwnerKind = iota + 1
	OwnedByHedgeSet
)

// BetOwner is the owner of a single bet: either a Friday directly or a
// hedge set, never both. The zero value means the owner is not assigned yet
// (e.g. a bet payload that has not been persisted).
type BetOwner struct {
	kind       BetOwnerKind
	fridayID   uint
	hedgeSetID uint
}

func FridayOwner(fridayID uint) BetOwner {
	return BetOwner{kind: OwnedByFriday, fridayID: fridayID}
}

func HedgeSetOwner(hedgeSetID uint) BetOwner {
	return BetOwner{kind: OwnedByHedgeSet, hedgeSetID: hedgeSetID}
}

func (o BetOwner) Kind() BetOwnerKind { return o.kind }

// FridayID returns the owning Friday id when the bet is Friday-owned.
func (o BetOwner) FridayID() (uint, bool) {
	return o.fridayID, o.kind == OwnedByFriday
}

// HedgeSetID returns the owning hedge set id when the bet is hedge-owned.
func (o BetOwner) HedgeSetID() (uint, bool) {
	return o.hedgeSetID, o.kind == OwnedByHedgeSet
}

// SingleBet is one concrete wagered match, carrying odds in both the
// Hong-Kong and the international (decimal) conventions.
type SingleBet struct {
	ID                uint
	Title             string
	MatchStartTime    time.Time
	MatchEndTime      time.Time
	OddsHongKong      float64
	OddsInternational float64
	Status            BetStatus
	Owner             BetOwner
}
