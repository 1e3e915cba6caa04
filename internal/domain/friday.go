package domain

import "time"

// BetStatus is the lifecycle of a combined bet or a single match bet.
type BetStatus string

const (
	BetStatusRunning BetStatus = "Running"
	BetStatusWon     BetStatus = "Won"
	BetStatusLost    BetStatus = "Lost"
)

func (s BetStatus) IsValid() bool {
	switch s {
	case BetStatusRunning, BetStatusWon, BetStatusLost:
		return true
	}
	return false
}

// utc7 is the fixed offset every bet date is interpreted in.
var utc7 = time.FixedZone("UTC+7", 7*60*60)

// NowUTC7 returns the given instant shifted into the UTC+7 offset.
func NowUTC7(now time.Time) time.Time {
	return now.In(utc7)
}

// IsCurrentFriday reports whether the bet date falls on "today" in UTC+7,
// comparing dates only.
func IsCurrentFriday(betDateTime, now time.Time) bool {
	by, bm, bd := betDateTime.In(utc7).Date()
	ny, nm, nd := now.In(utc7).Date()

	return by == ny && bm == nm && bd == nd
}

// Friday is the aggregate root for one weekly pooled-bet event.
type Friday struct {
	ID                     uint
	AccountID              uint
	AccountTitle           string
	BetDateTime            time.Time
	TotalOddsHongKong      float64
	TotalOddsInternational float64
	TotalDeposit           float64
	Status                 BetStatus
	Dog                    *string
	LineupEntries          []LineupEntry
	SingleBets             []SingleBet
	HedgeSets              []HedgeSet
}

// FirstHedgeSet is the read-only view of the legacy singular hedge-set
// relation: the first hedge set if any exist, nil otherwise.
func (f *Friday) FirstHedgeSet() *HedgeSet {
	if len(f.HedgeSets) == 0 {
		return nil
	}

	return &f.HedgeSets[0]
}

// LineupEntry is one member's contribution to a Friday's pooled deposit.
type LineupEntry struct {
	ID         uint
	FridayID   uint
	MemberID   uint
	MemberName string
	Amount     float64
}
