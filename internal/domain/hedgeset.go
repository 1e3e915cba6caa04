package domain

import "time"

// HedgeSet is a secondary basket of exactly two single bets funded from a
// sub-budget of a Friday.
//
// FridayDate, FridayAccountTitle and FridayLineupEntries are resolved from
// the owning Friday on reads; they are never persisted with the hedge set.
type HedgeSet struct {
	ID                  uint
	FridayID            uint
	FridayDate          time.Time
	FridayAccountTitle  string
	Title               string
	Budget              float64
	SingleBets          []SingleBet
	LineupEntries       []HedgeSetLineupEntry
	FridayLineupEntries []LineupEntry
}

// HedgeSetLineupEntry is a per-member contribution tracked against a hedge
// set, separate from the Friday-level lineup.
type HedgeSetLineupEntry struct {
	ID         uint
	HedgeSetID uint
	MemberID   uint
	MemberName string
	Amount     float64
}
