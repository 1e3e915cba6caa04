package response

import (
	"time"

	"github.com/vietanh2810/lucky-friday-api/internal/domain"
)

type Friday struct {
	ID                     uint          `json:"id"`
	AccountID              uint          `json:"accountId"`
	AccountTitle           string        `json:"accountTitle"`
	BetDateTime            time.Time     `json:"betDateTime"`
	TotalOddsHongKong      float64       `json:"totalOddsHongKong"`
	TotalOddsInternational float64       `json:"totalOddsInternational"`
	TotalDeposit           float64       `json:"totalDeposit"`
	Status                 string        `json:"status"`
	Dog                    *string       `json:"dog"`
	IsCurrentFriday        bool          `json:"isCurrentFriday"`
	HasHedgeSet            bool          `json:"hasHedgeSet"`
	LineupEntries          []LineupEntry `json:"lineupEntries"`
	SingleBets             []SingleBet   `json:"singleBets"`
	HedgeSet               *HedgeSet     `json:"hedgeSet,omitempty"`
}

type LineupEntry struct {
	ID         uint    `json:"id"`
	MemberID   uint    `json:"memberId"`
	MemberName string  `json:"memberName"`
	Amount     float64 `json:"amount"`
}

type SingleBet struct {
	ID                uint      `json:"id"`
	Title             string    `json:"title"`
	MatchStartTime    time.Time `json:"matchStartTime"`
	MatchEndTime      time.Time `json:"matchEndTime"`
	OddsHongKong      float64   `json:"oddsHongKong"`
	OddsInternational float64   `json:"oddsInternational"`
	Status            string    `json:"status"`
}

type HedgeSet struct {
	ID         uint        `json:"id"`
	FridayID   uint        `json:"fridayId"`
	Title      string      `json:"title"`
	Budget     float64     `json:"budget"`
	SingleBets []SingleBet `json:"singleBets"`
}

// NewFriday shapes the aggregate for the wire. The current-Friday flag is
// derived from the caller-provided instant, never from the system clock.
func NewFriday(f domain.Friday, now time.Time) Friday {
	friday := Friday{
		ID:                     f.ID,
		AccountID:              f.AccountID,
		AccountTitle:           f.AccountTitle,
		BetDateTime:            f.BetDateTime,
		TotalOddsHongKong:      f.TotalOddsHongKong,
		TotalOddsInternational: f.TotalOddsInternational,
		TotalDeposit:           f.TotalDeposit,
		Status:                 string(f.Status),
		Dog:                    f.Dog,
		IsCurrentFriday:        domain.IsCurrentFriday(f.BetDateTime, now),
		HasHedgeSet:            f.FirstHedgeSet() != nil,
		LineupEntries:          make([]LineupEntry, 0, len(f.LineupEntries)),
		SingleBets:             make([]SingleBet, 0, len(f.SingleBets)),
	}

	for _, e := range f.LineupEntries {
		friday.LineupEntries = append(friday.LineupEntries, newLineupEntry(e))
	}

	for _, b := range f.SingleBets {
		friday.SingleBets = append(friday.SingleBets, newSingleBet(b))
	}

	if hs := f.FirstHedgeSet(); hs != nil {
		hedgeSet := HedgeSet{
			ID:         hs.ID,
			FridayID:   hs.FridayID,
			Title:      hs.Title,
			Budget:     hs.Budget,
			SingleBets: make([]SingleBet, 0, len(hs.SingleBets)),
		}
		for _, b := range hs.SingleBets {
			hedgeSet.SingleBets = append(hedgeSet.SingleBets, newSingleBet(b))
		}
		friday.HedgeSet = &hedgeSet
	}

	return friday
}

func NewFridays(fs []domain.Friday, now time.Time) []Friday {
	fridays := make([]Friday, 0, len(fs))
	for _, f := range fs {
		fridays = append(fridays, NewFriday(f, now))
	}

	return fridays
}

func newLineupEntry(e domain.LineupEntry) LineupEntry {
	return LineupEntry{
		ID:         e.ID,
		MemberID:   e.MemberID,
		MemberName: e.MemberName,
		Amount:     e.Amount,
	}
}

func newSingleBet(b domain.SingleBet) SingleBet {
	return SingleBet{
		ID:                b.ID,
		Title:             b.Title,
		MatchStartTime:    b.MatchStartTime,
		MatchEndTime:      b.MatchEndTime,
		OddsHongKong:      b.OddsHongKong,
		OddsInternational: b.OddsInternational,
		Status:            string(b.Status),
	}
}
