package response

import (
	"time"

	"github.com/vietanh2810/lucky-friday-api/internal/domain"
)

type HedgeSetDetail struct {
	ID                 uint          `json:"id"`
	FridayID           uint          `json:"fridayId"`
	FridayDate         time.Time     `json:"fridayDate"`
	FridayAccountTitle string        `json:"fridayAccountTitle"`
	Title              string        `json:"title"`
	Budget             float64       `json:"budget"`
	SingleBetsCount    int           `json:"singleBetsCount"`
	LineupEntries      []LineupEntry `json:"lineupEntries"`
}

// NewHedgeSetDetail resolves the hedge set against its owning Friday. The
// hedge set's own lineup wins over the Friday-level one when present.
func NewHedgeSetDetail(hs domain.HedgeSet) HedgeSetDetail {
	detail := HedgeSetDetail{
		ID:                 hs.ID,
		FridayID:           hs.FridayID,
		FridayDate:         hs.FridayDate,
		FridayAccountTitle: hs.FridayAccountTitle,
		Title:              hs.Title,
		Budget:             hs.Budget,
		SingleBetsCount:    len(hs.SingleBets),
		LineupEntries:      make([]LineupEntry, 0),
	}

	if len(hs.LineupEntries) > 0 {
		for _, e := range hs.LineupEntries {
			detail.LineupEntries = append(detail.LineupEntries, LineupEntry{
				ID:         e.ID,
				MemberID:   e.MemberID,
				MemberName: e.MemberName,
				Amount:     e.Amount,
			})
		}

		return detail
	}

	for _, e := range hs.FridayLineupEntries {
		detail.LineupEntries = append(detail.LineupEntries, newLineupEntry(e))
	}

	return detail
}

func NewHedgeSetDetails(hedgeSets []domain.HedgeSet) []HedgeSetDetail {
	details := make([]HedgeSetDetail, 0, len(hedgeSets))
	for _, hs := range hedgeSets {
		details = append(details, NewHedgeSetDetail(hs))
	}

	return details
}
