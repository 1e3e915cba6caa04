package request

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type LineupEntryPayload struct {
	MemberID uint    `json:"memberId"`
	Amount   float64 `json:"amount"`
}

type SingleBetPayload struct {
	Title             string    `json:"title"`
	MatchStartTime    time.Time `json:"matchStartTime"`
	MatchEndTime      time.Time `json:"matchEndTime"`
	OddsHongKong      float64   `json:"oddsHongKong"`
	OddsInternational float64   `json:"oddsInternational"`
	Status            string    `json:"status"`
}

type HedgeSetLineupEntryPayload struct {
	MemberID uint    `json:"memberId"`
	Amount   float64 `json:"amount"`
}

type HedgeSetPayload struct {
	Title         string                       `json:"title"`
	Budget        float64                      `json:"budget"`
	SingleBets    []SingleBetPayload           `json:"singleBets"`
	LineupEntries []HedgeSetLineupEntryPayload `json:"lineupEntries"`
}

type CreateFridayRequest struct {
	AccountID              uint                 `json:"accountId"`
	BetDateTime            *time.Time           `json:"betDateTime"`
	TotalOddsHongKong      float64              `json:"totalOddsHongKong"`
	TotalOddsInternational float64              `json:"totalOddsInternational"`
	TotalDeposit           float64              `json:"totalDeposit"`
	Status                 string               `json:"status"`
	Dog                    *string              `json:"dog"`
	LineupEntries          []LineupEntryPayload `json:"lineupEntries"`
	SingleBets             []SingleBetPayload   `json:"singleBets"`
	HedgeSet               *HedgeSetPayload     `json:"hedgeSet"`
	CreateHedgeSet         bool                 `json:"createHedgeSet"` // Legacy support.
}

func (req *CreateFridayRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.In("Running", "Won", "Lost")),
		validation.Field(&req.Dog, validation.RuneLength(0, 100)),
		validation.Field(&req.SingleBets, validation.By(validateSingleBets)),
		validation.Field(&req.HedgeSet),
	)
}

type UpdateFridayRequest struct {
	AccountID              *uint                 `json:"accountId"`
	BetDateTime            *time.Time            `json:"betDateTime"`
	TotalOddsHongKong      *float64              `json:"totalOddsHongKong"`
	TotalOddsInternational *float64              `json:"totalOddsInternational"`
	TotalDeposit           *float64              `json:"totalDeposit"`
	Status                 *string               `json:"status"`
	Dog                    *string               `json:"dog"`
	LineupEntries          *[]LineupEntryPayload `json:"lineupEntries"`
	SingleBets             *[]SingleBetPayload   `json:"singleBets"`
	HedgeSet               *HedgeSetPayload      `json:"hedgeSet"`
}

func (req *UpdateFridayRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.In("Running", "Won", "Lost")),
		validation.Field(&req.Dog, validation.RuneLength(0, 100)),
		validation.Field(&req.HedgeSet),
	)
	if err != nil {
		return err
	}

	if req.SingleBets != nil {
		if err = validateSingleBets(*req.SingleBets); err != nil {
			return err
		}
	}

	return nil
}

func (p HedgeSetPayload) Validate() error {
	return validation.ValidateStruct(
		&p,
		validation.Field(&p.Title, validation.Required, validation.RuneLength(1, 200)),
		validation.Field(&p.SingleBets, validation.By(validateSingleBets)),
	)
}

func validateSingleBets(value interface{}) error {
	bets, ok := value.([]SingleBetPayload)
	if !ok {
		return fmt.Errorf("invalid single bets")
	}

	for _, bet := range bets {
		err := validation.ValidateStruct(&bet,
			validation.Field(&bet.Title, validation.Required, validation.RuneLength(1, 250)),
			validation.Field(&bet.Status, validation.In("Running", "Won", "Lost")),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
