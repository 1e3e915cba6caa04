package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/lucky-friday-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/lucky-friday-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/lucky-friday-api/internal/domain"
	"github.com/vietanh2810/lucky-friday-api/internal/service"
)

type FridayService interface {
	ListFridays(ctx context.Context) ([]domain.Friday, error)
	GetFriday(ctx context.Context, id uint) (domain.Friday, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	CreateFriday(ctx context.Context, friday domain.Friday, hedgeSet *domain.HedgeSet, createHedgeSet bool) (domain.Friday, error)
	UpdateFriday(ctx context.Context, id uint, update service.FridayUpdate) error
	DeleteFriday(ctx context.Context, id uint) error
	Now() time.Time
}

type FridayHandler struct {
	svc FridayService
}

func NewFridayHandler(svc FridayService) *FridayHandler {
	return &FridayHandler{
		svc: svc,
	}
}

// HandleListFridays godoc
// @Summary      List all Fridays
// @Description  Retrieves every Friday with its lineup, single bets and hedge set, newest first
// @Tags         fridays
// @Produce      json
// @Success      200  {array}   response.Friday
// @Failure      500  {object}  response.Err
// @Router       /Fridays [get]
func (h *FridayHandler) HandleListFridays(ctx *gin.Context) {
	fridays, err := h.svc.ListFridays(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListFridays -> h.svc.ListFridays -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewFridays(fridays, h.svc.Now()))
}

// HandleGetFriday godoc
// @Summary      Get a Friday by ID
// @Description  Retrieves a single Friday aggregate
// @Tags         fridays
// @Produce      json
// @Param        id   path      int  true  "Friday ID"
// @Success      200  {object}  response.Friday
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /Fridays/{id} [get]
func (h *FridayHandler) HandleGetFriday(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound())
		return
	}

	friday, err := h.svc.GetFriday(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFridayNotFound) {
			response.RenderErr(ctx, response.ErrNotFound())
			return
		}

		err = fmt.Errorf("HandleGetFriday -> h.svc.GetFriday -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewFriday(friday, h.svc.Now()))
}

// HandleListAccounts godoc
// @Summary      List betting accounts
// @Description  Retrieves the accounts a Friday can be booked against
// @Tags         fridays
// @Produce      json
// @Success      200  {array}   response.Account
// @Failure      500  {object}  response.Err
// @Router       /Fridays/accounts [get]
func (h *FridayHandler) HandleListAccounts(ctx *gin.Context) {
	accounts, err := h.svc.ListAccounts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListAccounts -> h.svc.ListAccounts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewAccounts(accounts))
}

// HandleCreateFriday godoc
// @Summary      Create a Friday
// @Description  Creates a Friday with its lineup, optional single bets and optional hedge set
// @Tags         fridays
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateFridayRequest  true  "Friday details"
// @Success      201    {object}  response.Friday
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /Fridays [post]
func (h *FridayHandler) HandleCreateFriday(ctx *gin.Context) {
	var input request.CreateFridayRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	friday := domain.Friday{
		AccountID:              input.AccountID,
		TotalOddsHongKong:      input.TotalOddsHongKong,
		TotalOddsInternational: input.TotalOddsInternational,
		TotalDeposit:           input.TotalDeposit,
		Status:                 domain.BetStatus(input.Status),
		Dog:                    input.Dog,
		LineupEntries:          toDomainLineup(input.LineupEntries),
		SingleBets:             toDomainSingleBets(input.SingleBets),
	}
	if input.BetDateTime != nil {
		friday.BetDateTime = *input.BetDateTime
	}

	var hedgeSet *domain.HedgeSet
	if input.HedgeSet != nil {
		hs := toDomainHedgeSet(*input.HedgeSet)
		hedgeSet = &hs
	}

	created, err := h.svc.CreateFriday(ctx.Request.Context(), friday, hedgeSet, input.CreateHedgeSet)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			response.RenderErr(ctx, response.ErrBadRequest(validationErr))
			return
		}

		err = fmt.Errorf("HandleCreateFriday -> h.svc.CreateFriday -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/Fridays/%d", created.ID))
	ctx.JSON(http.StatusCreated, response.NewFriday(created, h.svc.Now()))
}

// HandleUpdateFriday godoc
// @Summary      Update a Friday
// @Description  Partially updates a Friday. Omitted fields keep their current values.
// @Tags         fridays
// @Accept       json
// @Param        id     path  int                          true  "Friday ID"
// @Param        input  body  request.UpdateFridayRequest  true  "Fields to update"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /Fridays/{id} [put]
func (h *FridayHandler) HandleUpdateFriday(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound())
		return
	}

	var input request.UpdateFridayRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	update := service.FridayUpdate{
		AccountID:              input.AccountID,
		BetDateTime:            input.BetDateTime,
		TotalOddsHongKong:      input.TotalOddsHongKong,
		TotalOddsInternational: input.TotalOddsInternational,
		TotalDeposit:           input.TotalDeposit,
		Dog:                    input.Dog,
	}
	if input.Status != nil {
		status := domain.BetStatus(*input.Status)
		update.Status = &status
	}
	if input.LineupEntries != nil {
		entries := toDomainLineup(*input.LineupEntries)
		update.LineupEntries = &entries
	}
	if input.SingleBets != nil {
		bets := toDomainSingleBets(*input.SingleBets)
		update.SingleBets = &bets
	}
	if input.HedgeSet != nil {
		hs := toDomainHedgeSet(*input.HedgeSet)
		update.HedgeSet = &hs
	}

	if err := h.svc.UpdateFriday(ctx.Request.Context(), id, update); err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			response.RenderErr(ctx, response.ErrBadRequest(validationErr))
			return
		}
		if errors.Is(err, service.ErrFridayNotFound) {
			response.RenderErr(ctx, response.ErrNotFound())
			return
		}

		err = fmt.Errorf("HandleUpdateFriday -> h.svc.UpdateFriday -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeleteFriday godoc
// @Summary      Delete a Friday
// @Description  Deletes a Friday and all of its children
// @Tags         fridays
// @Param        id   path  int  true  "Friday ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /Fridays/{id} [delete]
func (h *FridayHandler) HandleDeleteFriday(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound())
		return
	}

	if err := h.svc.DeleteFriday(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrFridayNotFound) {
			response.RenderErr(ctx, response.ErrNotFound())
			return
		}

		err = fmt.Errorf("HandleDeleteFriday -> h.svc.DeleteFriday -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseIDParam reads the :id path segment. A malformed id is treated the same
// as a missing resource.
func parseIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}

	return uint(id), true
}

func toDomainLineup(payloads []request.LineupEntryPayload) []domain.LineupEntry {
	entries := make([]domain.LineupEntry, 0, len(payloads))
	for _, p := range payloads {
		entries = append(entries, domain.LineupEntry{
			MemberID: p.MemberID,
			Amount:   p.Amount,
		})
	}

	return entries
}

func toDomainSingleBets(payloads []request.SingleBetPayload) []domain.SingleBet {
	bets := make([]domain.SingleBet, 0, len(payloads))
	for _, p := range payloads {
		bets = append(bets, domain.SingleBet{
			Title:             p.Title,
			MatchStartTime:    p.MatchStartTime,
			MatchEndTime:      p.MatchEndTime,
			OddsHongKong:      p.OddsHongKong,
			OddsInternational: p.OddsInternational,
			Status:            domain.BetStatus(p.Status),
		})
	}

	return bets
}

func toDomainHedgeSet(p request.HedgeSetPayload) domain.HedgeSet {
	hedgeSet := domain.HedgeSet{
		Title:      p.Title,
		Budget:     p.Budget,
		SingleBets: toDomainSingleBets(p.SingleBets),
	}

	for _, e := range p.LineupEntries {
		hedgeSet.LineupEntries = append(hedgeSet.LineupEntries, domain.HedgeSetLineupEntry{
			MemberID: e.MemberID,
			Amount:   e.Amount,
		})
	}

	return hedgeSet
}
