package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/lucky-friday-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/lucky-friday-api/internal/domain"
	"github.com/vietanh2810/lucky-friday-api/internal/service"
)

type HedgeSetService interface {
	ListHedgeSets(ctx context.Context) ([]domain.HedgeSet, error)
	GetHedgeSet(ctx context.Context, id uint) (domain.HedgeSet, error)
}

type HedgeSetHandler struct {
	svc HedgeSetService
}

func NewHedgeSetHandler(svc HedgeSetService) *HedgeSetHandler {
	return &HedgeSetHandler{
		svc: svc,
	}
}

// HandleListHedgeSets godoc
// @Summary      List hedge sets
// @Description  Retrieves all hedge sets with their owning Friday resolved, newest Friday first
// @Tags         hedgesets
// @Produce      json
// @Success      200  {array}   response.HedgeSetDetail
// @Failure      500  {object}  response.Err
// @Router       /HedgeSets [get]
func (h *HedgeSetHandler) HandleListHedgeSets(ctx *gin.Context) {
	hedgeSets, err := h.svc.ListHedgeSets(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListHedgeSets -> h.svc.ListHedgeSets -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewHedgeSetDetails(hedgeSets))
}

// HandleGetHedgeSet godoc
// @Summary      Get a hedge set by ID
// @Tags         hedgesets
// @Produce      json
// @Param        id   path      int  true  "HedgeSet ID"
// @Success      200  {object}  response.HedgeSetDetail
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /HedgeSets/{id} [get]
func (h *HedgeSetHandler) HandleGetHedgeSet(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound())
		return
	}

	hedgeSet, err := h.svc.GetHedgeSet(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrHedgeSetNotFound) {
			response.RenderErr(ctx, response.ErrNotFound())
			return
		}

		err = fmt.Errorf("HandleGetHedgeSet -> h.svc.GetHedgeSet -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewHedgeSetDetail(hedgeSet))
}
