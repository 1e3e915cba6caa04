package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/lucky-friday-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/lucky-friday-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/lucky-friday-api/internal/domain"
	"github.com/vietanh2810/lucky-friday-api/internal/service"
)

type MemberService interface {
	ListMembers(ctx context.Context) ([]domain.Member, error)
	GetMember(ctx context.Context, id uint) (domain.Member, error)
	CreateMember(ctx context.Context, name string) (domain.Member, error)
	UpdateMember(ctx context.Context, id uint, name string) (domain.Member, error)
	DeleteMember(ctx context.Context, id uint) error
}

type MemberHandler struct {
	svc MemberService
}

func NewMemberHandler(svc MemberService) *MemberHandler {
	return &MemberHandler{
		svc: svc,
	}
}

// HandleListMembers godoc
// @Summary      List members
// @Description  Retrieves all pool members ordered by name
// @Tags         members
// @Produce      json
// @Success      200  {array}   response.Member
// @Failure      500  {object}  response.Err
// @Router       /Members [get]
func (h *MemberHandler) HandleListMembers(ctx *gin.Context) {
	members, err := h.svc.ListMembers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListMembers -> h.svc.ListMembers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMembers(members))
}

// HandleGetMember godoc
// @Summary      Get a member by ID
// @Tags         members
// @Produce      json
// @Param        id   path      int  true  "Member ID"
// @Success      200  {object}  response.Member
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /Members/{id} [get]
func (h *MemberHandler) HandleGetMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound())
		return
	}

	member, err := h.svc.GetMember(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound())
			return
		}

		err = fmt.Errorf("HandleGetMember -> h.svc.GetMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMember(member))
}

// HandleCreateMember godoc
// @Summary      Create a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateMemberRequest  true  "Member details"
// @Success      201    {object}  response.Member
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /Members [post]
func (h *MemberHandler) HandleCreateMember(ctx *gin.Context) {
	var input request.CreateMemberRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	member, err := h.svc.CreateMember(ctx.Request.Context(), input.Name)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			response.RenderErr(ctx, response.ErrBadRequest(validationErr))
			return
		}

		err = fmt.Errorf("HandleCreateMember -> h.svc.CreateMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/Members/%d", member.ID))
	ctx.JSON(http.StatusCreated, response.NewMember(member))
}

// HandleUpdateMember godoc
// @Summary      Rename a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        id     path      int                          true  "Member ID"
// @Param        input  body      request.UpdateMemberRequest  true  "New name"
// @Success      200    {object}  response.Member
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /Members/{id} [put]
func (h *MemberHandler) HandleUpdateMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound())
		return
	}

	var input request.UpdateMemberRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	member, err := h.svc.UpdateMember(ctx.Request.Context(), id, input.Name)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			response.RenderErr(ctx, response.ErrBadRequest(validationErr))
			return
		}
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound())
			return
		}

		err = fmt.Errorf("HandleUpdateMember -> h.svc.UpdateMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMember(member))
}

// HandleDeleteMember godoc
// @Summary      Delete a member
// @Description  Deletes a member unless they still appear in any lineup
// @Tags         members
// @Param        id   path  int  true  "Member ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /Members/{id} [delete]
func (h *MemberHandler) HandleDeleteMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound())
		return
	}

	if err := h.svc.DeleteMember(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMemberInUse) {
			response.RenderErr(ctx, response.ErrConflict("Cannot delete member with existing lineup entries"))
			return
		}
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound())
			return
		}

		err = fmt.Errorf("HandleDeleteMember -> h.svc.DeleteMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
