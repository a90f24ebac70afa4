package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campuslms/rewards-api/internal/api/dto"
	"github.com/campuslms/rewards-api/internal/apperror"
	"github.com/campuslms/rewards-api/internal/domain"
	"github.com/campuslms/rewards-api/internal/utils"
)

//go:generate mockery --name RewardService --output ../mocks
type RewardService interface {
	Create(ctx context.Context, db *gorm.DB, req dto.CreateRewardRequest) (*dto.RewardResponse, error)
	List(ctx context.Context, db *gorm.DB, filter domain.RewardFilter) (*dto.RewardListResponse, error)
	GetByID(ctx context.Context, db *gorm.DB, id string) (*dto.RewardResponse, error)
	Update(ctx context.Context, db *gorm.DB, id string, req dto.UpdateRewardRequest) (*dto.RewardResponse, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
	HistoryForUser(ctx context.Context, db *gorm.DB, userID string, filter domain.RewardFilter) (*dto.RewardHistoryResponse, error)
}

type RewardHandler struct {
	*BaseHandler
	service RewardService
}

func NewRewardHandler(service RewardService) *RewardHandler {
	return &RewardHandler{service: service}
}

// tenantDB pulls the pooled handle the resolution middleware injected.
func (h *RewardHandler) tenantDB(c *gin.Context, ctx context.Context) (*gorm.DB, bool) {
	db, err := utils.GetTenantDBFromContext(ctx)
	if err != nil {
		dto.RespondError(c, apperror.Internal("tenant database not initialized", err))
		return nil, false
	}
	return db, true
}

func pageFilter(c *gin.Context) domain.RewardFilter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return domain.RewardFilter{Page: page, PageSize: limit}
}

// CreateReward godoc
// @Summary Create a reward
// @Tags rewards
// @Accept json
// @Produce json
// @Param body body dto.CreateRewardRequest true "Reward"
// @Success 201 {object} dto.Envelope{data=dto.RewardResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Security BearerAuth
// @Router /rewards [post]
func (h *RewardHandler) CreateReward(c *gin.Context) {
	var req dto.CreateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondError(c, apperror.BadRequest(err.Error()))
		return
	}

	ctx := h.RequestCtx(c)
	db, ok := h.tenantDB(c, ctx)
	if !ok {
		return
	}

	resp, err := h.service.Create(ctx, db, req)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	dto.Respond(c, http.StatusCreated, "reward created", resp)
}

// ListRewards godoc
// @Summary List rewards
// @Tags rewards
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Envelope{data=dto.RewardListResponse}
// @Security BearerAuth
// @Router /rewards [get]
func (h *RewardHandler) ListRewards(c *gin.Context) {
	ctx := h.RequestCtx(c)
	db, ok := h.tenantDB(c, ctx)
	if !ok {
		return
	}

	resp, err := h.service.List(ctx, db, pageFilter(c))
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "rewards fetched", resp)
}

// GetReward godoc
// @Summary Get one reward
// @Tags rewards
// @Produce json
// @Param id path string true "Reward ID"
// @Success 200 {object} dto.Envelope{data=dto.RewardResponse}
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /rewards/{id} [get]
func (h *RewardHandler) GetReward(c *gin.Context) {
	ctx := h.RequestCtx(c)
	db, ok := h.tenantDB(c, ctx)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(ctx, db, c.Param("id"))
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "reward fetched", resp)
}

// UpdateReward godoc
// @Summary Update a reward
// @Tags rewards
// @Accept json
// @Produce json
// @Param id path string true "Reward ID"
// @Param body body dto.UpdateRewardRequest true "Reward"
// @Success 200 {object} dto.Envelope{data=dto.RewardResponse}
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /rewards/{id} [put]
func (h *RewardHandler) UpdateReward(c *gin.Context) {
	var req dto.UpdateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondError(c, apperror.BadRequest(err.Error()))
		return
	}

	ctx := h.RequestCtx(c)
	db, ok := h.tenantDB(c, ctx)
	if !ok {
		return
	}

	resp, err := h.service.Update(ctx, db, c.Param("id"), req)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "reward updated", resp)
}

// DeleteReward godoc
// @Summary Delete a reward
// @Tags rewards
// @Produce json
// @Param id path string true "Reward ID"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /rewards/{id} [delete]
func (h *RewardHandler) DeleteReward(c *gin.Context) {
	ctx := h.RequestCtx(c)
	db, ok := h.tenantDB(c, ctx)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, db, c.Param("id")); err != nil {
		dto.RespondError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "reward deleted", nil)
}

// RewardHistory godoc
// @Summary The caller's redemption history
// @Tags rewards
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Envelope{data=dto.RewardHistoryResponse}
// @Security BearerAuth
// @Router /rewards/history [get]
func (h *RewardHandler) RewardHistory(c *gin.Context) {
	ctx := h.RequestCtx(c)

	claims, err := utils.GetClaimsFromContext(ctx)
	if err != nil {
		dto.RespondError(c, apperror.Unauthenticated("authentication required"))
		return
	}

	db, ok := h.tenantDB(c, ctx)
	if !ok {
		return
	}

	resp, err := h.service.HistoryForUser(ctx, db, claims.UserID, pageFilter(c))
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "rewards history fetched", resp)
}
