package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/campuslms/rewards-api/internal/api/dto"
	"github.com/campuslms/rewards-api/internal/apperror"
	"github.com/campuslms/rewards-api/internal/domain"
	"github.com/campuslms/rewards-api/internal/repository"
	"github.com/campuslms/rewards-api/pkg/logger"
)

// RewardService maps reward CRUD onto whichever tenant database the request
// resolved to. The handle comes in per call; this service holds no tenant
// state of its own.
type RewardService struct {
	tenantData repository.TenantDataFactory
	logger     *logger.Logger
}

func NewRewardService(tenantData repository.TenantDataFactory, logger *logger.Logger) *RewardService {
	return &RewardService{
		tenantData: tenantData,
		logger:     logger,
	}
}

func (s *RewardService) Create(ctx context.Context, db *gorm.DB, req dto.CreateRewardRequest) (*dto.RewardResponse, error) {
	reward := &domain.Reward{
		Title:       req.Title,
		Description: req.Description,
		Coins:       req.Coins,
		ImageURL:    req.ImageURL,
	}

	created, err := s.tenantData(db).Rewards().Create(ctx, reward)
	if err != nil {
		return nil, apperror.Internal("failed to create reward", err)
	}

	resp := dto.ToRewardResponse(created)
	return &resp, nil
}

func (s *RewardService) List(ctx context.Context, db *gorm.DB, filter domain.RewardFilter) (*dto.RewardListResponse, error) {
	rewards, total, err := s.tenantData(db).Rewards().List(ctx, filter)
	if err != nil {
		return nil, apperror.Internal("failed to fetch rewards", err)
	}

	resp := dto.ToRewardListResponse(rewards, dto.NewPageMeta(filter, total))
	return &resp, nil
}

func (s *RewardService) GetByID(ctx context.Context, db *gorm.DB, id string) (*dto.RewardResponse, error) {
	reward, err := s.tenantData(db).Rewards().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("reward not found")
		}
		return nil, apperror.Internal("failed to fetch reward", err)
	}

	resp := dto.ToRewardResponse(reward)
	return &resp, nil
}

func (s *RewardService) Update(ctx context.Context, db *gorm.DB, id string, req dto.UpdateRewardRequest) (*dto.RewardResponse, error) {
	rewards := s.tenantData(db).Rewards()

	reward, err := rewards.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("reward not found")
		}
		return nil, apperror.Internal("failed to fetch reward", err)
	}

	reward.Title = req.Title
	reward.Description = req.Description
	reward.Coins = req.Coins
	reward.ImageURL = req.ImageURL

	if err := rewards.Update(ctx, reward); err != nil {
		return nil, apperror.Internal("failed to update reward", err)
	}

	resp := dto.ToRewardResponse(reward)
	return &resp, nil
}

func (s *RewardService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	rewards := s.tenantData(db).Rewards()

	if _, err := rewards.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("reward not found")
		}
		return apperror.Internal("failed to fetch reward", err)
	}

	if err := rewards.SoftDelete(ctx, id); err != nil {
		return apperror.Internal("failed to delete reward", err)
	}

	s.logger.Infof("Reward %s soft-deleted", id)
	return nil
}

func (s *RewardService) HistoryForUser(ctx context.Context, db *gorm.DB, userID string, filter domain.RewardFilter) (*dto.RewardHistoryResponse, error) {
	history, total, err := s.tenantData(db).Rewards().HistoryByUser(ctx, userID, filter)
	if err != nil {
		return nil, apperror.Internal("failed to fetch rewards history", err)
	}

	resp := dto.ToRewardHistoryResponse(history, dto.NewPageMeta(filter, total))
	return &resp, nil
}
