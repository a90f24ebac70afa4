package dto

import "github.com/campuslms/rewards-api/internal/domain"

func ToRewardResponse(reward *domain.Reward) RewardResponse {
	return RewardResponse{
		ID:          reward.ID,
		Title:       reward.Title,
		Description: reward.Description,
		Coins:       reward.Coins,
		ImageURL:    reward.ImageURL,
		CreatedAt:   reward.CreatedAt,
	}
}

func ToRewardListResponse(rewards []domain.Reward, meta PageMeta) RewardListResponse {
	resp := RewardListResponse{
		Data: make([]RewardResponse, len(rewards)),
		Meta: meta,
	}
	for i := range rewards {
		resp.Data[i] = ToRewardResponse(&rewards[i])
	}
	return resp
}

func ToRewardHistoryResponse(history []domain.UserReward, meta PageMeta) RewardHistoryResponse {
	resp := RewardHistoryResponse{
		Data: make([]RewardHistoryEntry, len(history)),
		Meta: meta,
	}
	for i, h := range history {
		entry := RewardHistoryEntry{
			ID:          h.ID,
			Status:      h.Status,
			OrderedAt:   h.OrderedAt,
			DeliveredAt: h.DeliveredAt,
		}
		if h.Reward != nil {
			r := ToRewardResponse(h.Reward)
			entry.Reward = &r
		}
		resp.Data[i] = entry
	}
	return resp
}

// NewPageMeta computes paging metadata from a normalized filter and total.
func NewPageMeta(filter domain.RewardFilter, total int64) PageMeta {
	filter.Normalize()
	totalPages := int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize))
	return PageMeta{
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.PageSize,
		TotalPages: totalPages,
	}
}
