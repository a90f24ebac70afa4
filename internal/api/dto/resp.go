package dto

import "time"

type TenantInfo struct {
	ID   string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name string `json:"name" example:"Acme College"`
	Code string `json:"code" example:"acme"`
}

type LoginResponse struct {
	Token       string     `json:"token"`
	Permissions []string   `json:"permissions"`
	Role        string     `json:"role" example:"staff"`
	Tenant      TenantInfo `json:"tenant"`
}

type PermissionCheckResponse struct {
	HasPermission bool `json:"hasPermission" example:"true"`
	IsSuperAdmin  bool `json:"isSuperAdmin,omitempty" example:"false"`
}

type RewardResponse struct {
	ID          string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Title       string    `json:"title" example:"Campus Hoodie"`
	Description string    `json:"description" example:"Limited edition hoodie"`
	Coins       int       `json:"coins" example:"500"`
	ImageURL    string    `json:"image_url" example:"/uploads/rewards/hoodie.png"`
	CreatedAt   time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

// PageMeta describes one page of a listing.
type PageMeta struct {
	Total      int64 `json:"total" example:"42"`
	Page       int   `json:"page" example:"1"`
	Limit      int   `json:"limit" example:"10"`
	TotalPages int   `json:"totalPages" example:"5"`
}

type RewardListResponse struct {
	Data []RewardResponse `json:"data"`
	Meta PageMeta         `json:"meta"`
}

type RewardHistoryEntry struct {
	ID          string          `json:"id"`
	Status      string          `json:"status" example:"ordered"`
	OrderedAt   time.Time       `json:"ordered_at"`
	DeliveredAt *time.Time      `json:"delivered_at,omitempty"`
	Reward      *RewardResponse `json:"reward,omitempty"`
}

type RewardHistoryResponse struct {
	Data []RewardHistoryEntry `json:"data"`
	Meta PageMeta             `json:"meta"`
}
