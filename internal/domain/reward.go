package domain

import (
	"time"
)

type Reward struct {
	ID          string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Coins       int       `gorm:"not null" json:"coins"`
	ImageURL    string    `gorm:"type:text" json:"image_url"`
	Deleted     bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt   time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Reward) TableName() string {
	return "rewards"
}

// UserReward is one redemption of a reward by a user.
type UserReward struct {
	ID          string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID      string     `gorm:"type:uuid;not null" json:"user_id"`
	RewardID    string     `gorm:"type:uuid;not null" json:"reward_id"`
	Status      string     `gorm:"type:text;not null;default:'ordered'" json:"status"`
	OrderedAt   time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"ordered_at"`
	DeliveredAt *time.Time `gorm:"type:timestamp with time zone" json:"delivered_at,omitempty"`
	Reward      *Reward    `gorm:"foreignKey:RewardID" json:"reward,omitempty"`
}

func (UserReward) TableName() string {
	return "user_rewards"
}

// RewardFilter narrows reward listings; zero values mean no constraint.
type RewardFilter struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

func (f *RewardFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 10
	}
}

func (f *RewardFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}
