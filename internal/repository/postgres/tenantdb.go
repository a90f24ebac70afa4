package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/campuslms/rewards-api/internal/domain"
	"github.com/campuslms/rewards-api/internal/repository"
)

// tenantData binds the per-tenant repositories to one pooled handle. Cheap
// to construct, so a fresh one is built for every request.
type tenantData struct {
	users       repository.UserRepository
	permissions repository.PermissionRepository
	rewards     repository.RewardRepository
}

func NewTenantData(db *gorm.DB) repository.TenantData {
	return &tenantData{
		users:       &userRepository{db: db},
		permissions: &permissionRepository{db: db},
		rewards:     &rewardRepository{db: db},
	}
}

func (t *tenantData) Users() repository.UserRepository             { return t.users }
func (t *tenantData) Permissions() repository.PermissionRepository { return t.permissions }
func (t *tenantData) Rewards() repository.RewardRepository         { return t.rewards }

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Preload("Role").First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type permissionRepository struct {
	db *gorm.DB
}

func (r *permissionRepository) HasGrant(ctx context.Context, roleID, permission string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.RolePermission{}).
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Where("role_permissions.role_id = ? AND permissions.permission = ?", roleID, permission).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *permissionRepository) ListByRole(ctx context.Context, roleID string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&domain.RolePermission{}).
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Where("role_permissions.role_id = ? AND permissions.permission LIKE ?", roleID, domain.PermissionPrefix+"%").
		Pluck("permissions.permission", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *permissionRepository) ListAll(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&domain.Permission{}).
		Where("permission LIKE ?", domain.PermissionPrefix+"%").
		Pluck("permission", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

type rewardRepository struct {
	db *gorm.DB
}

func (r *rewardRepository) Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error) {
	if err := r.db.WithContext(ctx).Create(reward).Error; err != nil {
		return nil, err
	}
	return reward, nil
}

func (r *rewardRepository) GetByID(ctx context.Context, id string) (*domain.Reward, error) {
	var reward domain.Reward
	err := r.db.WithContext(ctx).First(&reward, "id = ? AND deleted = ?", id, false).Error
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

func (r *rewardRepository) List(ctx context.Context, filter domain.RewardFilter) ([]domain.Reward, int64, error) {
	filter.Normalize()

	var total int64
	err := r.db.WithContext(ctx).
		Model(&domain.Reward{}).
		Where("deleted = ?", false).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rewards []domain.Reward
	err = r.db.WithContext(ctx).
		Where("deleted = ?", false).
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&rewards).Error
	if err != nil {
		return nil, 0, err
	}
	return rewards, total, nil
}

func (r *rewardRepository) Update(ctx context.Context, reward *domain.Reward) error {
	return r.db.WithContext(ctx).Save(reward).Error
}

func (r *rewardRepository) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Reward{}).
		Where("id = ? AND deleted = ?", id, false).
		Update("deleted", true).Error
}

func (r *rewardRepository) HistoryByUser(ctx context.Context, userID string, filter domain.RewardFilter) ([]domain.UserReward, int64, error) {
	filter.Normalize()

	var total int64
	err := r.db.WithContext(ctx).
		Model(&domain.UserReward{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var history []domain.UserReward
	err = r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Reward").
		Order("ordered_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&history).Error
	if err != nil {
		return nil, 0, err
	}
	return history, total, nil
}
