package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/campuslms/rewards-api/internal/apperror"
	"github.com/campuslms/rewards-api/internal/mocks"
	"github.com/campuslms/rewards-api/internal/repository"
	"github.com/campuslms/rewards-api/internal/token"
	"github.com/campuslms/rewards-api/pkg/logger"
)

type PermissionServiceTestSuite struct {
	suite.Suite
	mockPermissions *mocks.PermissionRepository
	service         *PermissionService
}

func TestPermissionService(t *testing.T) {
	suite.Run(t, new(PermissionServiceTestSuite))
}

func (s *PermissionServiceTestSuite) SetupTest() {
	s.mockPermissions = new(mocks.PermissionRepository)

	tenantData := new(mocks.TenantData)
	tenantData.On("Permissions").Return(s.mockPermissions).Maybe()
	factory := func(db *gorm.DB) repository.TenantData { return tenantData }

	s.service = NewPermissionService(factory, logger.NewNop())
}

func (s *PermissionServiceTestSuite) TestHasPermission_Granted() {
	ctx := context.Background()
	claims := &token.Claims{UserID: "user1", RoleID: "role1", TenantID: "tenant1"}
	s.mockPermissions.On("HasGrant", ctx, "role1", "LMS_REWARD_VIEW").Return(true, nil)

	resp, err := s.service.HasPermission(ctx, &gorm.DB{}, claims, "LMS_REWARD_VIEW")

	s.NoError(err)
	s.True(resp.HasPermission)
	s.False(resp.IsSuperAdmin)
}

func (s *PermissionServiceTestSuite) TestHasPermission_Denied() {
	ctx := context.Background()
	claims := &token.Claims{UserID: "user1", RoleID: "role1", TenantID: "tenant1"}
	s.mockPermissions.On("HasGrant", ctx, "role1", "LMS_REWARD_DELETE").Return(false, nil)

	_, err := s.service.HasPermission(ctx, &gorm.DB{}, claims, "LMS_REWARD_DELETE")

	s.Error(err)
	s.Equal(apperror.KindForbidden, apperror.KindOf(err))
	s.Equal("Insufficient permissions. Required: LMS_REWARD_DELETE", apperror.MessageOf(err))
}

func (s *PermissionServiceTestSuite) TestHasPermission_SuperAdmin() {
	ctx := context.Background()
	claims := &token.Claims{UserID: "user1", RoleID: "role1", TenantID: "tenant1", SuperAdmin: true}

	resp, err := s.service.HasPermission(ctx, &gorm.DB{}, claims, "LMS_ANYTHING")

	s.NoError(err)
	s.True(resp.HasPermission)
	s.True(resp.IsSuperAdmin)
	s.mockPermissions.AssertNotCalled(s.T(), "HasGrant", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PermissionServiceTestSuite) TestHasPermission_ForeignNamespace() {
	claims := &token.Claims{UserID: "user1", RoleID: "role1", TenantID: "tenant1"}

	_, err := s.service.HasPermission(context.Background(), &gorm.DB{}, claims, "HR_PAYROLL_VIEW")

	s.Error(err)
	s.Equal(apperror.KindBadRequest, apperror.KindOf(err))
	s.mockPermissions.AssertNotCalled(s.T(), "HasGrant", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PermissionServiceTestSuite) TestHasPermission_EmptyName() {
	claims := &token.Claims{UserID: "user1", RoleID: "role1", TenantID: "tenant1"}

	_, err := s.service.HasPermission(context.Background(), &gorm.DB{}, claims, "")

	s.Error(err)
	s.Equal(apperror.KindBadRequest, apperror.KindOf(err))
}

func (s *PermissionServiceTestSuite) TestHasPermission_LookupError() {
	ctx := context.Background()
	claims := &token.Claims{UserID: "user1", RoleID: "role1", TenantID: "tenant1"}
	s.mockPermissions.On("HasGrant", ctx, "role1", "LMS_REWARD_VIEW").
		Return(false, errors.New("connection reset"))

	_, err := s.service.HasPermission(ctx, &gorm.DB{}, claims, "LMS_REWARD_VIEW")

	s.Error(err)
	s.Equal(apperror.KindInternal, apperror.KindOf(err))
}
