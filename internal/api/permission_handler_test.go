package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/campuslms/rewards-api/internal/api/dto"
	"github.com/campuslms/rewards-api/internal/apperror"
	"github.com/campuslms/rewards-api/internal/token"
	"github.com/campuslms/rewards-api/internal/utils"
)

type MockPermissionService struct {
	mock.Mock
}

func (m *MockPermissionService) HasPermission(ctx context.Context, db *gorm.DB, claims *token.Claims, permission string) (*dto.PermissionCheckResponse, error) {
	args := m.Called(ctx, db, claims, permission)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PermissionCheckResponse), args.Error(1)
}

type PermissionHandlerTestSuite struct {
	suite.Suite
	mockService *MockPermissionService
	handler     *PermissionHandler
}

func TestPermissionHandler(t *testing.T) {
	suite.Run(t, new(PermissionHandlerTestSuite))
}

func (s *PermissionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockPermissionService)
	s.handler = NewPermissionHandler(s.mockService)
}

// serve routes the check through a stand-in for the auth and tenant
// middleware that seeds the gin context the way the real chain does.
func (s *PermissionHandlerTestSuite) serve(permission string, claims *token.Claims, db *gorm.DB) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/permission/has-permission/:permission",
		func(c *gin.Context) {
			if claims != nil {
				c.Set(string(utils.ClaimsKey), claims)
			}
			if db != nil {
				c.Set(string(utils.TenantDBKey), db)
			}
		},
		s.handler.HasPermission,
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/permission/has-permission/"+permission, nil)
	router.ServeHTTP(w, req)
	return w
}

func (s *PermissionHandlerTestSuite) TestHasPermission_Granted() {
	claims := &token.Claims{UserID: "user1", RoleID: "role1", TenantID: "tenant1"}
	db := &gorm.DB{}

	s.mockService.On("HasPermission", mock.Anything, db, claims, "LMS_REWARD_VIEW").
		Return(&dto.PermissionCheckResponse{HasPermission: true}, nil)

	w := s.serve("LMS_REWARD_VIEW", claims, db)

	s.Equal(http.StatusOK, w.Code)

	var env dto.Envelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &env))
	s.Equal("permission check successful", env.Message)

	data := env.Data.(map[string]any)
	s.Equal(true, data["hasPermission"])
	s.mockService.AssertExpectations(s.T())
}

func (s *PermissionHandlerTestSuite) TestHasPermission_Denied() {
	claims := &token.Claims{UserID: "user1", RoleID: "role1", TenantID: "tenant1"}
	db := &gorm.DB{}

	s.mockService.On("HasPermission", mock.Anything, db, claims, "LMS_REWARD_DELETE").
		Return(nil, apperror.Newf(apperror.KindForbidden,
			"Insufficient permissions. Required: %s", "LMS_REWARD_DELETE"))

	w := s.serve("LMS_REWARD_DELETE", claims, db)

	s.Equal(http.StatusForbidden, w.Code)

	var env dto.Envelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &env))
	s.Equal("Insufficient permissions. Required: LMS_REWARD_DELETE", env.Message)
}

func (s *PermissionHandlerTestSuite) TestHasPermission_NoClaims() {
	w := s.serve("LMS_REWARD_VIEW", nil, &gorm.DB{})

	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockService.AssertNotCalled(s.T(), "HasPermission",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *PermissionHandlerTestSuite) TestHasPermission_NoTenantDB() {
	claims := &token.Claims{UserID: "user1", RoleID: "role1", TenantID: "tenant1"}

	w := s.serve("LMS_REWARD_VIEW", claims, nil)

	s.Equal(http.StatusInternalServerError, w.Code)
}
