package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/campuslms/rewards-api/internal/api/dto"
	"github.com/campuslms/rewards-api/internal/mocks"
	"github.com/campuslms/rewards-api/internal/repository"
	"github.com/campuslms/rewards-api/internal/token"
	"github.com/campuslms/rewards-api/internal/utils"
	"github.com/campuslms/rewards-api/pkg/logger"
)

type PermissionMiddlewareTestSuite struct {
	suite.Suite
	mockPermissions *mocks.PermissionRepository
	middleware      *PermissionMiddleware
}

func TestPermissionMiddleware(t *testing.T) {
	suite.Run(t, new(PermissionMiddlewareTestSuite))
}

func (s *PermissionMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockPermissions = new(mocks.PermissionRepository)

	tenantData := new(mocks.TenantData)
	tenantData.On("Permissions").Return(s.mockPermissions).Maybe()

	factory := func(db *gorm.DB) repository.TenantData { return tenantData }
	s.middleware = NewPermissionMiddlewareWithFactory(factory, logger.NewNop())
}

func (s *PermissionMiddlewareTestSuite) serve(permission string, claims *token.Claims, withDB bool) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/probe",
		func(c *gin.Context) {
			if claims != nil {
				c.Set(string(utils.ClaimsKey), claims)
			}
			if withDB {
				c.Set(string(utils.TenantDBKey), &gorm.DB{})
			}
		},
		s.middleware.RequirePermission(permission),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(w, req)
	return w
}

func (s *PermissionMiddlewareTestSuite) envelope(w *httptest.ResponseRecorder) dto.Envelope {
	var env dto.Envelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func (s *PermissionMiddlewareTestSuite) TestRequirePermission_NoClaims() {
	w := s.serve("LMS_REWARD_VIEW", nil, true)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("authentication required", s.envelope(w).Message)
}

func (s *PermissionMiddlewareTestSuite) TestRequirePermission_NoTenantDB() {
	claims := &token.Claims{UserID: "user1", RoleID: "role1", TenantID: "tenant1"}

	w := s.serve("LMS_REWARD_VIEW", claims, false)

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal("tenant database not initialized", s.envelope(w).Message)
}

func (s *PermissionMiddlewareTestSuite) TestRequirePermission_SuperAdminBypasses() {
	claims := &token.Claims{UserID: "user1", RoleID: "role1", TenantID: "tenant1", SuperAdmin: true}

	w := s.serve("LMS_REWARD_DELETE", claims, true)

	s.Equal(http.StatusOK, w.Code)
	s.mockPermissions.AssertNotCalled(s.T(), "HasGrant", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PermissionMiddlewareTestSuite) TestRequirePermission_Granted() {
	claims := &token.Claims{UserID: "user1", RoleID: "role1", TenantID: "tenant1"}
	s.mockPermissions.On("HasGrant", mock.Anything, "role1", "LMS_REWARD_VIEW").Return(true, nil)

	w := s.serve("LMS_REWARD_VIEW", claims, true)

	s.Equal(http.StatusOK, w.Code)
	s.mockPermissions.AssertExpectations(s.T())
}

func (s *PermissionMiddlewareTestSuite) TestRequirePermission_Denied() {
	claims := &token.Claims{UserID: "user1", RoleID: "role1", TenantID: "tenant1"}
	s.mockPermissions.On("HasGrant", mock.Anything, "role1", "LMS_REWARD_DELETE").Return(false, nil)

	w := s.serve("LMS_REWARD_DELETE", claims, true)

	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("Insufficient permissions. Required: LMS_REWARD_DELETE", s.envelope(w).Message)
}

func (s *PermissionMiddlewareTestSuite) TestRequirePermission_LookupError() {
	claims := &token.Claims{UserID: "user1", RoleID: "role1", TenantID: "tenant1"}
	s.mockPermissions.On("HasGrant", mock.Anything, "role1", "LMS_REWARD_VIEW").
		Return(false, errors.New("connection reset"))

	w := s.serve("LMS_REWARD_VIEW", claims, true)

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal("error validating permissions", s.envelope(w).Message)
}
