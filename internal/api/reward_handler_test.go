package api

import (
	"bytes"
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
	"github.com/campuslms/rewards-api/internal/domain"
	"github.com/campuslms/rewards-api/internal/token"
	"github.com/campuslms/rewards-api/internal/utils"
)

type MockRewardService struct {
	mock.Mock
}

func (m *MockRewardService) Create(ctx context.Context, db *gorm.DB, req dto.CreateRewardRequest) (*dto.RewardResponse, error) {
	args := m.Called(ctx, db, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RewardResponse), args.Error(1)
}

func (m *MockRewardService) List(ctx context.Context, db *gorm.DB, filter domain.RewardFilter) (*dto.RewardListResponse, error) {
	args := m.Called(ctx, db, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RewardListResponse), args.Error(1)
}

func (m *MockRewardService) GetByID(ctx context.Context, db *gorm.DB, id string) (*dto.RewardResponse, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RewardResponse), args.Error(1)
}

func (m *MockRewardService) Update(ctx context.Context, db *gorm.DB, id string, req dto.UpdateRewardRequest) (*dto.RewardResponse, error) {
	args := m.Called(ctx, db, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RewardResponse), args.Error(1)
}

func (m *MockRewardService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockRewardService) HistoryForUser(ctx context.Context, db *gorm.DB, userID string, filter domain.RewardFilter) (*dto.RewardHistoryResponse, error) {
	args := m.Called(ctx, db, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RewardHistoryResponse), args.Error(1)
}

type RewardHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockRewardService
	handler     *RewardHandler
	db          *gorm.DB
	claims      *token.Claims
}

func TestRewardHandler(t *testing.T) {
	suite.Run(t, new(RewardHandlerTestSuite))
}

func (s *RewardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockRewardService)
	s.handler = NewRewardHandler(s.mockService)
	s.db = &gorm.DB{}
	s.claims = &token.Claims{UserID: "user1", RoleID: "role1", TenantID: "tenant1"}

	s.router = gin.New()
	seed := func(c *gin.Context) {
		c.Set(string(utils.ClaimsKey), s.claims)
		c.Set(string(utils.TenantDBKey), s.db)
	}
	s.router.POST("/rewards", seed, s.handler.CreateReward)
	s.router.GET("/rewards", seed, s.handler.ListRewards)
	s.router.GET("/rewards/history", seed, s.handler.RewardHistory)
	s.router.GET("/rewards/:id", seed, s.handler.GetReward)
	s.router.PUT("/rewards/:id", seed, s.handler.UpdateReward)
	s.router.DELETE("/rewards/:id", seed, s.handler.DeleteReward)
}

func (s *RewardHandlerTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RewardHandlerTestSuite) envelope(w *httptest.ResponseRecorder) dto.Envelope {
	var env dto.Envelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func (s *RewardHandlerTestSuite) TestCreateReward_Success() {
	req := dto.CreateRewardRequest{Title: "Campus Hoodie", Coins: 500}
	resp := &dto.RewardResponse{ID: "reward1", Title: "Campus Hoodie", Coins: 500}

	s.mockService.On("Create", mock.Anything, s.db, req).Return(resp, nil)

	w := s.request(http.MethodPost, "/rewards", req)

	s.Equal(http.StatusCreated, w.Code)
	s.Equal("reward created", s.envelope(w).Message)
	s.mockService.AssertExpectations(s.T())
}

func (s *RewardHandlerTestSuite) TestCreateReward_RejectsNonPositiveCoins() {
	w := s.request(http.MethodPost, "/rewards", map[string]any{"title": "Hoodie", "coins": 0})

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

func (s *RewardHandlerTestSuite) TestListRewards_PassesPaging() {
	filter := domain.RewardFilter{Page: 2, PageSize: 5}
	resp := &dto.RewardListResponse{
		Data: []dto.RewardResponse{{ID: "reward1", Title: "Hoodie"}},
		Meta: dto.PageMeta{Total: 6, Page: 2, Limit: 5, TotalPages: 2},
	}

	s.mockService.On("List", mock.Anything, s.db, filter).Return(resp, nil)

	w := s.request(http.MethodGet, "/rewards?page=2&limit=5", nil)

	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *RewardHandlerTestSuite) TestGetReward_NotFound() {
	s.mockService.On("GetByID", mock.Anything, s.db, "missing").
		Return(nil, apperror.NotFound("reward not found"))

	w := s.request(http.MethodGet, "/rewards/missing", nil)

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("reward not found", s.envelope(w).Message)
}

func (s *RewardHandlerTestSuite) TestUpdateReward_Success() {
	req := dto.UpdateRewardRequest{Title: "Premium Hoodie", Coins: 750}
	resp := &dto.RewardResponse{ID: "reward1", Title: "Premium Hoodie", Coins: 750}

	s.mockService.On("Update", mock.Anything, s.db, "reward1", req).Return(resp, nil)

	w := s.request(http.MethodPut, "/rewards/reward1", req)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("reward updated", s.envelope(w).Message)
}

func (s *RewardHandlerTestSuite) TestDeleteReward_Success() {
	s.mockService.On("Delete", mock.Anything, s.db, "reward1").Return(nil)

	w := s.request(http.MethodDelete, "/rewards/reward1", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("reward deleted", s.envelope(w).Message)
}

func (s *RewardHandlerTestSuite) TestRewardHistory_UsesCallerIdentity() {
	filter := domain.RewardFilter{Page: 1, PageSize: 10}
	resp := &dto.RewardHistoryResponse{
		Data: []dto.RewardHistoryEntry{{ID: "order1", Status: "ordered"}},
		Meta: dto.PageMeta{Total: 1, Page: 1, Limit: 10, TotalPages: 1},
	}

	s.mockService.On("HistoryForUser", mock.Anything, s.db, "user1", filter).Return(resp, nil)

	w := s.request(http.MethodGet, "/rewards/history", nil)

	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}
