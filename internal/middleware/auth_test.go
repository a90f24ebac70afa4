package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/campuslms/rewards-api/internal/token"
	"github.com/campuslms/rewards-api/internal/utils"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	tokens     *token.Manager
	middleware *AuthMiddleware
}

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.tokens = token.NewManager("test-secret", time.Hour)
	s.middleware = NewAuthMiddleware(s.tokens)
}

func (s *AuthMiddlewareTestSuite) serve(authHeader string) (*httptest.ResponseRecorder, *token.Claims) {
	var seen *token.Claims

	router := gin.New()
	router.GET("/probe", s.middleware.JWTAuth(), func(c *gin.Context) {
		if claims, ok := claimsFromGin(c); ok {
			seen = claims
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w, seen
}

func (s *AuthMiddlewareTestSuite) TestJWTAuth_MissingHeader() {
	w, _ := s.serve("")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestJWTAuth_MalformedHeader() {
	w, _ := s.serve("Token abc123")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestJWTAuth_InvalidToken() {
	w, _ := s.serve("Bearer not.a.token")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestJWTAuth_ValidToken() {
	signed, err := s.tokens.Issue(&token.Claims{
		UserID:   "user1",
		RoleID:   "role1",
		TenantID: "tenant1",
	})
	s.NoError(err)

	w, seen := s.serve("Bearer " + signed)

	s.Equal(http.StatusOK, w.Code)
	s.NotNil(seen)
	s.Equal("user1", seen.UserID)
	s.Equal("tenant1", seen.TenantID)
}

func (s *AuthMiddlewareTestSuite) TestJWTAuth_CaseInsensitiveScheme() {
	signed, err := s.tokens.Issue(&token.Claims{
		UserID:   "user1",
		RoleID:   "role1",
		TenantID: "tenant1",
	})
	s.NoError(err)

	w, _ := s.serve("bearer " + signed)
	s.Equal(http.StatusOK, w.Code)
}

// Claims stored by the middleware must survive the trip into a plain
// context.Context for service-layer readers.
func TestClaimsContextRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	want := &token.Claims{UserID: "user1", RoleID: "role1", TenantID: "tenant1"}
	c.Set(string(utils.ClaimsKey), want)

	got, ok := claimsFromGin(c)
	if !ok {
		t.Fatal("expected claims on gin context")
	}
	if got.UserID != want.UserID {
		t.Errorf("got user %q, want %q", got.UserID, want.UserID)
	}
}
