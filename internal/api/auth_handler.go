package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuslms/rewards-api/internal/api/dto"
	"github.com/campuslms/rewards-api/internal/apperror"
)

//go:generate mockery --name AuthService --output ../mocks
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthHandler struct {
	*BaseHandler
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login godoc
// @Summary Log a user in
// @Description Authenticates against the tenant database derived from the email's domain and returns a bearer token with the caller's permissions
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.Envelope{data=dto.LoginResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondError(c, apperror.BadRequest(err.Error()))
		return
	}

	resp, err := h.service.Login(h.RequestCtx(c), req)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	dto.Respond(c, http.StatusOK, "login successful", resp)
}
