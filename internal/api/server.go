package api

import (
	"github.com/gin-gonic/gin"

	"github.com/campuslms/rewards-api/internal/config"
	"github.com/campuslms/rewards-api/internal/middleware"
)

type Server struct {
	auth       *AuthHandler
	permission *PermissionHandler
	reward     *RewardHandler
	ops        *OpsHandler

	authMW      *middleware.AuthMiddleware
	tenantMW    *middleware.TenantMiddleware
	permMW      *middleware.PermissionMiddleware
	rateLimitMW *middleware.RateLimitMiddleware

	globalRateLimit int
}

func NewServer(
	authService AuthService,
	permissionService PermissionService,
	rewardService RewardService,
	pool PoolStats,
	authMW *middleware.AuthMiddleware,
	tenantMW *middleware.TenantMiddleware,
	permMW *middleware.PermissionMiddleware,
	rateLimitMW *middleware.RateLimitMiddleware,
	cfg *config.Config,
) *Server {
	return &Server{
		auth:            NewAuthHandler(authService),
		permission:      NewPermissionHandler(permissionService),
		reward:          NewRewardHandler(rewardService),
		ops:             NewOpsHandler(pool),
		authMW:          authMW,
		tenantMW:        tenantMW,
		permMW:          permMW,
		rateLimitMW:     rateLimitMW,
		globalRateLimit: cfg.GlobalRateLimit,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(middleware.RequestID())
	api.Use(s.rateLimitMW.GlobalRateLimit(s.globalRateLimit))

	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", s.auth.Login)
		}

		// Everything below needs a verified token and a resolved tenant
		// connection before its handler runs.
		protected := []gin.HandlerFunc{
			s.authMW.JWTAuth(),
			s.rateLimitMW.TenantRateLimit(),
			s.tenantMW.ResolveTenant(),
		}

		permission := api.Group("/permission", protected...)
		{
			permission.GET("/has-permission/:permission", s.permission.HasPermission)
		}

		rewards := api.Group("/rewards", protected...)
		{
			rewards.POST("", s.permMW.RequirePermission("LMS_REWARD_CREATE"), s.reward.CreateReward)
			rewards.GET("", s.permMW.RequirePermission("LMS_REWARD_VIEW"), s.reward.ListRewards)
			rewards.GET("/history", s.permMW.RequirePermission("LMS_REWARD_VIEW"), s.reward.RewardHistory)
			rewards.GET("/:id", s.permMW.RequirePermission("LMS_REWARD_VIEW"), s.reward.GetReward)
			rewards.PUT("/:id", s.permMW.RequirePermission("LMS_REWARD_UPDATE"), s.reward.UpdateReward)
			rewards.DELETE("/:id", s.permMW.RequirePermission("LMS_REWARD_DELETE"), s.reward.DeleteReward)
		}

		ops := api.Group("/ops", s.authMW.JWTAuth())
		{
			ops.GET("/pool-stats", s.ops.TenantPoolStats)
		}
	}
}
