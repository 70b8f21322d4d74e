package v1

import (
	"net/http"
	"time"

	"go-ats-dashboard/config"
	"go-ats-dashboard/internal/delivery/http/middleware"
	"go-ats-dashboard/internal/delivery/http/response"
	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/internal/usecase"
	"go-ats-dashboard/pkg/audit"
	"go-ats-dashboard/pkg/auth"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	CandidateUC domain.CandidateUsecase
	JobUC       domain.JobUsecase
	DashboardUC domain.DashboardUsecase
	ExportUC    domain.ExportUsecase
	HealthUC    usecase.HealthUsecase
	Tokens      *auth.TokenManager
	Audit       *audit.Logger
	// Redis backs the shared rate-limit counters. Nil keeps them in memory.
	Redis  *goredis.Client
	Config *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	r.Use(middleware.CORSMiddleware(cfg.FrontendURL, cfg.GinMode == gin.ReleaseMode))
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		report := deps.HealthUC.Check(c.Request.Context())
		if report["status"] != "ok" {
			response.Error(c, http.StatusServiceUnavailable, "System degraded", report)
			return
		}
		response.Success(c, http.StatusOK, "System operational", report)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limited := v1.Group("")
	limited.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Limit:  cfg.RateLimitGlobalThreshold,
		Window: time.Duration(cfg.RateLimitWindowSeconds) * time.Second,
		Client: deps.Redis,
		Audit:  deps.Audit,
	}))

	// /auth/me needs a user whatever AUTH_REQUIRED says.
	session := limited.Group("")
	session.Use(middleware.AuthMiddleware(deps.Tokens, true))
	NewAuthHandler(limited, session, deps.AuthUC)

	protected := limited.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, cfg.AuthRequired))
	{
		NewCandidateHandler(protected, deps.CandidateUC)
		NewJobHandler(protected, deps.JobUC)
		NewDashboardHandler(protected, deps.DashboardUC)
		NewExportHandler(protected, deps.ExportUC)
	}

	return r
}
