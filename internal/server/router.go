package server

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/kestrelpoint/funddesk-backend/internal/domain"
	"github.com/kestrelpoint/funddesk-backend/internal/handlers"
	"github.com/kestrelpoint/funddesk-backend/internal/logger"
	"github.com/kestrelpoint/funddesk-backend/internal/middleware"
)

type RouterConfig struct {
	Log                *logger.Logger
	ServiceName        string
	AuthMiddleware     *middleware.AuthMiddleware
	ContactHandler     *handlers.ContactHandler
	FundHandler        *handlers.FundHandler
	FundContactHandler *handlers.FundContactHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	// Panics become the generic 500 problem body instead of an empty reply.
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		handlers.RespondProblem(c, http.StatusInternalServerError,
			domain.ServerError("General", fmt.Sprint(recovered)))
		c.Abort()
	}))
	router.Use(middleware.RequestLogger(cfg.Log))
	if cfg.ServiceName != "" {
		router.Use(otelgin.Middleware(cfg.ServiceName))
	}

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	if cfg.AuthMiddleware != nil {
		api.Use(cfg.AuthMiddleware.RequireAuth())
	}

	// Contacts
	if cfg.ContactHandler != nil {
		api.POST("/contacts", cfg.ContactHandler.Create)
		api.GET("/contacts/:id", cfg.ContactHandler.Get)
		api.PUT("/contacts/:id", cfg.ContactHandler.Update)
		api.DELETE("/contacts/:id", cfg.ContactHandler.Delete)
	}

	// Funds
	if cfg.FundHandler != nil {
		api.POST("/funds", cfg.FundHandler.Create)
		api.POST("/funds/batch", cfg.FundHandler.CreateBatch)
		api.GET("/funds", cfg.FundHandler.GetAll)
		api.GET("/funds/:id", cfg.FundHandler.Get)
		api.DELETE("/funds/:id", cfg.FundHandler.Delete)
		api.POST("/funds/:id/restore", cfg.FundHandler.Restore)
	}

	// Fund contacts
	if cfg.FundContactHandler != nil {
		api.POST("/fundcontacts", cfg.FundContactHandler.Assign)
		api.DELETE("/fundcontacts/:contactId/funds/:fundId", cfg.FundContactHandler.Remove)
		api.GET("/fundcontacts/funds/:fundId/contacts", cfg.FundContactHandler.ContactsByFund)
		api.GET("/fundcontacts/contacts/:contactId/funds", cfg.FundContactHandler.FundsByContact)
	}

	return router
}
