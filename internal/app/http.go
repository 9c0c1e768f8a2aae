package app

import (
	"github.com/gin-gonic/gin"

	"github.com/kestrelpoint/funddesk-backend/internal/handlers"
	"github.com/kestrelpoint/funddesk-backend/internal/logger"
	"github.com/kestrelpoint/funddesk-backend/internal/middleware"
	"github.com/kestrelpoint/funddesk-backend/internal/server"
)

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

type Handlers struct {
	Contact     *handlers.ContactHandler
	Fund        *handlers.FundHandler
	FundContact *handlers.FundContactHandler
}

func wireMiddleware(log *logger.Logger, cfg Config) Middleware {
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log, cfg.AuthEnabled, cfg.JWTSecretKey),
	}
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Contact:     handlers.NewContactHandler(log, s.Contact),
		Fund:        handlers.NewFundHandler(log, s.Fund),
		FundContact: handlers.NewFundContactHandler(log, s.FundContact),
	}
}

func wireRouter(log *logger.Logger, cfg Config, h Handlers, mw Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:                log,
		ServiceName:        cfg.ServiceName,
		AuthMiddleware:     mw.Auth,
		ContactHandler:     h.Contact,
		FundHandler:        h.Fund,
		FundContactHandler: h.FundContact,
	})
}
