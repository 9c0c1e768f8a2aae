package app

import (
	"github.com/kestrelpoint/funddesk-backend/internal/logger"
	"github.com/kestrelpoint/funddesk-backend/internal/utils"
)

type Config struct {
	ServiceName  string
	Environment  string
	Version      string
	HTTPAddr     string
	AuthEnabled  bool
	JWTSecretKey string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		ServiceName:  utils.GetEnv("SERVICE_NAME", "funddesk-backend", log),
		Environment:  utils.GetEnv("ENVIRONMENT", "development", log),
		Version:      utils.GetEnv("SERVICE_VERSION", "dev", log),
		HTTPAddr:     utils.GetEnv("HTTP_ADDR", ":8080", log),
		AuthEnabled:  utils.GetEnvAsBool("AUTH_ENABLED", false, log),
		JWTSecretKey: utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log),
	}
}
