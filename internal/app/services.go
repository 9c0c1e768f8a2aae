package app

import (
	"gorm.io/gorm"

	"github.com/kestrelpoint/funddesk-backend/internal/logger"
	"github.com/kestrelpoint/funddesk-backend/internal/services"
)

type Services struct {
	Contact     services.ContactService
	Fund        services.FundService
	FundContact services.FundContactService
}

func wireServices(db *gorm.DB, log *logger.Logger, r Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Contact:     services.NewContactService(db, log, r.Contact, r.FundContact),
		Fund:        services.NewFundService(db, log, r.Fund),
		FundContact: services.NewFundContactService(db, log, r.Contact, r.Fund, r.FundContact),
	}
}
