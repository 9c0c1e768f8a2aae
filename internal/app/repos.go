package app

import (
	"gorm.io/gorm"

	"github.com/kestrelpoint/funddesk-backend/internal/logger"
	"github.com/kestrelpoint/funddesk-backend/internal/repos"
)

type Repos struct {
	Contact     repos.ContactRepo
	Fund        repos.FundRepo
	FundContact repos.FundContactRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Contact:     repos.NewContactRepo(db, log),
		Fund:        repos.NewFundRepo(db, log),
		FundContact: repos.NewFundContactRepo(db, log),
	}
}
