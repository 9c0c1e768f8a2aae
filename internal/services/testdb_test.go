package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kestrelpoint/funddesk-backend/internal/logger"
	"github.com/kestrelpoint/funddesk-backend/internal/repos"
	"github.com/kestrelpoint/funddesk-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// A single in-memory sqlite database only exists on one connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&types.Contact{}, &types.Fund{}, &types.FundContact{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type testDeps struct {
	db              *gorm.DB
	log             *logger.Logger
	contactRepo     repos.ContactRepo
	fundRepo        repos.FundRepo
	fundContactRepo repos.FundContactRepo
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()
	db := newTestDB(t)
	log := logger.NewNop()
	return testDeps{
		db:              db,
		log:             log,
		contactRepo:     repos.NewContactRepo(db, log),
		fundRepo:        repos.NewFundRepo(db, log),
		fundContactRepo: repos.NewFundContactRepo(db, log),
	}
}

func (d testDeps) contactService() ContactService {
	return NewContactService(d.db, d.log, d.contactRepo, d.fundContactRepo)
}

func (d testDeps) fundService() FundService {
	return NewFundService(d.db, d.log, d.fundRepo)
}

func (d testDeps) fundContactService() FundContactService {
	return NewFundContactService(d.db, d.log, d.contactRepo, d.fundRepo, d.fundContactRepo)
}
