package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kestrelpoint/funddesk-backend/internal/logger"
	"github.com/kestrelpoint/funddesk-backend/internal/types"
	"github.com/kestrelpoint/funddesk-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "funddesk", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	serviceLog.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	return &PostgresService{db: db, log: serviceLog}, nil
}

// AutoMigrateAll creates the three tables and then applies the constraints
// AutoMigrate cannot express: restrict-on-delete foreign keys from
// fund_contacts and the partial unique indexes that make the uniqueness
// checks race-proof at the store level.
func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := s.db.AutoMigrate(
		&types.Contact{},
		&types.Fund{},
		&types.FundContact{},
	); err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring constraints for postgres tables...")
	stmts := []string{
		`ALTER TABLE "fund_contacts"
		 DROP CONSTRAINT IF EXISTS "fk_fund_contacts_contact_id"`,
		`ALTER TABLE "fund_contacts"
		 ADD CONSTRAINT "fk_fund_contacts_contact_id"
		 FOREIGN KEY ("contact_id")
		 REFERENCES "contacts"("id")
		 ON DELETE RESTRICT`,
		`ALTER TABLE "fund_contacts"
		 DROP CONSTRAINT IF EXISTS "fk_fund_contacts_fund_id"`,
		`ALTER TABLE "fund_contacts"
		 ADD CONSTRAINT "fk_fund_contacts_fund_id"
		 FOREIGN KEY ("fund_id")
		 REFERENCES "funds"("id")
		 ON DELETE RESTRICT`,
		`CREATE UNIQUE INDEX IF NOT EXISTS "idx_funds_name_active"
		 ON "funds" (lower(trim(name)))
		 WHERE is_deleted = false`,
		`CREATE UNIQUE INDEX IF NOT EXISTS "idx_fund_contacts_pair_active"
		 ON "fund_contacts" ("contact_id", "fund_id")
		 WHERE is_deleted = false`,
	}
	for _, stmt := range stmts {
		if err := s.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to apply migration statement: %w", err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
