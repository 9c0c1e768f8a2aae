package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kestrelpoint/funddesk-backend/internal/logger"
	"github.com/kestrelpoint/funddesk-backend/internal/result"
	"github.com/kestrelpoint/funddesk-backend/internal/types"
)

type ContactRepo interface {
	Add(ctx context.Context, tx *gorm.DB, contact *types.Contact) result.Result[*types.Contact]
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[*types.Contact]
	GetAll(ctx context.Context, tx *gorm.DB, includeDeleted bool) result.Result[[]*types.Contact]
	Update(ctx context.Context, tx *gorm.DB, contact *types.Contact) result.Result[*types.Contact]
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[bool]
	SoftDelete(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[bool]
	Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[bool]
	Exists(ctx context.Context, tx *gorm.DB, id uuid.UUID, includeDeleted bool) result.Result[bool]
}

type contactRepo struct {
	*BaseRepo[types.Contact, *types.Contact]
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
	repoLog := baseLog.With("repo", "ContactRepo")
	return &contactRepo{NewBaseRepo[types.Contact, *types.Contact](db, repoLog, "Contact")}
}
