package repos

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kestrelpoint/funddesk-backend/internal/domain"
	"github.com/kestrelpoint/funddesk-backend/internal/logger"
	"github.com/kestrelpoint/funddesk-backend/internal/result"
	"github.com/kestrelpoint/funddesk-backend/internal/types"
)

type FundRepo interface {
	Add(ctx context.Context, tx *gorm.DB, fund *types.Fund) result.Result[*types.Fund]
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[*types.Fund]
	GetAll(ctx context.Context, tx *gorm.DB, includeDeleted bool) result.Result[[]*types.Fund]
	Update(ctx context.Context, tx *gorm.DB, fund *types.Fund) result.Result[*types.Fund]
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[bool]
	SoftDelete(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[bool]
	Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[bool]
	Exists(ctx context.Context, tx *gorm.DB, id uuid.UUID, includeDeleted bool) result.Result[bool]
	ExistsByName(ctx context.Context, tx *gorm.DB, name string) result.Result[bool]
}

type fundRepo struct {
	*BaseRepo[types.Fund, *types.Fund]
}

func NewFundRepo(db *gorm.DB, baseLog *logger.Logger) FundRepo {
	repoLog := baseLog.With("repo", "FundRepo")
	return &fundRepo{NewBaseRepo[types.Fund, *types.Fund](db, repoLog, "Fund")}
}

// ExistsByName reports whether a non-deleted fund already carries this
// name, comparing case-insensitively after trimming both sides. The
// comparison runs in memory over the active funds; the partial unique
// index on lower(trim(name)) is the store-level guarantee, this check is
// the fast path with the better error message.
func (fr *fundRepo) ExistsByName(ctx context.Context, tx *gorm.DB, name string) result.Result[bool] {
	trimmed := strings.TrimSpace(name)

	var rows []*types.Fund
	if err := fr.scope(fr.resolve(tx).WithContext(ctx), false).Find(&rows).Error; err != nil {
		fr.log.Error("exists by name failed", "entity", "Fund", "error", err)
		return result.InternalServerError[bool](domain.ServerError("Fund", err.Error()))
	}

	for _, fund := range rows {
		if strings.EqualFold(strings.TrimSpace(fund.Name), trimmed) {
			return result.Success(true)
		}
	}
	return result.Success(false)
}
