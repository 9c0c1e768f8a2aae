package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kestrelpoint/funddesk-backend/internal/domain"
	"github.com/kestrelpoint/funddesk-backend/internal/logger"
	"github.com/kestrelpoint/funddesk-backend/internal/result"
	"github.com/kestrelpoint/funddesk-backend/internal/types"
)

type FundContactRepo interface {
	Add(ctx context.Context, tx *gorm.DB, fc *types.FundContact) result.Result[*types.FundContact]
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[*types.FundContact]
	GetAll(ctx context.Context, tx *gorm.DB, includeDeleted bool) result.Result[[]*types.FundContact]
	GetByContactAndFund(ctx context.Context, tx *gorm.DB, contactID, fundID uuid.UUID) result.Result[*types.FundContact]
	GetByFundID(ctx context.Context, tx *gorm.DB, fundID uuid.UUID) result.Result[[]*types.FundContact]
	GetByContactID(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) result.Result[[]*types.FundContact]
	ExistsPair(ctx context.Context, tx *gorm.DB, contactID, fundID uuid.UUID) result.Result[bool]
	DeletePair(ctx context.Context, tx *gorm.DB, contactID, fundID uuid.UUID) result.Result[bool]
	ContactHasFundAssignments(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) result.Result[bool]
}

type fundContactRepo struct {
	*BaseRepo[types.FundContact, *types.FundContact]
}

func NewFundContactRepo(db *gorm.DB, baseLog *logger.Logger) FundContactRepo {
	repoLog := baseLog.With("repo", "FundContactRepo")
	return &fundContactRepo{NewBaseRepo[types.FundContact, *types.FundContact](db, repoLog, "FundContact")}
}

func (fcr *fundContactRepo) GetByContactAndFund(ctx context.Context, tx *gorm.DB, contactID, fundID uuid.UUID) result.Result[*types.FundContact] {
	var row types.FundContact
	err := fcr.scope(
		fcr.resolve(tx).WithContext(ctx).Where("contact_id = ? AND fund_id = ?", contactID, fundID),
		false,
	).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fcr.log.Warn("assignment not found", "contact_id", contactID, "fund_id", fundID)
		return result.NotFound[*types.FundContact](domain.NotFound("FundContact"))
	}
	if err != nil {
		fcr.log.Error("assignment lookup failed", "contact_id", contactID, "fund_id", fundID, "error", err)
		return result.InternalServerError[*types.FundContact](domain.ServerError("FundContact", err.Error()))
	}
	return result.Success(&row)
}

// GetByFundID lists active assignments for a fund with the related Contact
// loaded for display.
func (fcr *fundContactRepo) GetByFundID(ctx context.Context, tx *gorm.DB, fundID uuid.UUID) result.Result[[]*types.FundContact] {
	var rows []*types.FundContact
	err := fcr.scope(
		fcr.resolve(tx).WithContext(ctx).Preload("Contact").Where("fund_id = ?", fundID),
		false,
	).Find(&rows).Error
	if err != nil {
		fcr.log.Error("list by fund failed", "fund_id", fundID, "error", err)
		return result.InternalServerError[[]*types.FundContact](domain.ServerError("FundContact", err.Error()))
	}
	return result.Success(rows)
}

// GetByContactID lists active assignments for a contact with the related
// Fund loaded.
func (fcr *fundContactRepo) GetByContactID(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) result.Result[[]*types.FundContact] {
	var rows []*types.FundContact
	err := fcr.scope(
		fcr.resolve(tx).WithContext(ctx).Preload("Fund").Where("contact_id = ?", contactID),
		false,
	).Find(&rows).Error
	if err != nil {
		fcr.log.Error("list by contact failed", "contact_id", contactID, "error", err)
		return result.InternalServerError[[]*types.FundContact](domain.ServerError("FundContact", err.Error()))
	}
	return result.Success(rows)
}

func (fcr *fundContactRepo) ExistsPair(ctx context.Context, tx *gorm.DB, contactID, fundID uuid.UUID) result.Result[bool] {
	var count int64
	err := fcr.scope(
		fcr.resolve(tx).WithContext(ctx).Model(&types.FundContact{}).
			Where("contact_id = ? AND fund_id = ?", contactID, fundID),
		false,
	).Count(&count).Error
	if err != nil {
		fcr.log.Error("pair exists check failed", "contact_id", contactID, "fund_id", fundID, "error", err)
		return result.InternalServerError[bool](domain.ServerError("FundContact", err.Error()))
	}
	return result.Success(count > 0)
}

// DeletePair hard-deletes an assignment, reusing GetByContactAndFund's
// NotFound semantics.
func (fcr *fundContactRepo) DeletePair(ctx context.Context, tx *gorm.DB, contactID, fundID uuid.UUID) result.Result[bool] {
	got := fcr.GetByContactAndFund(ctx, tx, contactID, fundID)
	if got.IsFailure() {
		return result.From[bool](got)
	}
	if err := fcr.resolve(tx).WithContext(ctx).Delete(got.Value()).Error; err != nil {
		fcr.log.Error("assignment delete failed", "contact_id", contactID, "fund_id", fundID, "error", err)
		return result.InternalServerError[bool](domain.ServerError("FundContact", err.Error()))
	}
	fcr.log.Info("assignment deleted", "contact_id", contactID, "fund_id", fundID)
	return result.Success(true)
}

// ContactHasFundAssignments backs the contact cannot-delete invariant.
// Storage failures come back as a Result like every other method here.
func (fcr *fundContactRepo) ContactHasFundAssignments(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) result.Result[bool] {
	var count int64
	err := fcr.scope(
		fcr.resolve(tx).WithContext(ctx).Model(&types.FundContact{}).Where("contact_id = ?", contactID),
		false,
	).Count(&count).Error
	if err != nil {
		fcr.log.Error("assignment check failed", "contact_id", contactID, "error", err)
		return result.InternalServerError[bool](domain.ServerError("FundContact", err.Error()))
	}
	return result.Success(count > 0)
}
