package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kestrelpoint/funddesk-backend/internal/domain"
	"github.com/kestrelpoint/funddesk-backend/internal/logger"
	"github.com/kestrelpoint/funddesk-backend/internal/repos"
	"github.com/kestrelpoint/funddesk-backend/internal/result"
	"github.com/kestrelpoint/funddesk-backend/internal/types"
)

type FundContactService interface {
	Assign(ctx context.Context, tx *gorm.DB, req AssignContactRequest) result.Result[FundContactDTO]
	Remove(ctx context.Context, tx *gorm.DB, contactID, fundID uuid.UUID) result.Result[bool]
	ContactsByFund(ctx context.Context, tx *gorm.DB, fundID uuid.UUID) result.Result[[]FundContactListItemDTO]
	FundsByContact(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) result.Result[[]FundDTO]
}

type fundContactService struct {
	db              *gorm.DB
	log             *logger.Logger
	contactRepo     repos.ContactRepo
	fundRepo        repos.FundRepo
	fundContactRepo repos.FundContactRepo
}

func NewFundContactService(
	db *gorm.DB,
	baseLog *logger.Logger,
	contactRepo repos.ContactRepo,
	fundRepo repos.FundRepo,
	fundContactRepo repos.FundContactRepo,
) FundContactService {
	serviceLog := baseLog.With("service", "FundContactService")
	return &fundContactService{
		db:              db,
		log:             serviceLog,
		contactRepo:     contactRepo,
		fundRepo:        fundRepo,
		fundContactRepo: fundContactRepo,
	}
}

// Assign links a contact to a fund. Both sides must exist and the pair must
// not already be assigned; lookups run in order so a missing contact is
// reported before a missing fund.
func (fcs *fundContactService) Assign(ctx context.Context, tx *gorm.DB, req AssignContactRequest) result.Result[FundContactDTO] {
	fcs.log.Info("assigning contact to fund", "contact_id", req.ContactID, "fund_id", req.FundID)

	contactRes := fcs.contactRepo.GetByID(ctx, tx, req.ContactID)
	if contactRes.IsFailure() {
		return result.From[FundContactDTO](contactRes)
	}
	fundRes := fcs.fundRepo.GetByID(ctx, tx, req.FundID)
	if fundRes.IsFailure() {
		return result.From[FundContactDTO](fundRes)
	}

	pairRes := fcs.fundContactRepo.ExistsPair(ctx, tx, req.ContactID, req.FundID)
	if pairRes.IsFailure() {
		return result.From[FundContactDTO](pairRes)
	}
	if pairRes.Value() {
		return result.Conflict[FundContactDTO](domain.Conflict("FundContact"))
	}

	fcRes := types.NewFundContact(req.ContactID, req.FundID)
	if fcRes.IsFailure() {
		return result.From[FundContactDTO](fcRes)
	}

	addRes := fcs.fundContactRepo.Add(ctx, tx, fcRes.Value())
	if addRes.IsFailure() {
		return result.From[FundContactDTO](addRes)
	}

	fc := addRes.Value()
	return result.Success(FundContactDTO{
		ID:          fc.ID,
		ContactID:   fc.ContactID,
		FundID:      fc.FundID,
		ContactName: contactRes.Value().Name,
		FundName:    fundRes.Value().Name,
		CreatedAt:   fc.CreatedAt,
		UpdatedAt:   fc.UpdatedAt,
	})
}

func (fcs *fundContactService) Remove(ctx context.Context, tx *gorm.DB, contactID, fundID uuid.UUID) result.Result[bool] {
	fcs.log.Info("removing contact from fund", "contact_id", contactID, "fund_id", fundID)
	return fcs.fundContactRepo.DeletePair(ctx, tx, contactID, fundID)
}

// ContactsByFund lists the contacts assigned to a fund. The fund is looked
// up first so an unknown id comes back as Fund.NotFound rather than an
// empty list.
func (fcs *fundContactService) ContactsByFund(ctx context.Context, tx *gorm.DB, fundID uuid.UUID) result.Result[[]FundContactListItemDTO] {
	fundRes := fcs.fundRepo.GetByID(ctx, tx, fundID)
	if fundRes.IsFailure() {
		return result.From[[]FundContactListItemDTO](fundRes)
	}

	listRes := fcs.fundContactRepo.GetByFundID(ctx, tx, fundID)
	if listRes.IsFailure() {
		return result.From[[]FundContactListItemDTO](listRes)
	}

	items := make([]FundContactListItemDTO, 0, len(listRes.Value()))
	for _, fc := range listRes.Value() {
		if fc.Contact == nil {
			continue
		}
		items = append(items, FundContactListItemDTO{
			ID:          fc.Contact.ID,
			Name:        fc.Contact.Name,
			Email:       fc.Contact.Email,
			PhoneNumber: fc.Contact.PhoneNumber,
		})
	}
	return result.Success(items)
}

// FundsByContact is the reverse listing, used by the contact detail view.
func (fcs *fundContactService) FundsByContact(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) result.Result[[]FundDTO] {
	contactRes := fcs.contactRepo.GetByID(ctx, tx, contactID)
	if contactRes.IsFailure() {
		return result.From[[]FundDTO](contactRes)
	}

	listRes := fcs.fundContactRepo.GetByContactID(ctx, tx, contactID)
	if listRes.IsFailure() {
		return result.From[[]FundDTO](listRes)
	}

	dtos := make([]FundDTO, 0, len(listRes.Value()))
	for _, fc := range listRes.Value() {
		if fc.Fund == nil {
			continue
		}
		dtos = append(dtos, newFundDTO(fc.Fund))
	}
	return result.Success(dtos)
}
