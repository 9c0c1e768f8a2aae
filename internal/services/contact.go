package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kestrelpoint/funddesk-backend/internal/logger"
	"github.com/kestrelpoint/funddesk-backend/internal/repos"
	"github.com/kestrelpoint/funddesk-backend/internal/result"
	"github.com/kestrelpoint/funddesk-backend/internal/types"
)

type ContactService interface {
	Create(ctx context.Context, tx *gorm.DB, req CreateContactRequest) result.Result[ContactDTO]
	Get(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[ContactDTO]
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, req UpdateContactRequest) result.Result[ContactDTO]
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[bool]
}

type contactService struct {
	db              *gorm.DB
	log             *logger.Logger
	contactRepo     repos.ContactRepo
	fundContactRepo repos.FundContactRepo
}

func NewContactService(
	db *gorm.DB,
	baseLog *logger.Logger,
	contactRepo repos.ContactRepo,
	fundContactRepo repos.FundContactRepo,
) ContactService {
	serviceLog := baseLog.With("service", "ContactService")
	return &contactService{
		db:              db,
		log:             serviceLog,
		contactRepo:     contactRepo,
		fundContactRepo: fundContactRepo,
	}
}

func (cs *contactService) Create(ctx context.Context, tx *gorm.DB, req CreateContactRequest) result.Result[ContactDTO] {
	cs.log.Info("creating contact", "name", req.Name)

	contactRes := types.NewContact(req.Name, req.Email, req.PhoneNumber)
	if contactRes.IsFailure() {
		return result.From[ContactDTO](contactRes)
	}

	addRes := cs.contactRepo.Add(ctx, tx, contactRes.Value())
	if addRes.IsFailure() {
		return result.From[ContactDTO](addRes)
	}

	return result.Success(newContactDTO(addRes.Value()))
}

func (cs *contactService) Get(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[ContactDTO] {
	got := cs.contactRepo.GetByID(ctx, tx, id)
	if got.IsFailure() {
		return result.From[ContactDTO](got)
	}
	return result.Success(newContactDTO(got.Value()))
}

func (cs *contactService) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, req UpdateContactRequest) result.Result[ContactDTO] {
	cs.log.Info("updating contact", "contact_id", id)

	got := cs.contactRepo.GetByID(ctx, tx, id)
	if got.IsFailure() {
		return result.From[ContactDTO](got)
	}

	contact := got.Value()
	updRes := contact.Update(req.Name, req.Email, req.PhoneNumber)
	if updRes.IsFailure() {
		return result.From[ContactDTO](updRes)
	}

	saved := cs.contactRepo.Update(ctx, tx, contact)
	if saved.IsFailure() {
		return result.From[ContactDTO](saved)
	}

	return result.Success(newContactDTO(saved.Value()))
}

// Delete hard-deletes a contact after checking it exists and carries no
// active fund assignments.
func (cs *contactService) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[bool] {
	got := cs.contactRepo.GetByID(ctx, tx, id)
	if got.IsFailure() {
		return result.From[bool](got)
	}

	hasRes := cs.fundContactRepo.ContactHasFundAssignments(ctx, tx, id)
	if hasRes.IsFailure() {
		return result.From[bool](hasRes)
	}
	if canRes := got.Value().CanDelete(hasRes.Value()); canRes.IsFailure() {
		cs.log.Warn("contact delete blocked by fund assignments", "contact_id", id)
		return canRes
	}

	delRes := cs.contactRepo.Delete(ctx, tx, id)
	if delRes.IsFailure() {
		return result.From[bool](delRes)
	}
	return result.Success(true)
}
