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

type FundService interface {
	Create(ctx context.Context, tx *gorm.DB, req CreateFundRequest) result.Result[FundDTO]
	CreateMultiple(ctx context.Context, tx *gorm.DB, names []string) result.Result[[]FundDTO]
	Get(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[FundDTO]
	GetAll(ctx context.Context, tx *gorm.DB, includeDeleted bool) result.Result[[]FundDTO]
	SoftDelete(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[bool]
	Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[bool]
}

type fundService struct {
	db       *gorm.DB
	log      *logger.Logger
	fundRepo repos.FundRepo
}

func NewFundService(db *gorm.DB, baseLog *logger.Logger, fundRepo repos.FundRepo) FundService {
	serviceLog := baseLog.With("service", "FundService")
	return &fundService{
		db:       db,
		log:      serviceLog,
		fundRepo: fundRepo,
	}
}

func (fs *fundService) Create(ctx context.Context, tx *gorm.DB, req CreateFundRequest) result.Result[FundDTO] {
	fs.log.Info("creating fund", "name", req.Name)

	existsRes := fs.fundRepo.ExistsByName(ctx, tx, req.Name)
	if existsRes.IsFailure() {
		return result.From[FundDTO](existsRes)
	}
	if existsRes.Value() {
		return result.Conflict[FundDTO](domain.Conflict("Fund"))
	}

	fundRes := types.NewFund(req.Name)
	if fundRes.IsFailure() {
		return result.From[FundDTO](fundRes)
	}

	addRes := fs.fundRepo.Add(ctx, tx, fundRes.Value())
	if addRes.IsFailure() {
		return result.From[FundDTO](addRes)
	}

	return result.Success(newFundDTO(addRes.Value()))
}

// CreateMultiple creates one fund per name, best effort. Names that already
// exist or fail validation are skipped with a log line; a storage failure on
// the duplicate check aborts the whole batch. An empty request, or a batch
// where nothing was created, is a validation failure.
func (fs *fundService) CreateMultiple(ctx context.Context, tx *gorm.DB, names []string) result.Result[[]FundDTO] {
	if len(names) == 0 {
		return result.ValidationError[[]FundDTO](domain.ErrValidation)
	}

	created := make([]FundDTO, 0, len(names))
	for _, name := range names {
		existsRes := fs.fundRepo.ExistsByName(ctx, tx, name)
		if existsRes.IsFailure() {
			return result.From[[]FundDTO](existsRes)
		}
		if existsRes.Value() {
			fs.log.Warn("skipping duplicate fund name", "name", name)
			continue
		}

		fundRes := types.NewFund(name)
		if fundRes.IsFailure() {
			fs.log.Warn("skipping invalid fund name",
				"name", name, "error_code", fundRes.Err().Code)
			continue
		}

		addRes := fs.fundRepo.Add(ctx, tx, fundRes.Value())
		if addRes.IsFailure() {
			fs.log.Warn("skipping fund that failed to persist",
				"name", name, "error_code", addRes.Err().Code)
			continue
		}
		created = append(created, newFundDTO(addRes.Value()))
	}

	if len(created) == 0 {
		return result.ValidationError[[]FundDTO](domain.ErrValidation)
	}
	return result.Success(created)
}

func (fs *fundService) Get(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[FundDTO] {
	got := fs.fundRepo.GetByID(ctx, tx, id)
	if got.IsFailure() {
		return result.From[FundDTO](got)
	}
	return result.Success(newFundDTO(got.Value()))
}

func (fs *fundService) GetAll(ctx context.Context, tx *gorm.DB, includeDeleted bool) result.Result[[]FundDTO] {
	listRes := fs.fundRepo.GetAll(ctx, tx, includeDeleted)
	if listRes.IsFailure() {
		return result.From[[]FundDTO](listRes)
	}

	dtos := make([]FundDTO, 0, len(listRes.Value()))
	for _, fund := range listRes.Value() {
		dtos = append(dtos, newFundDTO(fund))
	}
	return result.Success(dtos)
}

func (fs *fundService) SoftDelete(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[bool] {
	fs.log.Info("soft deleting fund", "fund_id", id)
	return fs.fundRepo.SoftDelete(ctx, tx, id)
}

func (fs *fundService) Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[bool] {
	fs.log.Info("restoring fund", "fund_id", id)
	return fs.fundRepo.Restore(ctx, tx, id)
}
