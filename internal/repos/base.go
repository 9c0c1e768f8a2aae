package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kestrelpoint/funddesk-backend/internal/domain"
	"github.com/kestrelpoint/funddesk-backend/internal/logger"
	"github.com/kestrelpoint/funddesk-backend/internal/result"
)

// Entity is what the generic base repo needs from a persisted type.
type Entity interface {
	GetID() uuid.UUID
	Touch()
	Deleted() bool
	MarkDeleted()
	ClearDeleted()
}

type entityPtr[T any] interface {
	*T
	Entity
}

// BaseRepo implements the shared CRUD + soft-delete operations for a single
// entity type. Every method returns a Result; storage errors never escape
// as Go errors, they become InternalServerError results carrying the entity
// name and the driver message.
type BaseRepo[T any, PT entityPtr[T]] struct {
	db   *gorm.DB
	log  *logger.Logger
	name string
}

func NewBaseRepo[T any, PT entityPtr[T]](db *gorm.DB, log *logger.Logger, name string) *BaseRepo[T, PT] {
	return &BaseRepo[T, PT]{db: db, log: log, name: name}
}

func (r *BaseRepo[T, PT]) resolve(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// scope is the single place the soft-delete filter is applied.
func (r *BaseRepo[T, PT]) scope(q *gorm.DB, includeDeleted bool) *gorm.DB {
	if includeDeleted {
		return q
	}
	return q.Where("is_deleted = ?", false)
}

func (r *BaseRepo[T, PT]) Add(ctx context.Context, tx *gorm.DB, entity PT) result.Result[PT] {
	if err := r.resolve(tx).WithContext(ctx).Create(entity).Error; err != nil {
		r.log.Error("create failed", "entity", r.name, "id", entity.GetID(), "error", err)
		return result.InternalServerError[PT](domain.ServerError(r.name, err.Error()))
	}
	r.log.Info("entity created", "entity", r.name, "id", entity.GetID())
	return result.Success(entity)
}

func (r *BaseRepo[T, PT]) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[PT] {
	var row T
	err := r.scope(r.resolve(tx).WithContext(ctx).Where("id = ?", id), false).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.log.Warn("entity not found", "entity", r.name, "id", id)
		return result.NotFound[PT](domain.NotFound(r.name))
	}
	if err != nil {
		r.log.Error("get by id failed", "entity", r.name, "id", id, "error", err)
		return result.InternalServerError[PT](domain.ServerError(r.name, err.Error()))
	}
	return result.Success(PT(&row))
}

func (r *BaseRepo[T, PT]) GetAll(ctx context.Context, tx *gorm.DB, includeDeleted bool) result.Result[[]PT] {
	var rows []PT
	if err := r.scope(r.resolve(tx).WithContext(ctx), includeDeleted).Find(&rows).Error; err != nil {
		r.log.Error("get all failed", "entity", r.name, "error", err)
		return result.InternalServerError[[]PT](domain.ServerError(r.name, err.Error()))
	}
	return result.Success(rows)
}

func (r *BaseRepo[T, PT]) Update(ctx context.Context, tx *gorm.DB, entity PT) result.Result[PT] {
	entity.Touch()
	if err := r.resolve(tx).WithContext(ctx).Save(entity).Error; err != nil {
		r.log.Error("update failed", "entity", r.name, "id", entity.GetID(), "error", err)
		return result.InternalServerError[PT](domain.ServerError(r.name, err.Error()))
	}
	r.log.Info("entity updated", "entity", r.name, "id", entity.GetID())
	return result.Success(entity)
}

// Delete hard-deletes, reusing GetByID's NotFound semantics for missing or
// soft-deleted rows.
func (r *BaseRepo[T, PT]) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[bool] {
	got := r.GetByID(ctx, tx, id)
	if got.IsFailure() {
		return result.From[bool](got)
	}
	if err := r.resolve(tx).WithContext(ctx).Delete(got.Value()).Error; err != nil {
		r.log.Error("delete failed", "entity", r.name, "id", id, "error", err)
		return result.InternalServerError[bool](domain.ServerError(r.name, err.Error()))
	}
	r.log.Info("entity deleted", "entity", r.name, "id", id)
	return result.Success(true)
}

// SoftDelete looks up across deleted rows too; soft-deleting an already
// deleted entity is an idempotent success and DeletedAt stays put.
func (r *BaseRepo[T, PT]) SoftDelete(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[bool] {
	var row T
	err := r.resolve(tx).WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.log.Warn("entity not found for soft delete", "entity", r.name, "id", id)
		return result.NotFound[bool](domain.NotFound(r.name))
	}
	if err != nil {
		r.log.Error("soft delete lookup failed", "entity", r.name, "id", id, "error", err)
		return result.InternalServerError[bool](domain.ServerError(r.name, err.Error()))
	}

	entity := PT(&row)
	if entity.Deleted() {
		return result.Success(true)
	}

	entity.MarkDeleted()
	if err := r.resolve(tx).WithContext(ctx).Save(entity).Error; err != nil {
		r.log.Error("soft delete failed", "entity", r.name, "id", id, "error", err)
		return result.InternalServerError[bool](domain.ServerError(r.name, err.Error()))
	}
	r.log.Info("entity soft deleted", "entity", r.name, "id", id)
	return result.Success(true)
}

// Restore only matches currently soft-deleted rows; restoring an active or
// unknown id is NotFound.
func (r *BaseRepo[T, PT]) Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) result.Result[bool] {
	var row T
	err := r.resolve(tx).WithContext(ctx).Where("id = ? AND is_deleted = ?", id, true).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.log.Warn("entity not found or not deleted", "entity", r.name, "id", id)
		return result.NotFound[bool](domain.NotFound(r.name))
	}
	if err != nil {
		r.log.Error("restore lookup failed", "entity", r.name, "id", id, "error", err)
		return result.InternalServerError[bool](domain.ServerError(r.name, err.Error()))
	}

	entity := PT(&row)
	entity.ClearDeleted()
	if err := r.resolve(tx).WithContext(ctx).Save(entity).Error; err != nil {
		r.log.Error("restore failed", "entity", r.name, "id", id, "error", err)
		return result.InternalServerError[bool](domain.ServerError(r.name, err.Error()))
	}
	r.log.Info("entity restored", "entity", r.name, "id", id)
	return result.Success(true)
}

func (r *BaseRepo[T, PT]) Exists(ctx context.Context, tx *gorm.DB, id uuid.UUID, includeDeleted bool) result.Result[bool] {
	var count int64
	q := r.scope(r.resolve(tx).WithContext(ctx).Model(PT(new(T))).Where("id = ?", id), includeDeleted)
	if err := q.Count(&count).Error; err != nil {
		r.log.Error("exists check failed", "entity", r.name, "id", id, "error", err)
		return result.InternalServerError[bool](domain.ServerError(r.name, err.Error()))
	}
	return result.Success(count > 0)
}
