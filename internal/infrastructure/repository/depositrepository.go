package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"crowdfund/internal/domain/deposit"
	"crowdfund/internal/infrastructure/persistence/mappers"
	"crowdfund/internal/infrastructure/persistence/models"
	"crowdfund/internal/shared/db"
	"crowdfund/internal/shared/errors"
)

type DepositRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DepositMapper
}

func NewDepositRepository(gormDB *gorm.DB) deposit.Repository {
	return &DepositRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewDepositMapper(),
	}
}

func (r *DepositRepositoryImpl) Create(ctx context.Context, d *deposit.Deposit) error {
	model, err := r.mapper.ToModel(d)
	if err != nil {
		return fmt.Errorf("failed to map deposit entity to model: %w", err)
	}

	// Duplicate key errors pass through unwrapped so callers can map the
	// unique index violation to a conflict.
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	d.SetID(model.ID)
	return nil
}

func (r *DepositRepositoryImpl) Update(ctx context.Context, d *deposit.Deposit) error {
	model, err := r.mapper.ToModel(d)
	if err != nil {
		return fmt.Errorf("failed to map deposit entity to model: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update deposit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("deposit not found")
	}

	return nil
}

func (r *DepositRepositoryImpl) GetByID(ctx context.Context, id uint) (*deposit.Deposit, error) {
	var model models.DepositModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get deposit by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *DepositRepositoryImpl) GetByIDForUpdate(ctx context.Context, id uint) (*deposit.Deposit, error) {
	var model models.DepositModel

	if err := db.GetTxFromContext(ctx, r.db).Scopes(db.LockForUpdate()).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get deposit for update: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *DepositRepositoryImpl) GetByReference(ctx context.Context, reference string) (*deposit.Deposit, error) {
	var model models.DepositModel

	if err := db.GetTxFromContext(ctx, r.db).Where("reference = ?", reference).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get deposit by reference: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *DepositRepositoryImpl) GetUnapprovedByUserUUID(ctx context.Context, userUUID string) (*deposit.Deposit, error) {
	var model models.DepositModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_uuid = ? AND approved = ?", userUUID, false).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get unapproved deposit: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *DepositRepositoryImpl) ListByUserUUID(ctx context.Context, userUUID string) ([]*deposit.Deposit, error) {
	var modelList []*models.DepositModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_uuid = ?", userUUID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list deposits by user: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *DepositRepositoryImpl) ListWithDocument(ctx context.Context, approved bool) ([]*deposit.Deposit, error) {
	var modelList []*models.DepositModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("approved = ? AND document_id IS NOT NULL", approved).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list deposits with document: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *DepositRepositoryImpl) DeleteByID(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.DepositModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete deposit: %w", err)
	}
	return nil
}
