package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"crowdfund/internal/domain/wallet"
	"crowdfund/internal/infrastructure/persistence/mappers"
	"crowdfund/internal/infrastructure/persistence/models"
	"crowdfund/internal/shared/db"
	"crowdfund/internal/shared/errors"
)

type WalletRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.WalletMapper
}

func NewWalletRepository(gormDB *gorm.DB) wallet.Repository {
	return &WalletRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewWalletMapper(),
	}
}

func (r *WalletRepositoryImpl) Create(ctx context.Context, w *wallet.Wallet) error {
	model, err := r.mapper.ToModel(w)
	if err != nil {
		return fmt.Errorf("failed to map wallet entity to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}

	w.SetID(model.ID)
	return nil
}

func (r *WalletRepositoryImpl) Update(ctx context.Context, w *wallet.Wallet) error {
	model, err := r.mapper.ToModel(w)
	if err != nil {
		return fmt.Errorf("failed to map wallet entity to model: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("wallet not found")
	}

	return nil
}

func (r *WalletRepositoryImpl) GetByID(ctx context.Context, id uint) (*wallet.Wallet, error) {
	var model models.WalletModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wallet by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *WalletRepositoryImpl) GetByOwnerUUID(ctx context.Context, ownerUUID string) (*wallet.Wallet, error) {
	var model models.WalletModel

	if err := db.GetTxFromContext(ctx, r.db).Where("owner_uuid = ?", ownerUUID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wallet by owner: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *WalletRepositoryImpl) ExistsByOwnerUUID(ctx context.Context, ownerUUID string) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).Model(&models.WalletModel{}).
		Where("owner_uuid = ?", ownerUUID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check wallet existence: %w", err)
	}

	return count > 0, nil
}
