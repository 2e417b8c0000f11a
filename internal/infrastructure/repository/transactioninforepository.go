package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"crowdfund/internal/domain/transaction"
	"crowdfund/internal/infrastructure/persistence/mappers"
	"crowdfund/internal/infrastructure/persistence/models"
	"crowdfund/internal/shared/db"
)

type TransactionInfoRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TransactionInfoMapper
}

func NewTransactionInfoRepository(gormDB *gorm.DB) transaction.Repository {
	return &TransactionInfoRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewTransactionInfoMapper(),
	}
}

func (r *TransactionInfoRepositoryImpl) Create(ctx context.Context, i *transaction.Info) error {
	model, err := r.mapper.ToModel(i)
	if err != nil {
		return fmt.Errorf("failed to map transaction info entity to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create transaction info: %w", err)
	}

	i.SetID(model.ID)
	return nil
}

func (r *TransactionInfoRepositoryImpl) GetByID(ctx context.Context, id uint) (*transaction.Info, error) {
	var model models.TransactionInfoModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction info by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
