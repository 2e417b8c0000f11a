package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"crowdfund/internal/domain/user"
	"crowdfund/internal/infrastructure/persistence/mappers"
	"crowdfund/internal/infrastructure/persistence/models"
	"crowdfund/internal/shared/db"
)

type MailTokenRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MailTokenMapper
}

func NewMailTokenRepository(gormDB *gorm.DB) user.MailTokenRepository {
	return &MailTokenRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewMailTokenMapper(),
	}
}

func (r *MailTokenRepositoryImpl) Create(ctx context.Context, t *user.MailToken) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return fmt.Errorf("failed to map mail token entity to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create mail token: %w", err)
	}

	t.SetID(model.ID)
	return nil
}

func (r *MailTokenRepositoryImpl) GetByToken(ctx context.Context, token string) (*user.MailToken, error) {
	var model models.MailTokenModel

	if err := db.GetTxFromContext(ctx, r.db).Where("token = ?", token).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mail token: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *MailTokenRepositoryImpl) GetByUserID(ctx context.Context, userID uint) (*user.MailToken, error) {
	var model models.MailTokenModel

	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).Order("created_at DESC").First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mail token by user ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *MailTokenRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.MailTokenModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete mail token: %w", err)
	}
	return nil
}
