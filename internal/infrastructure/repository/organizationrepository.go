package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"crowdfund/internal/domain/organization"
	"crowdfund/internal/infrastructure/persistence/mappers"
	"crowdfund/internal/infrastructure/persistence/models"
	"crowdfund/internal/shared/db"
	"crowdfund/internal/shared/errors"
)

type OrganizationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OrganizationMapper
}

func NewOrganizationRepository(gormDB *gorm.DB) organization.Repository {
	return &OrganizationRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewOrganizationMapper(),
	}
}

func (r *OrganizationRepositoryImpl) Create(ctx context.Context, o *organization.Organization) error {
	model, err := r.mapper.ToModel(o)
	if err != nil {
		return fmt.Errorf("failed to map organization entity to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}

	o.SetID(model.ID)
	return nil
}

func (r *OrganizationRepositoryImpl) Update(ctx context.Context, o *organization.Organization) error {
	model, err := r.mapper.ToModel(o)
	if err != nil {
		return fmt.Errorf("failed to map organization entity to model: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update organization: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("organization not found")
	}

	return nil
}

func (r *OrganizationRepositoryImpl) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	var model models.OrganizationModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get organization by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *OrganizationRepositoryImpl) List(ctx context.Context) ([]*organization.Organization, error) {
	var modelList []*models.OrganizationModel

	if err := db.GetTxFromContext(ctx, r.db).Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
