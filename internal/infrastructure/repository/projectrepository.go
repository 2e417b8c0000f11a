package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"crowdfund/internal/domain/project"
	"crowdfund/internal/infrastructure/persistence/mappers"
	"crowdfund/internal/infrastructure/persistence/models"
	"crowdfund/internal/shared/db"
	"crowdfund/internal/shared/errors"
)

type ProjectRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewProjectRepository(gormDB *gorm.DB) project.Repository {
	return &ProjectRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *ProjectRepositoryImpl) Create(ctx context.Context, p *project.Project) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to map project entity to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	p.SetID(model.ID)
	return nil
}

func (r *ProjectRepositoryImpl) Update(ctx context.Context, p *project.Project) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to map project entity to model: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("project not found")
	}

	return nil
}

func (r *ProjectRepositoryImpl) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	var model models.ProjectModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ProjectRepositoryImpl) ListByOrganizationID(ctx context.Context, organizationID uint) ([]*project.Project, error) {
	var modelList []*models.ProjectModel

	query := db.GetTxFromContext(ctx, r.db).Order("created_at DESC")
	if organizationID > 0 {
		query = query.Where("organization_id = ?", organizationID)
	}

	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
