package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"crowdfund/internal/domain/document"
	"crowdfund/internal/infrastructure/persistence/mappers"
	"crowdfund/internal/infrastructure/persistence/models"
	"crowdfund/internal/shared/db"
)

type DocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DocumentMapper
}

func NewDocumentRepository(gormDB *gorm.DB) document.Repository {
	return &DocumentRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewDocumentMapper(),
	}
}

// Create stores the document inside any active transaction so an approval
// that fails after the document write rolls both back together.
func (r *DocumentRepositoryImpl) Create(ctx context.Context, d *document.Document) error {
	model, err := r.mapper.ToModel(d)
	if err != nil {
		return fmt.Errorf("failed to map document entity to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	d.SetID(model.ID)
	return nil
}

func (r *DocumentRepositoryImpl) GetByID(ctx context.Context, id uint) (*document.Document, error) {
	var model models.DocumentModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
