package mappers

import (
	"crowdfund/internal/domain/document"
	"crowdfund/internal/infrastructure/persistence/models"
)

type DocumentMapper interface {
	ToEntity(model *models.DocumentModel) (*document.Document, error)
	ToModel(entity *document.Document) (*models.DocumentModel, error)
}

type DocumentMapperImpl struct{}

func NewDocumentMapper() DocumentMapper {
	return &DocumentMapperImpl{}
}

func (m *DocumentMapperImpl) ToEntity(model *models.DocumentModel) (*document.Document, error) {
	if model == nil {
		return nil, nil
	}

	return document.ReconstructDocument(
		model.ID,
		model.Name,
		model.ContentType,
		model.Size,
		model.Data,
		model.CreatedByUUID,
		model.CreatedAt,
	), nil
}

func (m *DocumentMapperImpl) ToModel(entity *document.Document) (*models.DocumentModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.DocumentModel{
		ID:            entity.ID(),
		Name:          entity.Name(),
		ContentType:   entity.ContentType(),
		Size:          entity.Size(),
		Data:          entity.Data(),
		CreatedByUUID: entity.CreatedByUUID(),
		CreatedAt:     entity.CreatedAt(),
	}, nil
}
