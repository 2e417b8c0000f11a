package mappers

import (
	"crowdfund/internal/domain/organization"
	"crowdfund/internal/infrastructure/persistence/models"
)

type OrganizationMapper interface {
	ToEntity(model *models.OrganizationModel) (*organization.Organization, error)
	ToModel(entity *organization.Organization) (*models.OrganizationModel, error)
	ToEntities(models []*models.OrganizationModel) ([]*organization.Organization, error)
}

type OrganizationMapperImpl struct{}

func NewOrganizationMapper() OrganizationMapper {
	return &OrganizationMapperImpl{}
}

func (m *OrganizationMapperImpl) ToEntity(model *models.OrganizationModel) (*organization.Organization, error) {
	if model == nil {
		return nil, nil
	}

	return organization.ReconstructOrganization(
		model.ID,
		model.Name,
		model.CreatedByUUID,
		model.Approved,
		model.LegalInfo,
		model.WalletID,
		model.CreatedAt,
	), nil
}

func (m *OrganizationMapperImpl) ToModel(entity *organization.Organization) (*models.OrganizationModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.OrganizationModel{
		ID:            entity.ID(),
		Name:          entity.Name(),
		CreatedByUUID: entity.CreatedByUUID(),
		Approved:      entity.Approved(),
		LegalInfo:     entity.LegalInfo(),
		WalletID:      entity.WalletID(),
		CreatedAt:     entity.CreatedAt(),
	}, nil
}

func (m *OrganizationMapperImpl) ToEntities(modelList []*models.OrganizationModel) ([]*organization.Organization, error) {
	entities := make([]*organization.Organization, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
