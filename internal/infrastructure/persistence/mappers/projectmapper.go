package mappers

import (
	"gorm.io/datatypes"

	"crowdfund/internal/domain/project"
	"crowdfund/internal/infrastructure/persistence/models"
)

type ProjectMapper interface {
	ToEntity(model *models.ProjectModel) (*project.Project, error)
	ToModel(entity *project.Project) (*models.ProjectModel, error)
	ToEntities(models []*models.ProjectModel) ([]*project.Project, error)
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToEntity(model *models.ProjectModel) (*project.Project, error) {
	if model == nil {
		return nil, nil
	}

	return project.ReconstructProject(project.ReconstructParams{
		ID:              model.ID,
		OrganizationID:  model.OrganizationID,
		Name:            model.Name,
		Description:     model.Description,
		DescriptionHTML: model.DescriptionHTML,
		LocationText:    model.LocationText,
		Currency:        model.Currency,
		MinPerUser:      model.MinPerUser,
		MaxPerUser:      model.MaxPerUser,
		InvestmentCap:   model.InvestmentCap,
		StartDate:       model.StartDate,
		EndDate:         model.EndDate,
		Active:          model.Active,
		MainImage:       model.MainImage,
		Gallery:         []uint(model.Gallery),
		CreatedByUUID:   model.CreatedByUUID,
		WalletID:        model.WalletID,
		CreatedAt:       model.CreatedAt,
	}), nil
}

func (m *ProjectMapperImpl) ToModel(entity *project.Project) (*models.ProjectModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ProjectModel{
		ID:              entity.ID(),
		OrganizationID:  entity.OrganizationID(),
		Name:            entity.Name(),
		Description:     entity.Description(),
		DescriptionHTML: entity.DescriptionHTML(),
		LocationText:    entity.LocationText(),
		Currency:        entity.Currency(),
		MinPerUser:      entity.MinPerUser(),
		MaxPerUser:      entity.MaxPerUser(),
		InvestmentCap:   entity.InvestmentCap(),
		StartDate:       entity.StartDate(),
		EndDate:         entity.EndDate(),
		Active:          entity.Active(),
		MainImage:       entity.MainImage(),
		Gallery:         datatypes.NewJSONSlice(entity.Gallery()),
		CreatedByUUID:   entity.CreatedByUUID(),
		WalletID:        entity.WalletID(),
		CreatedAt:       entity.CreatedAt(),
	}, nil
}

func (m *ProjectMapperImpl) ToEntities(modelList []*models.ProjectModel) ([]*project.Project, error) {
	entities := make([]*project.Project, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
