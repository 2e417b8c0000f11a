package mappers

import (
	"crowdfund/internal/domain/user"
	"crowdfund/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between domain entities and persistence
// models.
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	return user.ReconstructUser(
		model.ID,
		model.UUID,
		model.Email,
		model.PasswordHash,
		model.FirstName,
		model.LastName,
		model.PhoneNumber,
		user.Role(model.Role),
		model.Enabled,
		model.CreatedAt,
	), nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:           entity.ID(),
		UUID:         entity.UUID(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		FirstName:    entity.FirstName(),
		LastName:     entity.LastName(),
		PhoneNumber:  entity.PhoneNumber(),
		Role:         string(entity.Role()),
		Enabled:      entity.Enabled(),
		CreatedAt:    entity.CreatedAt(),
	}, nil
}

func (m *UserMapperImpl) ToEntities(modelList []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// MailTokenMapper converts confirmation tokens.
type MailTokenMapper interface {
	ToEntity(model *models.MailTokenModel) (*user.MailToken, error)
	ToModel(entity *user.MailToken) (*models.MailTokenModel, error)
}

type MailTokenMapperImpl struct{}

func NewMailTokenMapper() MailTokenMapper {
	return &MailTokenMapperImpl{}
}

func (m *MailTokenMapperImpl) ToEntity(model *models.MailTokenModel) (*user.MailToken, error) {
	if model == nil {
		return nil, nil
	}
	return user.ReconstructMailToken(model.ID, model.UserID, model.Token, model.CreatedAt), nil
}

func (m *MailTokenMapperImpl) ToModel(entity *user.MailToken) (*models.MailTokenModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.MailTokenModel{
		ID:        entity.ID(),
		UserID:    entity.UserID(),
		Token:     entity.Token(),
		CreatedAt: entity.CreatedAt(),
	}, nil
}
