package mappers

import (
	"crowdfund/internal/domain/deposit"
	"crowdfund/internal/infrastructure/persistence/models"
)

type DepositMapper interface {
	ToEntity(model *models.DepositModel) (*deposit.Deposit, error)
	ToModel(entity *deposit.Deposit) (*models.DepositModel, error)
	ToEntities(models []*models.DepositModel) ([]*deposit.Deposit, error)
}

type DepositMapperImpl struct{}

func NewDepositMapper() DepositMapper {
	return &DepositMapperImpl{}
}

func (m *DepositMapperImpl) ToEntity(model *models.DepositModel) (*deposit.Deposit, error) {
	if model == nil {
		return nil, nil
	}

	return deposit.ReconstructDeposit(
		model.ID,
		model.UserUUID,
		model.Reference,
		model.Approved,
		model.ApprovedByUUID,
		model.ApprovedAt,
		model.Amount,
		model.DocumentID,
		model.TxHash,
		model.CreatedAt,
	), nil
}

func (m *DepositMapperImpl) ToModel(entity *deposit.Deposit) (*models.DepositModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.DepositModel{
		ID:             entity.ID(),
		UserUUID:       entity.UserUUID(),
		Reference:      entity.Reference(),
		Approved:       entity.Approved(),
		ApprovedByUUID: entity.ApprovedByUUID(),
		ApprovedAt:     entity.ApprovedAt(),
		Amount:         entity.Amount(),
		DocumentID:     entity.DocumentID(),
		TxHash:         entity.TxHash(),
		CreatedAt:      entity.CreatedAt(),
	}, nil
}

func (m *DepositMapperImpl) ToEntities(modelList []*models.DepositModel) ([]*deposit.Deposit, error) {
	entities := make([]*deposit.Deposit, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
