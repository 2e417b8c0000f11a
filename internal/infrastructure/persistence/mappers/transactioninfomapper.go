package mappers

import (
	"crowdfund/internal/domain/transaction"
	"crowdfund/internal/infrastructure/persistence/models"
)

type TransactionInfoMapper interface {
	ToEntity(model *models.TransactionInfoModel) (*transaction.Info, error)
	ToModel(entity *transaction.Info) (*models.TransactionInfoModel, error)
}

type TransactionInfoMapperImpl struct{}

func NewTransactionInfoMapper() TransactionInfoMapper {
	return &TransactionInfoMapperImpl{}
}

func (m *TransactionInfoMapperImpl) ToEntity(model *models.TransactionInfoModel) (*transaction.Info, error) {
	if model == nil {
		return nil, nil
	}

	return transaction.ReconstructInfo(
		model.ID,
		transaction.InfoType(model.Type),
		model.Title,
		model.Description,
		model.UserUUID,
		model.CreatedAt,
	), nil
}

func (m *TransactionInfoMapperImpl) ToModel(entity *transaction.Info) (*models.TransactionInfoModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.TransactionInfoModel{
		ID:          entity.ID(),
		Type:        string(entity.Type()),
		Title:       entity.Title(),
		Description: entity.Description(),
		UserUUID:    entity.UserUUID(),
		CreatedAt:   entity.CreatedAt(),
	}, nil
}
