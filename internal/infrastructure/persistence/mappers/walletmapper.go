package mappers

import (
	"crowdfund/internal/domain/wallet"
	"crowdfund/internal/infrastructure/persistence/models"
)

type WalletMapper interface {
	ToEntity(model *models.WalletModel) (*wallet.Wallet, error)
	ToModel(entity *wallet.Wallet) (*models.WalletModel, error)
}

type WalletMapperImpl struct{}

func NewWalletMapper() WalletMapper {
	return &WalletMapperImpl{}
}

func (m *WalletMapperImpl) ToEntity(model *models.WalletModel) (*wallet.Wallet, error) {
	if model == nil {
		return nil, nil
	}

	return wallet.ReconstructWallet(
		model.ID,
		model.OwnerUUID,
		wallet.Type(model.Type),
		model.Address,
		model.Hash,
		model.Currency,
		model.CreatedAt,
	), nil
}

func (m *WalletMapperImpl) ToModel(entity *wallet.Wallet) (*models.WalletModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.WalletModel{
		ID:        entity.ID(),
		OwnerUUID: entity.OwnerUUID(),
		Type:      string(entity.WalletType()),
		Address:   entity.Address(),
		Hash:      entity.Hash(),
		Currency:  entity.Currency(),
		CreatedAt: entity.CreatedAt(),
	}, nil
}
