package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/wallet/dto"
	"crowdfund/internal/domain/blockchain"
	"crowdfund/internal/domain/wallet"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type GetWalletCommand struct {
	OwnerUUID string
}

// GetWalletUseCase returns the owner's wallet with its current on-chain
// balance. An unreachable blockchain service yields a wallet without a
// balance instead of an error.
type GetWalletUseCase struct {
	walletRepo wallet.Repository
	gateway    blockchain.Gateway
	logger     logger.Interface
}

func NewGetWalletUseCase(
	walletRepo wallet.Repository,
	gateway blockchain.Gateway,
	logger logger.Interface,
) *GetWalletUseCase {
	return &GetWalletUseCase{
		walletRepo: walletRepo,
		gateway:    gateway,
		logger:     logger,
	}
}

func (uc *GetWalletUseCase) Execute(ctx context.Context, cmd GetWalletCommand) (*dto.WalletDTO, error) {
	if cmd.OwnerUUID == "" {
		return nil, errors.NewValidationError("owner uuid is required")
	}

	w, err := uc.walletRepo.GetByOwnerUUID(ctx, cmd.OwnerUUID)
	if err != nil {
		uc.logger.Errorw("failed to load wallet", "owner_uuid", cmd.OwnerUUID, "error", err)
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}
	if w == nil {
		return nil, wallet.NewMissingError(cmd.OwnerUUID)
	}

	result := dto.WalletToDTO(w)

	if hash := w.Hash(); hash != nil {
		balance := uc.gateway.GetBalance(ctx, *hash)
		if balance.Unknown {
			uc.logger.Warnw("balance unavailable", "wallet_id", w.ID())
		} else {
			result.Balance = &balance.Amount
		}
	}

	return &result, nil
}
