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

type CreateUserWalletCommand struct {
	UserUUID string
	Address  string
}

// CreateUserWalletUseCase registers a user wallet and attempts on-chain
// activation. When the blockchain service is unreachable the wallet is still
// persisted and activation is retried on the next wallet operation.
type CreateUserWalletUseCase struct {
	walletRepo wallet.Repository
	gateway    blockchain.Gateway
	logger     logger.Interface
}

func NewCreateUserWalletUseCase(
	walletRepo wallet.Repository,
	gateway blockchain.Gateway,
	logger logger.Interface,
) *CreateUserWalletUseCase {
	return &CreateUserWalletUseCase{
		walletRepo: walletRepo,
		gateway:    gateway,
		logger:     logger,
	}
}

func (uc *CreateUserWalletUseCase) Execute(ctx context.Context, cmd CreateUserWalletCommand) (*dto.WalletDTO, error) {
	uc.logger.Infow("executing create user wallet use case", "user_uuid", cmd.UserUUID)

	if cmd.UserUUID == "" {
		return nil, errors.NewValidationError("user uuid is required")
	}
	if cmd.Address == "" {
		return nil, errors.NewValidationError("wallet address is required")
	}

	exists, err := uc.walletRepo.ExistsByOwnerUUID(ctx, cmd.UserUUID)
	if err != nil {
		uc.logger.Errorw("failed to check wallet", "user_uuid", cmd.UserUUID, "error", err)
		return nil, fmt.Errorf("failed to check wallet: %w", err)
	}
	if exists {
		return nil, wallet.NewAlreadyExistsError(cmd.UserUUID)
	}

	w, err := wallet.NewWallet(cmd.UserUUID, cmd.Address, wallet.TypeUser)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if txHash, ok := uc.gateway.AddWallet(ctx, cmd.Address); ok {
		if err := w.Activate(txHash); err != nil {
			return nil, fmt.Errorf("failed to activate wallet: %w", err)
		}
	} else {
		uc.logger.Warnw("blockchain service unavailable, wallet created without activation",
			"user_uuid", cmd.UserUUID)
	}

	if err := uc.walletRepo.Create(ctx, w); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, wallet.NewAlreadyExistsError(cmd.UserUUID)
		}
		uc.logger.Errorw("failed to persist wallet", "user_uuid", cmd.UserUUID, "error", err)
		return nil, fmt.Errorf("failed to persist wallet: %w", err)
	}

	uc.logger.Infow("user wallet created", "wallet_id", w.ID(), "activated", w.Activated())

	result := dto.WalletToDTO(w)
	return &result, nil
}
