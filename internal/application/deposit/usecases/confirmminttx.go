package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/deposit/dto"
	"crowdfund/internal/domain/blockchain"
	"crowdfund/internal/domain/deposit"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type ConfirmMintTxCommand struct {
	DepositID         uint
	SignedTransaction string
}

// ConfirmMintTxUseCase posts a signed mint transaction and records the
// resulting hash on the deposit. Preconditions are checked before posting to
// avoid sending a transaction for a stale deposit, and re-checked under a
// row lock before the hash is written.
type ConfirmMintTxUseCase struct {
	depositRepo deposit.Repository
	gateway     blockchain.Gateway
	txMgr       TransactionManager
	logger      logger.Interface
}

func NewConfirmMintTxUseCase(
	depositRepo deposit.Repository,
	gateway blockchain.Gateway,
	txMgr TransactionManager,
	logger logger.Interface,
) *ConfirmMintTxUseCase {
	return &ConfirmMintTxUseCase{
		depositRepo: depositRepo,
		gateway:     gateway,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *ConfirmMintTxUseCase) Execute(ctx context.Context, cmd ConfirmMintTxCommand) (*dto.DepositDTO, error) {
	uc.logger.Infow("executing confirm mint tx use case", "deposit_id", cmd.DepositID)

	if cmd.DepositID == 0 {
		return nil, errors.NewValidationError("deposit id is required")
	}
	if cmd.SignedTransaction == "" {
		return nil, errors.NewValidationError("signed transaction is required")
	}

	d, err := uc.depositRepo.GetByID(ctx, cmd.DepositID)
	if err != nil {
		uc.logger.Errorw("failed to load deposit", "deposit_id", cmd.DepositID, "error", err)
		return nil, fmt.Errorf("failed to load deposit: %w", err)
	}
	if d == nil {
		return nil, deposit.NewMissingError(cmd.DepositID)
	}
	if err := d.CanMint(); err != nil {
		return nil, err
	}

	txHash, err := uc.gateway.PostTransaction(ctx, cmd.SignedTransaction, blockchain.TxTypeIssuerMint)
	if err != nil {
		uc.logger.Errorw("failed to post mint transaction", "deposit_id", cmd.DepositID, "error", err)
		return nil, err
	}

	var minted *deposit.Deposit
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		locked, err := uc.depositRepo.GetByIDForUpdate(txCtx, cmd.DepositID)
		if err != nil {
			uc.logger.Errorw("failed to reload deposit", "deposit_id", cmd.DepositID, "error", err)
			return fmt.Errorf("failed to reload deposit: %w", err)
		}
		if locked == nil {
			return deposit.NewMissingError(cmd.DepositID)
		}

		if err := locked.ConfirmMint(txHash); err != nil {
			return err
		}
		if err := uc.depositRepo.Update(txCtx, locked); err != nil {
			uc.logger.Errorw("failed to update deposit", "deposit_id", cmd.DepositID, "error", err)
			return fmt.Errorf("failed to update deposit: %w", err)
		}

		minted = locked
		return nil
	})
	if txErr != nil {
		// The transaction hit the chain but was not recorded locally. Surface
		// the hash so an operator can reconcile.
		uc.logger.Errorw("mint posted but not recorded",
			"deposit_id", cmd.DepositID, "tx_hash", txHash, "error", txErr)
		return nil, fmt.Errorf("mint posted with hash %s but not recorded: %w", txHash, txErr)
	}

	uc.logger.Infow("mint confirmed", "deposit_id", minted.ID(), "tx_hash", txHash)

	result := dto.DepositToDTO(minted)
	return &result, nil
}
