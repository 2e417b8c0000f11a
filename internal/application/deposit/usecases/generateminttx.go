package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/deposit/dto"
	"crowdfund/internal/domain/blockchain"
	"crowdfund/internal/domain/deposit"
	"crowdfund/internal/domain/transaction"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type GenerateMintTxCommand struct {
	DepositID       uint
	ToWalletHash    string
	RequestedByUUID string
}

// GenerateMintTxUseCase asks the blockchain service for an unsigned mint
// transaction covering an approved deposit. The deposit itself is not
// mutated, so no row lock is held across the remote call; the final
// precondition check happens again when the signed transaction comes back.
type GenerateMintTxUseCase struct {
	depositRepo deposit.Repository
	txInfoRepo  transaction.Repository
	gateway     blockchain.Gateway
	logger      logger.Interface
}

func NewGenerateMintTxUseCase(
	depositRepo deposit.Repository,
	txInfoRepo transaction.Repository,
	gateway blockchain.Gateway,
	logger logger.Interface,
) *GenerateMintTxUseCase {
	return &GenerateMintTxUseCase{
		depositRepo: depositRepo,
		txInfoRepo:  txInfoRepo,
		gateway:     gateway,
		logger:      logger,
	}
}

func (uc *GenerateMintTxUseCase) Execute(ctx context.Context, cmd GenerateMintTxCommand) (*dto.MintTransactionDTO, error) {
	uc.logger.Infow("executing generate mint tx use case",
		"deposit_id", cmd.DepositID, "to_wallet", cmd.ToWalletHash)

	if cmd.DepositID == 0 {
		return nil, errors.NewValidationError("deposit id is required")
	}
	if cmd.ToWalletHash == "" {
		return nil, errors.NewValidationError("destination wallet hash is required")
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

	// Approval always records an amount; a NULL here means the row was
	// tampered with outside the workflow.
	if d.Amount() == nil {
		uc.logger.Errorw("approved deposit has no amount", "deposit_id", d.ID())
		return nil, errors.NewInternalError("deposit amount is missing")
	}

	amount := *d.Amount()
	txData, err := uc.gateway.GenerateMintTx(ctx, blockchain.MintSenderWallet, cmd.ToWalletHash, amount)
	if err != nil {
		uc.logger.Errorw("failed to generate mint transaction",
			"deposit_id", cmd.DepositID, "error", err)
		return nil, err
	}

	info, err := transaction.NewInfo(
		transaction.TypeMint,
		"Mint",
		fmt.Sprintf("You are about to mint %d tokens for deposit %s", amount, d.Reference()),
		cmd.RequestedByUUID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.txInfoRepo.Create(ctx, info); err != nil {
		uc.logger.Errorw("failed to record transaction info", "deposit_id", cmd.DepositID, "error", err)
		return nil, fmt.Errorf("failed to record transaction info: %w", err)
	}

	uc.logger.Infow("mint transaction generated", "deposit_id", cmd.DepositID, "tx_info_id", info.ID())

	return &dto.MintTransactionDTO{
		TxData: txData,
		Info:   dto.TransactionInfoToDTO(info),
	}, nil
}
