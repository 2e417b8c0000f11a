package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/deposit/dto"
	"crowdfund/internal/domain/deposit"
	"crowdfund/internal/domain/wallet"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type CreateDepositCommand struct {
	UserUUID string
}

type CreateDepositUseCase struct {
	depositRepo deposit.Repository
	walletRepo  wallet.Repository
	txMgr       TransactionManager
	logger      logger.Interface
}

func NewCreateDepositUseCase(
	depositRepo deposit.Repository,
	walletRepo wallet.Repository,
	txMgr TransactionManager,
	logger logger.Interface,
) *CreateDepositUseCase {
	return &CreateDepositUseCase{
		depositRepo: depositRepo,
		walletRepo:  walletRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *CreateDepositUseCase) Execute(ctx context.Context, cmd CreateDepositCommand) (*dto.DepositDTO, error) {
	uc.logger.Infow("executing create deposit use case", "user_uuid", cmd.UserUUID)

	if cmd.UserUUID == "" {
		return nil, errors.NewValidationError("user uuid is required")
	}

	var created *deposit.Deposit
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		hasWallet, err := uc.walletRepo.ExistsByOwnerUUID(txCtx, cmd.UserUUID)
		if err != nil {
			uc.logger.Errorw("failed to check wallet", "user_uuid", cmd.UserUUID, "error", err)
			return fmt.Errorf("failed to check wallet: %w", err)
		}
		if !hasWallet {
			return wallet.NewMissingError(cmd.UserUUID)
		}

		existing, err := uc.depositRepo.GetUnapprovedByUserUUID(txCtx, cmd.UserUUID)
		if err != nil {
			uc.logger.Errorw("failed to check outstanding deposits", "user_uuid", cmd.UserUUID, "error", err)
			return fmt.Errorf("failed to check outstanding deposits: %w", err)
		}
		if existing != nil {
			return deposit.NewAlreadyExistsError(existing.ID())
		}

		d, err := deposit.NewDeposit(cmd.UserUUID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.depositRepo.Create(txCtx, d); err != nil {
			// The partial unique index catches a racing create that committed
			// between our check and this insert.
			if errors.IsDuplicateError(err) {
				return uc.alreadyExists(txCtx, cmd.UserUUID)
			}
			uc.logger.Errorw("failed to persist deposit", "user_uuid", cmd.UserUUID, "error", err)
			return fmt.Errorf("failed to persist deposit: %w", err)
		}

		created = d
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("deposit created", "deposit_id", created.ID(), "reference", created.Reference())

	result := dto.DepositToDTO(created)
	return &result, nil
}

func (uc *CreateDepositUseCase) alreadyExists(ctx context.Context, userUUID string) error {
	existing, err := uc.depositRepo.GetUnapprovedByUserUUID(ctx, userUUID)
	if err != nil || existing == nil {
		return deposit.NewAlreadyExistsError(0)
	}
	return deposit.NewAlreadyExistsError(existing.ID())
}
