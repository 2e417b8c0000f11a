package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/domain/deposit"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type DeleteDepositCommand struct {
	DepositID uint
}

// DeleteDepositUseCase removes a deposit record unconditionally. It is an
// administrative cleanup operation and deleting an absent ID succeeds.
type DeleteDepositUseCase struct {
	depositRepo deposit.Repository
	logger      logger.Interface
}

func NewDeleteDepositUseCase(depositRepo deposit.Repository, logger logger.Interface) *DeleteDepositUseCase {
	return &DeleteDepositUseCase{
		depositRepo: depositRepo,
		logger:      logger,
	}
}

func (uc *DeleteDepositUseCase) Execute(ctx context.Context, cmd DeleteDepositCommand) error {
	uc.logger.Infow("executing delete deposit use case", "deposit_id", cmd.DepositID)

	if cmd.DepositID == 0 {
		return errors.NewValidationError("deposit id is required")
	}

	if err := uc.depositRepo.DeleteByID(ctx, cmd.DepositID); err != nil {
		uc.logger.Errorw("failed to delete deposit", "deposit_id", cmd.DepositID, "error", err)
		return fmt.Errorf("failed to delete deposit: %w", err)
	}

	uc.logger.Infow("deposit deleted", "deposit_id", cmd.DepositID)
	return nil
}
