package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/deposit/dto"
	"crowdfund/internal/domain/deposit"
	"crowdfund/internal/shared/logger"
)

type ListDepositsCommand struct {
	Approved bool
}

// ListDepositsUseCase returns deposits carrying a supporting document,
// filtered by approval state. Admins use the unapproved listing as their
// reconciliation work queue.
type ListDepositsUseCase struct {
	depositRepo deposit.Repository
	logger      logger.Interface
}

func NewListDepositsUseCase(depositRepo deposit.Repository, logger logger.Interface) *ListDepositsUseCase {
	return &ListDepositsUseCase{
		depositRepo: depositRepo,
		logger:      logger,
	}
}

func (uc *ListDepositsUseCase) Execute(ctx context.Context, cmd ListDepositsCommand) ([]dto.DepositDTO, error) {
	deposits, err := uc.depositRepo.ListWithDocument(ctx, cmd.Approved)
	if err != nil {
		uc.logger.Errorw("failed to list deposits", "approved", cmd.Approved, "error", err)
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}

	return dto.DepositsToDTO(deposits), nil
}
