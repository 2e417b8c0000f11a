package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/deposit/dto"
	"crowdfund/internal/domain/deposit"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type ListUserDepositsCommand struct {
	UserUUID string
}

// ListUserDepositsUseCase returns a user's own deposit history, newest
// first.
type ListUserDepositsUseCase struct {
	depositRepo deposit.Repository
	logger      logger.Interface
}

func NewListUserDepositsUseCase(depositRepo deposit.Repository, logger logger.Interface) *ListUserDepositsUseCase {
	return &ListUserDepositsUseCase{
		depositRepo: depositRepo,
		logger:      logger,
	}
}

func (uc *ListUserDepositsUseCase) Execute(ctx context.Context, cmd ListUserDepositsCommand) ([]dto.DepositDTO, error) {
	if cmd.UserUUID == "" {
		return nil, errors.NewValidationError("user uuid is required")
	}

	deposits, err := uc.depositRepo.ListByUserUUID(ctx, cmd.UserUUID)
	if err != nil {
		uc.logger.Errorw("failed to list user deposits", "user_uuid", cmd.UserUUID, "error", err)
		return nil, fmt.Errorf("failed to list user deposits: %w", err)
	}

	return dto.DepositsToDTO(deposits), nil
}
