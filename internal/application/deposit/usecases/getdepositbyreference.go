package usecases

import (
	"context"
	"fmt"
	"strings"

	"crowdfund/internal/application/deposit/dto"
	"crowdfund/internal/domain/deposit"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type GetDepositByReferenceCommand struct {
	Reference string
}

// GetDepositByReferenceUseCase looks up a deposit by the reference code an
// admin reads off a bank statement.
type GetDepositByReferenceUseCase struct {
	depositRepo deposit.Repository
	logger      logger.Interface
}

func NewGetDepositByReferenceUseCase(depositRepo deposit.Repository, logger logger.Interface) *GetDepositByReferenceUseCase {
	return &GetDepositByReferenceUseCase{
		depositRepo: depositRepo,
		logger:      logger,
	}
}

func (uc *GetDepositByReferenceUseCase) Execute(ctx context.Context, cmd GetDepositByReferenceCommand) (*dto.DepositDTO, error) {
	reference := strings.ToUpper(strings.TrimSpace(cmd.Reference))
	if reference == "" {
		return nil, errors.NewValidationError("deposit reference is required")
	}

	d, err := uc.depositRepo.GetByReference(ctx, reference)
	if err != nil {
		uc.logger.Errorw("failed to look up deposit", "reference", reference, "error", err)
		return nil, fmt.Errorf("failed to look up deposit: %w", err)
	}
	if d == nil {
		return nil, errors.NewNotFoundError("deposit not found", fmt.Sprintf("reference: %s", reference))
	}

	result := dto.DepositToDTO(d)
	return &result, nil
}
