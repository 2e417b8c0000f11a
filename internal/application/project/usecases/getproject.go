package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/project/dto"
	"crowdfund/internal/domain/blockchain"
	"crowdfund/internal/domain/project"
	"crowdfund/internal/domain/wallet"
	"crowdfund/internal/shared/logger"
)

type GetProjectCommand struct {
	ProjectID uint
}

// GetProjectUseCase returns a project with its current funding read from the
// project wallet balance. Funding is omitted when the wallet does not exist
// yet or the blockchain service is unreachable.
type GetProjectUseCase struct {
	projectRepo project.Repository
	walletRepo  wallet.Repository
	gateway     blockchain.Gateway
	logger      logger.Interface
}

func NewGetProjectUseCase(
	projectRepo project.Repository,
	walletRepo wallet.Repository,
	gateway blockchain.Gateway,
	logger logger.Interface,
) *GetProjectUseCase {
	return &GetProjectUseCase{
		projectRepo: projectRepo,
		walletRepo:  walletRepo,
		gateway:     gateway,
		logger:      logger,
	}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, cmd GetProjectCommand) (*dto.ProjectDTO, error) {
	p, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "project_id", cmd.ProjectID, "error", err)
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if p == nil {
		return nil, project.NewNotFoundError(cmd.ProjectID)
	}

	result := dto.ProjectToDTO(p)

	if walletID := p.WalletID(); walletID != nil {
		w, err := uc.walletRepo.GetByID(ctx, *walletID)
		if err != nil {
			uc.logger.Warnw("failed to load project wallet", "wallet_id", *walletID, "error", err)
		} else if w != nil && w.Hash() != nil {
			balance := uc.gateway.GetBalance(ctx, *w.Hash())
			if !balance.Unknown {
				result.CurrentFunding = &balance.Amount
			}
		}
	}

	return &result, nil
}
