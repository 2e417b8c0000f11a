package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/wallet/dto"
	"crowdfund/internal/domain/blockchain"
	"crowdfund/internal/domain/organization"
	"crowdfund/internal/domain/project"
	"crowdfund/internal/domain/transaction"
	"crowdfund/internal/domain/wallet"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type GenerateProjectWalletTxCommand struct {
	ProjectID uint
	UserUUID  string
}

// GenerateProjectWalletTxUseCase produces the unsigned transaction that
// creates a project wallet on chain. The owning organization must already
// have an activated wallet.
type GenerateProjectWalletTxUseCase struct {
	projectRepo      project.Repository
	organizationRepo organization.Repository
	walletRepo       wallet.Repository
	txInfoRepo       transaction.Repository
	gateway          blockchain.Gateway
	logger           logger.Interface
}

func NewGenerateProjectWalletTxUseCase(
	projectRepo project.Repository,
	organizationRepo organization.Repository,
	walletRepo wallet.Repository,
	txInfoRepo transaction.Repository,
	gateway blockchain.Gateway,
	logger logger.Interface,
) *GenerateProjectWalletTxUseCase {
	return &GenerateProjectWalletTxUseCase{
		projectRepo:      projectRepo,
		organizationRepo: organizationRepo,
		walletRepo:       walletRepo,
		txInfoRepo:       txInfoRepo,
		gateway:          gateway,
		logger:           logger,
	}
}

func (uc *GenerateProjectWalletTxUseCase) Execute(ctx context.Context, cmd GenerateProjectWalletTxCommand) (*dto.WalletTransactionDTO, error) {
	uc.logger.Infow("executing generate project wallet tx use case",
		"project_id", cmd.ProjectID, "user_uuid", cmd.UserUUID)

	if cmd.ProjectID == 0 {
		return nil, errors.NewValidationError("project id is required")
	}

	p, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "project_id", cmd.ProjectID, "error", err)
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if p == nil {
		return nil, project.NewNotFoundError(cmd.ProjectID)
	}
	if p.WalletID() != nil {
		return nil, wallet.NewAlreadyExistsError(wallet.ProjectOwner(cmd.ProjectID))
	}

	orgHash, err := uc.organizationWalletHash(ctx, p.OrganizationID())
	if err != nil {
		return nil, err
	}

	userWallet, err := uc.walletRepo.GetByOwnerUUID(ctx, cmd.UserUUID)
	if err != nil {
		uc.logger.Errorw("failed to load wallet", "owner_uuid", cmd.UserUUID, "error", err)
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}
	if userWallet == nil || userWallet.Hash() == nil {
		return nil, wallet.NewMissingError(cmd.UserUUID)
	}

	txData, err := uc.gateway.GenerateProjectWalletTx(ctx, blockchain.ProjectWalletRequest{
		UserWalletHash:       *userWallet.Hash(),
		OrganizationHash:     orgHash,
		Name:                 p.Name(),
		Description:          p.Description(),
		MaxInvestmentPerUser: p.MaxPerUser(),
		MinInvestmentPerUser: p.MinPerUser(),
		InvestmentCap:        p.InvestmentCap(),
	})
	if err != nil {
		uc.logger.Errorw("failed to generate project wallet tx", "project_id", cmd.ProjectID, "error", err)
		return nil, err
	}

	info, err := transaction.NewInfo(
		transaction.TypeCreateProjectWallet,
		"Create project",
		fmt.Sprintf("You are about to create a wallet for project %s", p.Name()),
		cmd.UserUUID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.txInfoRepo.Create(ctx, info); err != nil {
		uc.logger.Errorw("failed to record transaction info", "project_id", cmd.ProjectID, "error", err)
		return nil, fmt.Errorf("failed to record transaction info: %w", err)
	}

	return &dto.WalletTransactionDTO{
		TxData: txData,
		Info:   dto.TransactionInfoToDTO(info),
	}, nil
}

func (uc *GenerateProjectWalletTxUseCase) organizationWalletHash(ctx context.Context, organizationID uint) (string, error) {
	org, err := uc.organizationRepo.GetByID(ctx, organizationID)
	if err != nil {
		uc.logger.Errorw("failed to load organization", "organization_id", organizationID, "error", err)
		return "", fmt.Errorf("failed to load organization: %w", err)
	}
	if org == nil {
		return "", organization.NewNotFoundError(organizationID)
	}
	if org.WalletID() == nil {
		return "", wallet.NewMissingError(wallet.OrganizationOwner(organizationID))
	}

	w, err := uc.walletRepo.GetByID(ctx, *org.WalletID())
	if err != nil {
		uc.logger.Errorw("failed to load organization wallet", "wallet_id", *org.WalletID(), "error", err)
		return "", fmt.Errorf("failed to load organization wallet: %w", err)
	}
	if w == nil || w.Hash() == nil {
		return "", wallet.NewMissingError(wallet.OrganizationOwner(organizationID))
	}
	return *w.Hash(), nil
}
