package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/wallet/dto"
	"crowdfund/internal/domain/blockchain"
	"crowdfund/internal/domain/organization"
	"crowdfund/internal/domain/transaction"
	"crowdfund/internal/domain/wallet"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type GenerateOrganizationWalletTxCommand struct {
	OrganizationID uint
	UserUUID       string
}

// GenerateOrganizationWalletTxUseCase produces the unsigned transaction that
// creates an organization wallet on chain. The caller must own an activated
// wallet, since the transaction is issued from it.
type GenerateOrganizationWalletTxUseCase struct {
	organizationRepo organization.Repository
	walletRepo       wallet.Repository
	txInfoRepo       transaction.Repository
	gateway          blockchain.Gateway
	logger           logger.Interface
}

func NewGenerateOrganizationWalletTxUseCase(
	organizationRepo organization.Repository,
	walletRepo wallet.Repository,
	txInfoRepo transaction.Repository,
	gateway blockchain.Gateway,
	logger logger.Interface,
) *GenerateOrganizationWalletTxUseCase {
	return &GenerateOrganizationWalletTxUseCase{
		organizationRepo: organizationRepo,
		walletRepo:       walletRepo,
		txInfoRepo:       txInfoRepo,
		gateway:          gateway,
		logger:           logger,
	}
}

func (uc *GenerateOrganizationWalletTxUseCase) Execute(ctx context.Context, cmd GenerateOrganizationWalletTxCommand) (*dto.WalletTransactionDTO, error) {
	uc.logger.Infow("executing generate organization wallet tx use case",
		"organization_id", cmd.OrganizationID, "user_uuid", cmd.UserUUID)

	if cmd.OrganizationID == 0 {
		return nil, errors.NewValidationError("organization id is required")
	}

	org, err := uc.organizationRepo.GetByID(ctx, cmd.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to load organization", "organization_id", cmd.OrganizationID, "error", err)
		return nil, fmt.Errorf("failed to load organization: %w", err)
	}
	if org == nil {
		return nil, organization.NewNotFoundError(cmd.OrganizationID)
	}
	if !org.Approved() {
		return nil, organization.NewNotApprovedError(cmd.OrganizationID)
	}
	if org.WalletID() != nil {
		return nil, wallet.NewAlreadyExistsError(wallet.OrganizationOwner(cmd.OrganizationID))
	}

	fromHash, err := uc.activatedWalletHash(ctx, cmd.UserUUID)
	if err != nil {
		return nil, err
	}

	txData, err := uc.gateway.GenerateAddOrganizationTx(ctx, fromHash, org.Name())
	if err != nil {
		uc.logger.Errorw("failed to generate organization wallet tx",
			"organization_id", cmd.OrganizationID, "error", err)
		return nil, err
	}

	info, err := transaction.NewInfo(
		transaction.TypeCreateOrganization,
		"Create organization",
		fmt.Sprintf("You are about to create a wallet for organization %s", org.Name()),
		cmd.UserUUID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.txInfoRepo.Create(ctx, info); err != nil {
		uc.logger.Errorw("failed to record transaction info",
			"organization_id", cmd.OrganizationID, "error", err)
		return nil, fmt.Errorf("failed to record transaction info: %w", err)
	}

	return &dto.WalletTransactionDTO{
		TxData: txData,
		Info:   dto.TransactionInfoToDTO(info),
	}, nil
}

func (uc *GenerateOrganizationWalletTxUseCase) activatedWalletHash(ctx context.Context, ownerUUID string) (string, error) {
	w, err := uc.walletRepo.GetByOwnerUUID(ctx, ownerUUID)
	if err != nil {
		uc.logger.Errorw("failed to load wallet", "owner_uuid", ownerUUID, "error", err)
		return "", fmt.Errorf("failed to load wallet: %w", err)
	}
	if w == nil || w.Hash() == nil {
		return "", wallet.NewMissingError(ownerUUID)
	}
	return *w.Hash(), nil
}
