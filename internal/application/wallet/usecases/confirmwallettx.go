package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/wallet/dto"
	"crowdfund/internal/domain/blockchain"
	"crowdfund/internal/domain/organization"
	"crowdfund/internal/domain/project"
	"crowdfund/internal/domain/wallet"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type ConfirmWalletTxCommand struct {
	// WalletType selects the target: organization or project.
	WalletType        wallet.Type
	TargetID          uint
	SignedTransaction string
}

// ConfirmWalletTxUseCase posts a signed wallet-creation transaction and
// records the resulting wallet against its organization or project. The
// wallet row and the back-reference are written in one transaction.
type ConfirmWalletTxUseCase struct {
	walletRepo       wallet.Repository
	organizationRepo organization.Repository
	projectRepo      project.Repository
	gateway          blockchain.Gateway
	txMgr            TransactionManager
	logger           logger.Interface
}

func NewConfirmWalletTxUseCase(
	walletRepo wallet.Repository,
	organizationRepo organization.Repository,
	projectRepo project.Repository,
	gateway blockchain.Gateway,
	txMgr TransactionManager,
	logger logger.Interface,
) *ConfirmWalletTxUseCase {
	return &ConfirmWalletTxUseCase{
		walletRepo:       walletRepo,
		organizationRepo: organizationRepo,
		projectRepo:      projectRepo,
		gateway:          gateway,
		txMgr:            txMgr,
		logger:           logger,
	}
}

func (uc *ConfirmWalletTxUseCase) Execute(ctx context.Context, cmd ConfirmWalletTxCommand) (*dto.WalletDTO, error) {
	uc.logger.Infow("executing confirm wallet tx use case",
		"wallet_type", cmd.WalletType, "target_id", cmd.TargetID)

	if cmd.TargetID == 0 {
		return nil, errors.NewValidationError("target id is required")
	}
	if cmd.SignedTransaction == "" {
		return nil, errors.NewValidationError("signed transaction is required")
	}

	var txType blockchain.TxType
	var ownerUUID string
	switch cmd.WalletType {
	case wallet.TypeOrganization:
		txType = blockchain.TxTypeCreateOrg
		ownerUUID = wallet.OrganizationOwner(cmd.TargetID)
	case wallet.TypeProject:
		txType = blockchain.TxTypeCreateProject
		ownerUUID = wallet.ProjectOwner(cmd.TargetID)
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported wallet type: %s", cmd.WalletType))
	}

	txHash, err := uc.gateway.PostTransaction(ctx, cmd.SignedTransaction, txType)
	if err != nil {
		uc.logger.Errorw("failed to post wallet tx", "target_id", cmd.TargetID, "error", err)
		return nil, err
	}

	var created *wallet.Wallet
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		w, err := wallet.NewWallet(ownerUUID, txHash, cmd.WalletType)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := w.Activate(txHash); err != nil {
			return fmt.Errorf("failed to activate wallet: %w", err)
		}
		if err := uc.walletRepo.Create(txCtx, w); err != nil {
			if errors.IsDuplicateError(err) {
				return wallet.NewAlreadyExistsError(ownerUUID)
			}
			return fmt.Errorf("failed to persist wallet: %w", err)
		}

		if err := uc.attach(txCtx, cmd, w.ID()); err != nil {
			return err
		}

		created = w
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("wallet tx posted but not recorded",
			"target_id", cmd.TargetID, "tx_hash", txHash, "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("wallet confirmed", "wallet_id", created.ID(), "tx_hash", txHash)

	result := dto.WalletToDTO(created)
	return &result, nil
}

func (uc *ConfirmWalletTxUseCase) attach(ctx context.Context, cmd ConfirmWalletTxCommand, walletID uint) error {
	switch cmd.WalletType {
	case wallet.TypeOrganization:
		org, err := uc.organizationRepo.GetByID(ctx, cmd.TargetID)
		if err != nil {
			return fmt.Errorf("failed to load organization: %w", err)
		}
		if org == nil {
			return organization.NewNotFoundError(cmd.TargetID)
		}
		if err := org.AttachWallet(walletID); err != nil {
			return errors.NewConflictError(err.Error())
		}
		if err := uc.organizationRepo.Update(ctx, org); err != nil {
			return fmt.Errorf("failed to update organization: %w", err)
		}
	case wallet.TypeProject:
		p, err := uc.projectRepo.GetByID(ctx, cmd.TargetID)
		if err != nil {
			return fmt.Errorf("failed to load project: %w", err)
		}
		if p == nil {
			return project.NewNotFoundError(cmd.TargetID)
		}
		if err := p.AttachWallet(walletID); err != nil {
			return errors.NewConflictError(err.Error())
		}
		if err := uc.projectRepo.Update(ctx, p); err != nil {
			return fmt.Errorf("failed to update project: %w", err)
		}
	}
	return nil
}
