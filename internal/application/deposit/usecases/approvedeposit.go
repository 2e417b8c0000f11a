package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/deposit/dto"
	"crowdfund/internal/domain/deposit"
	"crowdfund/internal/domain/document"
	"crowdfund/internal/domain/user"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type ApproveDepositCommand struct {
	DepositID    uint
	ApproverUUID string
	Amount       int64
	Document     document.SaveRequest
}

// ApproveDepositUseCase confirms that a bank deposit matching the reference
// code arrived. The supporting document is stored in the same transaction as
// the approval so the two can never diverge.
type ApproveDepositUseCase struct {
	depositRepo  deposit.Repository
	documentRepo document.Repository
	userRepo     user.Repository
	txMgr        TransactionManager
	mailSender   MailSender
	logger       logger.Interface
}

func NewApproveDepositUseCase(
	depositRepo deposit.Repository,
	documentRepo document.Repository,
	userRepo user.Repository,
	txMgr TransactionManager,
	mailSender MailSender,
	logger logger.Interface,
) *ApproveDepositUseCase {
	return &ApproveDepositUseCase{
		depositRepo:  depositRepo,
		documentRepo: documentRepo,
		userRepo:     userRepo,
		txMgr:        txMgr,
		mailSender:   mailSender,
		logger:       logger,
	}
}

func (uc *ApproveDepositUseCase) Execute(ctx context.Context, cmd ApproveDepositCommand) (*dto.DepositDTO, error) {
	uc.logger.Infow("executing approve deposit use case",
		"deposit_id", cmd.DepositID, "approver_uuid", cmd.ApproverUUID, "amount", cmd.Amount)

	if cmd.DepositID == 0 {
		return nil, errors.NewValidationError("deposit id is required")
	}
	if cmd.Amount <= 0 {
		return nil, errors.NewValidationError("deposit amount must be positive")
	}

	var approved *deposit.Deposit
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		d, err := uc.depositRepo.GetByIDForUpdate(txCtx, cmd.DepositID)
		if err != nil {
			uc.logger.Errorw("failed to load deposit", "deposit_id", cmd.DepositID, "error", err)
			return fmt.Errorf("failed to load deposit: %w", err)
		}
		if d == nil {
			return deposit.NewMissingError(cmd.DepositID)
		}

		doc, err := document.NewDocument(cmd.Document)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.documentRepo.Create(txCtx, doc); err != nil {
			uc.logger.Errorw("failed to store document", "deposit_id", cmd.DepositID, "error", err)
			return fmt.Errorf("failed to store document: %w", err)
		}

		if err := d.Approve(cmd.ApproverUUID, cmd.Amount, doc.ID()); err != nil {
			return err
		}

		if err := uc.depositRepo.Update(txCtx, d); err != nil {
			uc.logger.Errorw("failed to update deposit", "deposit_id", cmd.DepositID, "error", err)
			return fmt.Errorf("failed to update deposit: %w", err)
		}

		approved = d
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.notifyOwner(ctx, approved)

	uc.logger.Infow("deposit approved", "deposit_id", approved.ID(), "amount", cmd.Amount)

	result := dto.DepositToDTO(approved)
	return &result, nil
}

// notifyOwner sends the approval notification after the commit. Mail failure
// never rolls back an approval.
func (uc *ApproveDepositUseCase) notifyOwner(ctx context.Context, d *deposit.Deposit) {
	if uc.mailSender == nil {
		return
	}

	owner, err := uc.userRepo.GetByUUID(ctx, d.UserUUID())
	if err != nil || owner == nil {
		uc.logger.Warnw("skipping approval mail, owner not found",
			"deposit_id", d.ID(), "user_uuid", d.UserUUID(), "error", err)
		return
	}

	amount := int64(0)
	if d.Amount() != nil {
		amount = *d.Amount()
	}
	if err := uc.mailSender.SendDepositApprovedMail(owner.Email(), d.Reference(), amount); err != nil {
		uc.logger.Warnw("failed to send approval mail",
			"deposit_id", d.ID(), "email", owner.Email(), "error", err)
	}
}
