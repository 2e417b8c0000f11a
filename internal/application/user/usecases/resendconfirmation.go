package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/domain/user"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type ResendConfirmationCommand struct {
	UserUUID string
}

// ResendConfirmationUseCase replaces any outstanding token with a fresh one
// and mails it again.
type ResendConfirmationUseCase struct {
	userRepo      user.Repository
	mailTokenRepo user.MailTokenRepository
	mailSender    MailSender
	logger        logger.Interface
}

func NewResendConfirmationUseCase(
	userRepo user.Repository,
	mailTokenRepo user.MailTokenRepository,
	mailSender MailSender,
	logger logger.Interface,
) *ResendConfirmationUseCase {
	return &ResendConfirmationUseCase{
		userRepo:      userRepo,
		mailTokenRepo: mailTokenRepo,
		mailSender:    mailSender,
		logger:        logger,
	}
}

func (uc *ResendConfirmationUseCase) Execute(ctx context.Context, cmd ResendConfirmationCommand) error {
	u, err := uc.userRepo.GetByUUID(ctx, cmd.UserUUID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "user_uuid", cmd.UserUUID, "error", err)
		return fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil {
		return user.NewNotFoundError(fmt.Sprintf("user uuid: %s", cmd.UserUUID))
	}
	if u.Enabled() {
		return errors.NewBadRequestError("account is already confirmed")
	}

	if old, err := uc.mailTokenRepo.GetByUserID(ctx, u.ID()); err == nil && old != nil {
		if err := uc.mailTokenRepo.Delete(ctx, old.ID()); err != nil {
			uc.logger.Warnw("failed to delete previous mail token", "token_id", old.ID(), "error", err)
		}
	}

	token := user.NewMailToken(u.ID())
	if err := uc.mailTokenRepo.Create(ctx, token); err != nil {
		uc.logger.Errorw("failed to persist mail token", "user_id", u.ID(), "error", err)
		return fmt.Errorf("failed to persist mail token: %w", err)
	}

	if err := uc.mailSender.SendConfirmationMail(u.Email(), token.Token()); err != nil {
		uc.logger.Warnw("failed to send confirmation mail", "email", u.Email(), "error", err)
	}

	uc.logger.Infow("confirmation mail resent", "user_id", u.ID())
	return nil
}
