package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/domain/user"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type ConfirmEmailCommand struct {
	Token string
}

// ConfirmEmailUseCase redeems a confirmation token, enabling the account.
// Expired tokens are rejected and removed so a fresh one can be requested.
type ConfirmEmailUseCase struct {
	userRepo      user.Repository
	mailTokenRepo user.MailTokenRepository
	logger        logger.Interface
}

func NewConfirmEmailUseCase(
	userRepo user.Repository,
	mailTokenRepo user.MailTokenRepository,
	logger logger.Interface,
) *ConfirmEmailUseCase {
	return &ConfirmEmailUseCase{
		userRepo:      userRepo,
		mailTokenRepo: mailTokenRepo,
		logger:        logger,
	}
}

func (uc *ConfirmEmailUseCase) Execute(ctx context.Context, cmd ConfirmEmailCommand) error {
	if cmd.Token == "" {
		return errors.NewValidationError("confirmation token is required")
	}

	token, err := uc.mailTokenRepo.GetByToken(ctx, cmd.Token)
	if err != nil {
		uc.logger.Errorw("failed to look up mail token", "error", err)
		return fmt.Errorf("failed to look up mail token: %w", err)
	}
	if token == nil {
		return errors.NewNotFoundError("confirmation token not found")
	}

	if token.IsExpired() {
		if err := uc.mailTokenRepo.Delete(ctx, token.ID()); err != nil {
			uc.logger.Warnw("failed to delete expired mail token", "token_id", token.ID(), "error", err)
		}
		return user.NewMailTokenExpiredError(cmd.Token)
	}

	u, err := uc.userRepo.GetByID(ctx, token.UserID())
	if err != nil {
		uc.logger.Errorw("failed to load user", "user_id", token.UserID(), "error", err)
		return fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil {
		return user.NewNotFoundError(fmt.Sprintf("user id: %d", token.UserID()))
	}

	u.Enable()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to enable user", "user_id", u.ID(), "error", err)
		return fmt.Errorf("failed to enable user: %w", err)
	}

	if err := uc.mailTokenRepo.Delete(ctx, token.ID()); err != nil {
		uc.logger.Warnw("failed to delete redeemed mail token", "token_id", token.ID(), "error", err)
	}

	uc.logger.Infow("email confirmed", "user_id", u.ID())
	return nil
}
