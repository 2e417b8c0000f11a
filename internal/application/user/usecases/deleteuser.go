package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/domain/user"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID uint
}

type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user id is required")
	}

	if err := uc.userRepo.DeleteByID(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID)
	return nil
}
