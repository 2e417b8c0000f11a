package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/user/dto"
	"crowdfund/internal/domain/user"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type UpdateUserCommand struct {
	UserUUID    string
	FirstName   string
	LastName    string
	PhoneNumber string
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByUUID(ctx, cmd.UserUUID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "user_uuid", cmd.UserUUID, "error", err)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil {
		return nil, user.NewNotFoundError(fmt.Sprintf("user uuid: %s", cmd.UserUUID))
	}

	if err := u.UpdateProfile(cmd.FirstName, cmd.LastName, cmd.PhoneNumber); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", u.ID(), "error", err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("user updated", "user_id", u.ID())

	result := dto.UserToDTO(u)
	return &result, nil
}
