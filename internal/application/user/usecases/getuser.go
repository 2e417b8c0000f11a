package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/user/dto"
	"crowdfund/internal/domain/user"
	"crowdfund/internal/shared/logger"
)

type GetUserCommand struct {
	UserUUID string
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, cmd GetUserCommand) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByUUID(ctx, cmd.UserUUID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "user_uuid", cmd.UserUUID, "error", err)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil {
		return nil, user.NewNotFoundError(fmt.Sprintf("user uuid: %s", cmd.UserUUID))
	}

	result := dto.UserToDTO(u)
	return &result, nil
}
