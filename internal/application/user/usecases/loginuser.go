package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/user/dto"
	"crowdfund/internal/domain/user"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type LoginUserCommand struct {
	Email    string
	Password string
}

// LoginUserUseCase authenticates email and password and issues an access
// token. Disabled accounts cannot log in.
type LoginUserUseCase struct {
	userRepo    user.Repository
	hasher      PasswordHasher
	tokenIssuer TokenIssuer
	logger      logger.Interface
}

func NewLoginUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokenIssuer TokenIssuer,
	logger logger.Interface,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:    userRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, cmd LoginUserCommand) (*dto.LoginResultDTO, error) {
	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to load user", "email", cmd.Email, "error", err)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := uc.hasher.Compare(u.PasswordHash(), cmd.Password); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if !u.Enabled() {
		return nil, errors.NewAccountInactiveError()
	}

	token, expiresAt, err := uc.tokenIssuer.Issue(u)
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &dto.LoginResultDTO{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        dto.UserToDTO(u),
	}, nil
}
