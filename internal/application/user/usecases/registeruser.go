package usecases

import (
	"context"
	"fmt"

	"crowdfund/internal/application/user/dto"
	"crowdfund/internal/domain/user"
	"crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type RegisterUserCommand struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
}

// RegisterUserUseCase creates a disabled account and mails a confirmation
// token. The account stays unusable until the token is redeemed.
type RegisterUserUseCase struct {
	userRepo      user.Repository
	mailTokenRepo user.MailTokenRepository
	hasher        PasswordHasher
	mailSender    MailSender
	logger        logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	mailTokenRepo user.MailTokenRepository,
	hasher PasswordHasher,
	mailSender MailSender,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:      userRepo,
		mailTokenRepo: mailTokenRepo,
		hasher:        hasher,
		mailSender:    mailSender,
		logger:        logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing register user use case", "email", cmd.Email)

	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email", "email", cmd.Email, "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, user.NewEmailExistsError(cmd.Email)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := user.NewUser(cmd.Email, hash, cmd.FirstName, cmd.LastName, cmd.PhoneNumber)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, user.NewEmailExistsError(cmd.Email)
		}
		uc.logger.Errorw("failed to persist user", "email", cmd.Email, "error", err)
		return nil, fmt.Errorf("failed to persist user: %w", err)
	}

	token := user.NewMailToken(u.ID())
	if err := uc.mailTokenRepo.Create(ctx, token); err != nil {
		uc.logger.Errorw("failed to persist mail token", "user_id", u.ID(), "error", err)
		return nil, fmt.Errorf("failed to persist mail token: %w", err)
	}

	if err := uc.mailSender.SendConfirmationMail(u.Email(), token.Token()); err != nil {
		uc.logger.Warnw("failed to send confirmation mail", "email", u.Email(), "error", err)
	}

	uc.logger.Infow("user registered", "user_id", u.ID(), "uuid", u.UUID())

	result := dto.UserToDTO(u)
	return &result, nil
}
