package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/domain/user"
	apperrors "crowdfund/internal/shared/errors"
)

func TestRegisterUserUseCase_Execute_Success(t *testing.T) {
	var createdUser *user.User
	userRepo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			u.SetID(1)
			createdUser = u
			return nil
		},
	}
	var savedToken *user.MailToken
	tokenRepo := &mockMailTokenRepository{
		CreateFunc: func(ctx context.Context, tok *user.MailToken) error {
			tok.SetID(1)
			savedToken = tok
			return nil
		},
	}
	var mailedToken string
	mailSender := &mockMailSender{
		SendConfirmationMailFunc: func(to, token string) error {
			assert.Equal(t, "ada@example.com", to)
			mailedToken = token
			return nil
		},
	}

	uc := NewRegisterUserUseCase(userRepo, tokenRepo, &mockHasher{}, mailSender, &mockLogger{})
	result, err := uc.Execute(context.Background(), RegisterUserCommand{
		Email:     "ada@example.com",
		Password:  "correct-horse",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Enabled)
	assert.NotEmpty(t, result.UUID)
	assert.Equal(t, "user", result.Role)

	require.NotNil(t, createdUser)
	assert.Equal(t, "hashed:correct-horse", createdUser.PasswordHash())

	require.NotNil(t, savedToken)
	assert.Equal(t, savedToken.Token(), mailedToken)
}

func TestRegisterUserUseCase_Execute_EmailExists(t *testing.T) {
	existing, err := user.NewUser("ada@example.com", "hash", "Ada", "Lovelace", "")
	require.NoError(t, err)
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return existing, nil
		},
	}

	uc := NewRegisterUserUseCase(userRepo, &mockMailTokenRepository{}, &mockHasher{}, &mockMailSender{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), RegisterUserCommand{
		Email:     "ada@example.com",
		Password:  "correct-horse",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestRegisterUserUseCase_Execute_ShortPassword(t *testing.T) {
	uc := NewRegisterUserUseCase(&mockUserRepository{}, &mockMailTokenRepository{},
		&mockHasher{}, &mockMailSender{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), RegisterUserCommand{
		Email:     "ada@example.com",
		Password:  "short",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestLoginUserUseCase_Execute_Success(t *testing.T) {
	u := user.ReconstructUser(1, "uuid-1", "ada@example.com", "hashed:correct-horse",
		"Ada", "Lovelace", "", user.RoleUser, true,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return u, nil
		},
	}
	issuer := &mockTokenIssuer{
		IssueFunc: func(u *user.User) (string, int64, error) {
			return "jwt-token", 1700000000, nil
		},
	}

	uc := NewLoginUserUseCase(userRepo, &mockHasher{}, issuer, &mockLogger{})
	result, err := uc.Execute(context.Background(), LoginUserCommand{
		Email:    "ada@example.com",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "jwt-token", result.AccessToken)
	assert.Equal(t, "uuid-1", result.User.UUID)
}

func TestLoginUserUseCase_Execute_WrongPassword(t *testing.T) {
	u := user.ReconstructUser(1, "uuid-1", "ada@example.com", "hashed:correct-horse",
		"Ada", "Lovelace", "", user.RoleUser, true,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return u, nil
		},
	}

	uc := NewLoginUserUseCase(userRepo, &mockHasher{}, &mockTokenIssuer{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), LoginUserCommand{
		Email:    "ada@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, result)

	authErr := apperrors.GetAuthError(err)
	require.NotNil(t, authErr)
	assert.Equal(t, apperrors.ErrorTypeInvalidCredentials, authErr.Type)
}

func TestLoginUserUseCase_Execute_DisabledAccount(t *testing.T) {
	u := user.ReconstructUser(1, "uuid-1", "ada@example.com", "hashed:correct-horse",
		"Ada", "Lovelace", "", user.RoleUser, false,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return u, nil
		},
	}

	uc := NewLoginUserUseCase(userRepo, &mockHasher{}, &mockTokenIssuer{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), LoginUserCommand{
		Email:    "ada@example.com",
		Password: "correct-horse",
	})

	require.Error(t, err)
	assert.Nil(t, result)

	authErr := apperrors.GetAuthError(err)
	require.NotNil(t, authErr)
	assert.Equal(t, apperrors.ErrorTypeAccountInactive, authErr.Type)
}

func TestConfirmEmailUseCase_Execute_EnablesUser(t *testing.T) {
	u := user.ReconstructUser(1, "uuid-1", "ada@example.com", "hash",
		"Ada", "Lovelace", "", user.RoleUser, false,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	token := user.NewMailToken(1)
	token.SetID(5)

	deleted := false
	tokenRepo := &mockMailTokenRepository{
		GetByTokenFunc: func(ctx context.Context, tok string) (*user.MailToken, error) {
			return token, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			assert.Equal(t, uint(5), id)
			deleted = true
			return nil
		},
	}
	var updated *user.User
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return u, nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			updated = u
			return nil
		},
	}

	uc := NewConfirmEmailUseCase(userRepo, tokenRepo, &mockLogger{})
	err := uc.Execute(context.Background(), ConfirmEmailCommand{Token: token.Token()})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.Enabled())
	assert.True(t, deleted)
}

func TestConfirmEmailUseCase_Execute_ExpiredToken(t *testing.T) {
	stale := user.ReconstructMailToken(5, 1, "tok-123",
		time.Now().UTC().Add(-user.MailTokenTTL-time.Minute))
	tokenRepo := &mockMailTokenRepository{
		GetByTokenFunc: func(ctx context.Context, tok string) (*user.MailToken, error) {
			return stale, nil
		},
	}

	uc := NewConfirmEmailUseCase(&mockUserRepository{}, tokenRepo, &mockLogger{})
	err := uc.Execute(context.Background(), ConfirmEmailCommand{Token: "tok-123"})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeBadRequest, appErr.Type)
}
