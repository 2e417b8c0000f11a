package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/domain/deposit"
	apperrors "crowdfund/internal/shared/errors"
)

func TestCreateDepositUseCase_Execute_Success(t *testing.T) {
	var created *deposit.Deposit
	depositRepo := &mockDepositRepository{
		CreateFunc: func(ctx context.Context, d *deposit.Deposit) error {
			d.SetID(42)
			created = d
			return nil
		},
	}
	walletRepo := &mockWalletRepository{
		ExistsByOwnerUUIDFunc: func(ctx context.Context, ownerUUID string) (bool, error) {
			return true, nil
		},
	}

	uc := NewCreateDepositUseCase(depositRepo, walletRepo, &mockTxManager{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateDepositCommand{UserUUID: "user-1"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(42), result.ID)
	assert.Equal(t, "user-1", result.UserUUID)
	assert.Len(t, result.Reference, 8)
	assert.False(t, result.Approved)

	require.NotNil(t, created)
	assert.Equal(t, result.Reference, created.Reference())
}

func TestCreateDepositUseCase_Execute_WalletMissing(t *testing.T) {
	walletRepo := &mockWalletRepository{
		ExistsByOwnerUUIDFunc: func(ctx context.Context, ownerUUID string) (bool, error) {
			return false, nil
		},
	}

	uc := NewCreateDepositUseCase(&mockDepositRepository{}, walletRepo, &mockTxManager{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateDepositCommand{UserUUID: "user-1"})

	require.Error(t, err)
	assert.Nil(t, result)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestCreateDepositUseCase_Execute_UnapprovedDepositExists(t *testing.T) {
	existing := deposit.ReconstructDeposit(
		7, "user-1", "AB12CD34", false, nil, nil, nil, nil, nil,
		time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	)
	depositRepo := &mockDepositRepository{
		GetUnapprovedByUserUUIDFunc: func(ctx context.Context, userUUID string) (*deposit.Deposit, error) {
			return existing, nil
		},
	}
	walletRepo := &mockWalletRepository{
		ExistsByOwnerUUIDFunc: func(ctx context.Context, ownerUUID string) (bool, error) {
			return true, nil
		},
	}

	uc := NewCreateDepositUseCase(depositRepo, walletRepo, &mockTxManager{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateDepositCommand{UserUUID: "user-1"})

	require.Error(t, err)
	assert.Nil(t, result)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
	assert.Contains(t, appErr.Details, "7")
}

func TestCreateDepositUseCase_Execute_RacingCreateMapsDuplicate(t *testing.T) {
	// The pre-insert check saw nothing, but a concurrent create committed
	// first and the partial unique index rejects the insert.
	winner := deposit.ReconstructDeposit(
		9, "user-1", "ZZ99YY88", false, nil, nil, nil, nil, nil,
		time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	)
	firstCheck := true
	depositRepo := &mockDepositRepository{
		GetUnapprovedByUserUUIDFunc: func(ctx context.Context, userUUID string) (*deposit.Deposit, error) {
			if firstCheck {
				firstCheck = false
				return nil, nil
			}
			return winner, nil
		},
		CreateFunc: func(ctx context.Context, d *deposit.Deposit) error {
			return errors.New(`ERROR: duplicate key value violates unique constraint "idx_deposits_user_unapproved" (SQLSTATE 23505)`)
		},
	}
	walletRepo := &mockWalletRepository{
		ExistsByOwnerUUIDFunc: func(ctx context.Context, ownerUUID string) (bool, error) {
			return true, nil
		},
	}

	uc := NewCreateDepositUseCase(depositRepo, walletRepo, &mockTxManager{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateDepositCommand{UserUUID: "user-1"})

	require.Error(t, err)
	assert.Nil(t, result)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
	assert.Contains(t, appErr.Details, "9")
}

func TestCreateDepositUseCase_Execute_EmptyUserUUID(t *testing.T) {
	uc := NewCreateDepositUseCase(&mockDepositRepository{}, &mockWalletRepository{}, &mockTxManager{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateDepositCommand{})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}
