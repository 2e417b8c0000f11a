package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/domain/blockchain"
	"crowdfund/internal/domain/deposit"
	"crowdfund/internal/domain/document"
	"crowdfund/internal/domain/transaction"
	apperrors "crowdfund/internal/shared/errors"
)

func TestGenerateMintTxUseCase_Execute_Success(t *testing.T) {
	depositRepo := &mockDepositRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*deposit.Deposit, error) {
			return approvedDeposit(5), nil
		},
	}
	var generatedFrom, generatedTo string
	var generatedAmount int64
	gateway := &mockGateway{
		GenerateMintTxFunc: func(ctx context.Context, fromWallet, toWallet string, amount int64) (blockchain.TransactionData, error) {
			generatedFrom = fromWallet
			generatedTo = toWallet
			generatedAmount = amount
			return blockchain.TransactionData{Data: "unsigned-mint-tx"}, nil
		},
	}
	txInfoRepo := &mockTransactionInfoRepository{
		CreateFunc: func(ctx context.Context, i *transaction.Info) error {
			i.SetID(11)
			return nil
		},
	}

	uc := NewGenerateMintTxUseCase(depositRepo, txInfoRepo, gateway, &mockLogger{})
	result, err := uc.Execute(context.Background(), GenerateMintTxCommand{
		DepositID:       5,
		ToWalletHash:    "0xuserwallet",
		RequestedByUUID: "admin-1",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "unsigned-mint-tx", result.TxData.Data)
	assert.Equal(t, uint(11), result.Info.ID)
	assert.Equal(t, string(transaction.TypeMint), result.Info.Type)

	assert.Equal(t, blockchain.MintSenderWallet, generatedFrom)
	assert.Equal(t, "0xuserwallet", generatedTo)
	assert.Equal(t, int64(5000), generatedAmount)
}

func TestGenerateMintTxUseCase_Execute_DepositMissing(t *testing.T) {
	uc := NewGenerateMintTxUseCase(&mockDepositRepository{}, &mockTransactionInfoRepository{},
		&mockGateway{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), GenerateMintTxCommand{
		DepositID: 404, ToWalletHash: "0xw", RequestedByUUID: "admin-1",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestGenerateMintTxUseCase_Execute_NotApproved(t *testing.T) {
	depositRepo := &mockDepositRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*deposit.Deposit, error) {
			return unapprovedDeposit(5), nil
		},
	}

	uc := NewGenerateMintTxUseCase(depositRepo, &mockTransactionInfoRepository{},
		&mockGateway{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), GenerateMintTxCommand{
		DepositID: 5, ToWalletHash: "0xw", RequestedByUUID: "admin-1",
	})

	require.Error(t, err)
	assert.Nil(t, result)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeBadRequest, appErr.Type)
}

func TestGenerateMintTxUseCase_Execute_ApprovedWithoutAmount(t *testing.T) {
	approver := "admin-1"
	approvedAt := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	depositRepo := &mockDepositRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*deposit.Deposit, error) {
			return deposit.ReconstructDeposit(
				5, "user-1", "AB12CD34", true, &approver, &approvedAt, nil, nil, nil,
				time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			), nil
		},
	}
	gatewayCalled := false
	gateway := &mockGateway{
		GenerateMintTxFunc: func(ctx context.Context, fromWallet, toWallet string, amount int64) (blockchain.TransactionData, error) {
			gatewayCalled = true
			return blockchain.TransactionData{}, nil
		},
	}

	uc := NewGenerateMintTxUseCase(depositRepo, &mockTransactionInfoRepository{}, gateway, &mockLogger{})
	result, err := uc.Execute(context.Background(), GenerateMintTxCommand{
		DepositID: 5, ToWalletHash: "0xw", RequestedByUUID: "admin-1",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.False(t, gatewayCalled)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}

func TestGenerateMintTxUseCase_Execute_AlreadyMinted(t *testing.T) {
	depositRepo := &mockDepositRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*deposit.Deposit, error) {
			return mintedDeposit(5), nil
		},
	}

	uc := NewGenerateMintTxUseCase(depositRepo, &mockTransactionInfoRepository{},
		&mockGateway{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), GenerateMintTxCommand{
		DepositID: 5, ToWalletHash: "0xw", RequestedByUUID: "admin-1",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsConflictError(err))

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Details, "0xminted")
}

func TestGenerateMintTxUseCase_Execute_GatewayFailure(t *testing.T) {
	depositRepo := &mockDepositRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*deposit.Deposit, error) {
			return approvedDeposit(5), nil
		},
	}
	gateway := &mockGateway{
		GenerateMintTxFunc: func(ctx context.Context, fromWallet, toWallet string, amount int64) (blockchain.TransactionData, error) {
			return blockchain.TransactionData{}, blockchain.NewTxGenerationFailedError("rpc error")
		},
	}

	uc := NewGenerateMintTxUseCase(depositRepo, &mockTransactionInfoRepository{}, gateway, &mockLogger{})
	result, err := uc.Execute(context.Background(), GenerateMintTxCommand{
		DepositID: 5, ToWalletHash: "0xw", RequestedByUUID: "admin-1",
	})

	require.Error(t, err)
	assert.Nil(t, result)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}

func TestConfirmMintTxUseCase_Execute_Success(t *testing.T) {
	target := approvedDeposit(5)
	var updated *deposit.Deposit
	depositRepo := &mockDepositRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*deposit.Deposit, error) {
			return target, nil
		},
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*deposit.Deposit, error) {
			return target, nil
		},
		UpdateFunc: func(ctx context.Context, d *deposit.Deposit) error {
			updated = d
			return nil
		},
	}
	gateway := &mockGateway{
		PostTransactionFunc: func(ctx context.Context, signedPayload string, txType blockchain.TxType) (string, error) {
			assert.Equal(t, "signed-mint-tx", signedPayload)
			assert.Equal(t, blockchain.TxTypeIssuerMint, txType)
			return "0xabc123", nil
		},
	}

	uc := NewConfirmMintTxUseCase(depositRepo, gateway, &mockTxManager{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ConfirmMintTxCommand{
		DepositID:         5,
		SignedTransaction: "signed-mint-tx",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.TxHash)
	assert.Equal(t, "0xabc123", *result.TxHash)

	require.NotNil(t, updated)
	assert.True(t, updated.Minted())
}

func TestConfirmMintTxUseCase_Execute_DoesNotPostWhenAlreadyMinted(t *testing.T) {
	depositRepo := &mockDepositRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*deposit.Deposit, error) {
			return mintedDeposit(5), nil
		},
	}
	posted := false
	gateway := &mockGateway{
		PostTransactionFunc: func(ctx context.Context, signedPayload string, txType blockchain.TxType) (string, error) {
			posted = true
			return "0xnew", nil
		},
	}

	uc := NewConfirmMintTxUseCase(depositRepo, gateway, &mockTxManager{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ConfirmMintTxCommand{
		DepositID:         5,
		SignedTransaction: "signed-mint-tx",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsConflictError(err))
	assert.False(t, posted)
}

func TestConfirmMintTxUseCase_Execute_RecheckUnderLockCatchesRace(t *testing.T) {
	// The unlocked read sees an approved deposit, a concurrent confirm lands
	// first, and the locked re-read must refuse the second hash.
	depositRepo := &mockDepositRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*deposit.Deposit, error) {
			return approvedDeposit(5), nil
		},
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*deposit.Deposit, error) {
			return mintedDeposit(5), nil
		},
	}
	gateway := &mockGateway{
		PostTransactionFunc: func(ctx context.Context, signedPayload string, txType blockchain.TxType) (string, error) {
			return "0xsecond", nil
		},
	}

	uc := NewConfirmMintTxUseCase(depositRepo, gateway, &mockTxManager{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ConfirmMintTxCommand{
		DepositID:         5,
		SignedTransaction: "signed-mint-tx",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	// The posted hash is surfaced for reconciliation.
	assert.Contains(t, err.Error(), "0xsecond")
}

// TestDepositWorkflow_RoundTrip drives a deposit through create, approve,
// generate and confirm against a single in-memory record.
func TestDepositWorkflow_RoundTrip(t *testing.T) {
	var store *deposit.Deposit
	depositRepo := &mockDepositRepository{
		CreateFunc: func(ctx context.Context, d *deposit.Deposit) error {
			d.SetID(1)
			store = d
			return nil
		},
		UpdateFunc: func(ctx context.Context, d *deposit.Deposit) error {
			store = d
			return nil
		},
		GetByIDFunc: func(ctx context.Context, id uint) (*deposit.Deposit, error) {
			return store, nil
		},
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*deposit.Deposit, error) {
			return store, nil
		},
	}
	walletRepo := &mockWalletRepository{
		ExistsByOwnerUUIDFunc: func(ctx context.Context, ownerUUID string) (bool, error) {
			return true, nil
		},
	}
	documentRepo := &mockDocumentRepository{
		CreateFunc: func(ctx context.Context, d *document.Document) error {
			d.SetID(2)
			return nil
		},
	}
	txInfoRepo := &mockTransactionInfoRepository{
		CreateFunc: func(ctx context.Context, i *transaction.Info) error {
			i.SetID(3)
			return nil
		},
	}
	gateway := &mockGateway{
		GenerateMintTxFunc: func(ctx context.Context, fromWallet, toWallet string, amount int64) (blockchain.TransactionData, error) {
			return blockchain.TransactionData{Data: "unsigned"}, nil
		},
		PostTransactionFunc: func(ctx context.Context, signedPayload string, txType blockchain.TxType) (string, error) {
			return "0xfinal", nil
		},
	}
	txMgr := &mockTxManager{}
	log := &mockLogger{}

	create := NewCreateDepositUseCase(depositRepo, walletRepo, txMgr, log)
	created, err := create.Execute(context.Background(), CreateDepositCommand{UserUUID: "user-1"})
	require.NoError(t, err)
	require.NotNil(t, created)

	approve := NewApproveDepositUseCase(depositRepo, documentRepo, &mockUserRepository{}, txMgr, nil, log)
	approved, err := approve.Execute(context.Background(), ApproveDepositCommand{
		DepositID:    created.ID,
		ApproverUUID: "admin-1",
		Amount:       2500,
		Document: document.SaveRequest{
			Name: "receipt.pdf", ContentType: "application/pdf",
			Data: []byte("receipt"), CreatedByUUID: "admin-1",
		},
	})
	require.NoError(t, err)
	assert.True(t, approved.Approved)

	generate := NewGenerateMintTxUseCase(depositRepo, txInfoRepo, gateway, log)
	unsigned, err := generate.Execute(context.Background(), GenerateMintTxCommand{
		DepositID: created.ID, ToWalletHash: "0xuser", RequestedByUUID: "admin-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "unsigned", unsigned.TxData.Data)

	confirm := NewConfirmMintTxUseCase(depositRepo, gateway, txMgr, log)
	minted, err := confirm.Execute(context.Background(), ConfirmMintTxCommand{
		DepositID: created.ID, SignedTransaction: "signed",
	})
	require.NoError(t, err)
	require.NotNil(t, minted.TxHash)
	assert.Equal(t, "0xfinal", *minted.TxHash)

	// A second mint attempt is rejected now.
	_, err = generate.Execute(context.Background(), GenerateMintTxCommand{
		DepositID: created.ID, ToWalletHash: "0xuser", RequestedByUUID: "admin-1",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}
