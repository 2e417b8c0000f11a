package usecases

import (
	"context"

	"crowdfund/internal/domain/blockchain"
	"crowdfund/internal/domain/deposit"
	"crowdfund/internal/domain/document"
	"crowdfund/internal/domain/transaction"
	"crowdfund/internal/domain/user"
	"crowdfund/internal/domain/wallet"
	"crowdfund/internal/shared/logger"
)

type mockDepositRepository struct {
	CreateFunc                  func(ctx context.Context, d *deposit.Deposit) error
	UpdateFunc                  func(ctx context.Context, d *deposit.Deposit) error
	GetByIDFunc                 func(ctx context.Context, id uint) (*deposit.Deposit, error)
	GetByIDForUpdateFunc        func(ctx context.Context, id uint) (*deposit.Deposit, error)
	GetByReferenceFunc          func(ctx context.Context, reference string) (*deposit.Deposit, error)
	GetUnapprovedByUserUUIDFunc func(ctx context.Context, userUUID string) (*deposit.Deposit, error)
	ListByUserUUIDFunc          func(ctx context.Context, userUUID string) ([]*deposit.Deposit, error)
	ListWithDocumentFunc        func(ctx context.Context, approved bool) ([]*deposit.Deposit, error)
	DeleteByIDFunc              func(ctx context.Context, id uint) error
}

func (m *mockDepositRepository) Create(ctx context.Context, d *deposit.Deposit) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	return nil
}

func (m *mockDepositRepository) Update(ctx context.Context, d *deposit.Deposit) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, d)
	}
	return nil
}

func (m *mockDepositRepository) GetByID(ctx context.Context, id uint) (*deposit.Deposit, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDepositRepository) GetByIDForUpdate(ctx context.Context, id uint) (*deposit.Deposit, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDepositRepository) GetByReference(ctx context.Context, reference string) (*deposit.Deposit, error) {
	if m.GetByReferenceFunc != nil {
		return m.GetByReferenceFunc(ctx, reference)
	}
	return nil, nil
}

func (m *mockDepositRepository) GetUnapprovedByUserUUID(ctx context.Context, userUUID string) (*deposit.Deposit, error) {
	if m.GetUnapprovedByUserUUIDFunc != nil {
		return m.GetUnapprovedByUserUUIDFunc(ctx, userUUID)
	}
	return nil, nil
}

func (m *mockDepositRepository) ListByUserUUID(ctx context.Context, userUUID string) ([]*deposit.Deposit, error) {
	if m.ListByUserUUIDFunc != nil {
		return m.ListByUserUUIDFunc(ctx, userUUID)
	}
	return nil, nil
}

func (m *mockDepositRepository) ListWithDocument(ctx context.Context, approved bool) ([]*deposit.Deposit, error) {
	if m.ListWithDocumentFunc != nil {
		return m.ListWithDocumentFunc(ctx, approved)
	}
	return nil, nil
}

func (m *mockDepositRepository) DeleteByID(ctx context.Context, id uint) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil
}

type mockWalletRepository struct {
	CreateFunc            func(ctx context.Context, w *wallet.Wallet) error
	UpdateFunc            func(ctx context.Context, w *wallet.Wallet) error
	GetByIDFunc           func(ctx context.Context, id uint) (*wallet.Wallet, error)
	GetByOwnerUUIDFunc    func(ctx context.Context, ownerUUID string) (*wallet.Wallet, error)
	ExistsByOwnerUUIDFunc func(ctx context.Context, ownerUUID string) (bool, error)
}

func (m *mockWalletRepository) Create(ctx context.Context, w *wallet.Wallet) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, w)
	}
	return nil
}

func (m *mockWalletRepository) Update(ctx context.Context, w *wallet.Wallet) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, w)
	}
	return nil
}

func (m *mockWalletRepository) GetByID(ctx context.Context, id uint) (*wallet.Wallet, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockWalletRepository) GetByOwnerUUID(ctx context.Context, ownerUUID string) (*wallet.Wallet, error) {
	if m.GetByOwnerUUIDFunc != nil {
		return m.GetByOwnerUUIDFunc(ctx, ownerUUID)
	}
	return nil, nil
}

func (m *mockWalletRepository) ExistsByOwnerUUID(ctx context.Context, ownerUUID string) (bool, error) {
	if m.ExistsByOwnerUUIDFunc != nil {
		return m.ExistsByOwnerUUIDFunc(ctx, ownerUUID)
	}
	return false, nil
}

type mockDocumentRepository struct {
	CreateFunc  func(ctx context.Context, d *document.Document) error
	GetByIDFunc func(ctx context.Context, id uint) (*document.Document, error)
}

func (m *mockDocumentRepository) Create(ctx context.Context, d *document.Document) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	return nil
}

func (m *mockDocumentRepository) GetByID(ctx context.Context, id uint) (*document.Document, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockUserRepository struct {
	CreateFunc     func(ctx context.Context, u *user.User) error
	UpdateFunc     func(ctx context.Context, u *user.User) error
	GetByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	GetByUUIDFunc  func(ctx context.Context, userUUID string) (*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	ListFunc       func(ctx context.Context) ([]*user.User, error)
	DeleteByIDFunc func(ctx context.Context, id uint) error
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUUID(ctx context.Context, userUUID string) (*user.User, error) {
	if m.GetByUUIDFunc != nil {
		return m.GetByUUIDFunc(ctx, userUUID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) DeleteByID(ctx context.Context, id uint) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil
}

type mockTransactionInfoRepository struct {
	CreateFunc  func(ctx context.Context, i *transaction.Info) error
	GetByIDFunc func(ctx context.Context, id uint) (*transaction.Info, error)
}

func (m *mockTransactionInfoRepository) Create(ctx context.Context, i *transaction.Info) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, i)
	}
	return nil
}

func (m *mockTransactionInfoRepository) GetByID(ctx context.Context, id uint) (*transaction.Info, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockGateway struct {
	GetBalanceFunc                func(ctx context.Context, walletHash string) blockchain.Balance
	AddWalletFunc                 func(ctx context.Context, address string) (string, bool)
	GenerateAddOrganizationTxFunc func(ctx context.Context, fromWalletHash, name string) (blockchain.TransactionData, error)
	GenerateProjectWalletTxFunc   func(ctx context.Context, req blockchain.ProjectWalletRequest) (blockchain.TransactionData, error)
	GenerateMintTxFunc            func(ctx context.Context, fromWallet, toWallet string, amount int64) (blockchain.TransactionData, error)
	PostTransactionFunc           func(ctx context.Context, signedPayload string, txType blockchain.TxType) (string, error)
}

func (m *mockGateway) GetBalance(ctx context.Context, walletHash string) blockchain.Balance {
	if m.GetBalanceFunc != nil {
		return m.GetBalanceFunc(ctx, walletHash)
	}
	return blockchain.Balance{Unknown: true}
}

func (m *mockGateway) AddWallet(ctx context.Context, address string) (string, bool) {
	if m.AddWalletFunc != nil {
		return m.AddWalletFunc(ctx, address)
	}
	return "", false
}

func (m *mockGateway) GenerateAddOrganizationTx(ctx context.Context, fromWalletHash, name string) (blockchain.TransactionData, error) {
	if m.GenerateAddOrganizationTxFunc != nil {
		return m.GenerateAddOrganizationTxFunc(ctx, fromWalletHash, name)
	}
	return blockchain.TransactionData{}, nil
}

func (m *mockGateway) GenerateProjectWalletTx(ctx context.Context, req blockchain.ProjectWalletRequest) (blockchain.TransactionData, error) {
	if m.GenerateProjectWalletTxFunc != nil {
		return m.GenerateProjectWalletTxFunc(ctx, req)
	}
	return blockchain.TransactionData{}, nil
}

func (m *mockGateway) GenerateMintTx(ctx context.Context, fromWallet, toWallet string, amount int64) (blockchain.TransactionData, error) {
	if m.GenerateMintTxFunc != nil {
		return m.GenerateMintTxFunc(ctx, fromWallet, toWallet, amount)
	}
	return blockchain.TransactionData{}, nil
}

func (m *mockGateway) PostTransaction(ctx context.Context, signedPayload string, txType blockchain.TxType) (string, error) {
	if m.PostTransactionFunc != nil {
		return m.PostTransactionFunc(ctx, signedPayload, txType)
	}
	return "", nil
}

// mockTxManager runs the unit of work on the caller's context. Rollback is
// simulated by the function's error return.
type mockTxManager struct{}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockMailSender struct {
	SendDepositApprovedMailFunc func(to, reference string, amount int64) error
}

func (m *mockMailSender) SendDepositApprovedMail(to, reference string, amount int64) error {
	if m.SendDepositApprovedMailFunc != nil {
		return m.SendDepositApprovedMailFunc(to, reference, amount)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
