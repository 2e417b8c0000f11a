package usecases

import (
	"context"

	"crowdfund/internal/domain/blockchain"
	"crowdfund/internal/domain/organization"
	"crowdfund/internal/domain/project"
	"crowdfund/internal/domain/transaction"
	"crowdfund/internal/domain/wallet"
	"crowdfund/internal/shared/logger"
)

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

type mockOrganizationRepository struct {
	CreateFunc  func(ctx context.Context, o *organization.Organization) error
	UpdateFunc  func(ctx context.Context, o *organization.Organization) error
	GetByIDFunc func(ctx context.Context, id uint) (*organization.Organization, error)
	ListFunc    func(ctx context.Context) ([]*organization.Organization, error)
}

func (m *mockOrganizationRepository) Create(ctx context.Context, o *organization.Organization) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *mockOrganizationRepository) Update(ctx context.Context, o *organization.Organization) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, o)
	}
	return nil
}

func (m *mockOrganizationRepository) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) List(ctx context.Context) ([]*organization.Organization, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockProjectRepository struct {
	CreateFunc               func(ctx context.Context, p *project.Project) error
	UpdateFunc               func(ctx context.Context, p *project.Project) error
	GetByIDFunc              func(ctx context.Context, id uint) (*project.Project, error)
	ListByOrganizationIDFunc func(ctx context.Context, organizationID uint) ([]*project.Project, error)
}

func (m *mockProjectRepository) Create(ctx context.Context, p *project.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepository) ListByOrganizationID(ctx context.Context, organizationID uint) ([]*project.Project, error) {
	if m.ListByOrganizationIDFunc != nil {
		return m.ListByOrganizationIDFunc(ctx, organizationID)
	}
	return nil, nil
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

type mockTxManager struct{}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
