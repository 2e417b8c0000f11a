package blockchain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	domain "crowdfund/internal/domain/blockchain"
	"crowdfund/internal/infrastructure/blockchain/pb"
	apperrors "crowdfund/internal/shared/errors"
	"crowdfund/internal/shared/logger"
)

type stubBlockchainService struct {
	GetBalanceFunc      func(ctx context.Context, in *pb.BalanceRequest) (*pb.BalanceResponse, error)
	AddWalletFunc       func(ctx context.Context, in *pb.AddWalletRequest) (*pb.AddWalletResponse, error)
	GenerateOrgTxFunc   func(ctx context.Context, in *pb.GenerateAddOrganizationTxRequest) (*pb.RawTxResponse, error)
	GenerateProjTxFunc  func(ctx context.Context, in *pb.GenerateAddProjectTxRequest) (*pb.RawTxResponse, error)
	GenerateMintTxFunc  func(ctx context.Context, in *pb.GenerateMintTxRequest) (*pb.RawTxResponse, error)
	PostTransactionFunc func(ctx context.Context, in *pb.PostTxRequest) (*pb.PostTxResponse, error)
}

func (s *stubBlockchainService) GetBalance(ctx context.Context, in *pb.BalanceRequest, opts ...grpc.CallOption) (*pb.BalanceResponse, error) {
	return s.GetBalanceFunc(ctx, in)
}

func (s *stubBlockchainService) AddWallet(ctx context.Context, in *pb.AddWalletRequest, opts ...grpc.CallOption) (*pb.AddWalletResponse, error) {
	return s.AddWalletFunc(ctx, in)
}

func (s *stubBlockchainService) GenerateAddOrganizationTx(ctx context.Context, in *pb.GenerateAddOrganizationTxRequest, opts ...grpc.CallOption) (*pb.RawTxResponse, error) {
	return s.GenerateOrgTxFunc(ctx, in)
}

func (s *stubBlockchainService) GenerateAddProjectTx(ctx context.Context, in *pb.GenerateAddProjectTxRequest, opts ...grpc.CallOption) (*pb.RawTxResponse, error) {
	return s.GenerateProjTxFunc(ctx, in)
}

func (s *stubBlockchainService) GenerateMintTx(ctx context.Context, in *pb.GenerateMintTxRequest, opts ...grpc.CallOption) (*pb.RawTxResponse, error) {
	return s.GenerateMintTxFunc(ctx, in)
}

func (s *stubBlockchainService) PostTransaction(ctx context.Context, in *pb.PostTxRequest, opts ...grpc.CallOption) (*pb.PostTxResponse, error) {
	return s.PostTransactionFunc(ctx, in)
}

type noopLogger struct{}

func (l *noopLogger) Debug(msg string, args ...any) {}
func (l *noopLogger) Info(msg string, args ...any)  {}
func (l *noopLogger) Warn(msg string, args ...any)  {}
func (l *noopLogger) Error(msg string, args ...any) {}

func (l *noopLogger) With(args ...any) logger.Interface  { return l }
func (l *noopLogger) Named(name string) logger.Interface { return l }

func (l *noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newTestClient(stub pb.BlockchainServiceClient) *Client {
	return &Client{
		stub:    stub,
		timeout: time.Second,
		logger:  &noopLogger{},
	}
}

func TestClient_GetBalance_Success(t *testing.T) {
	stub := &stubBlockchainService{
		GetBalanceFunc: func(ctx context.Context, in *pb.BalanceRequest) (*pb.BalanceResponse, error) {
			assert.Equal(t, "0xwallet", in.GetWalletTxHash())
			return &pb.BalanceResponse{Balance: 1500}, nil
		},
	}

	balance := newTestClient(stub).GetBalance(context.Background(), "0xwallet")

	assert.False(t, balance.Unknown)
	assert.Equal(t, int64(1500), balance.Amount)
}

func TestClient_GetBalance_UnreachableReturnsUnknown(t *testing.T) {
	stub := &stubBlockchainService{
		GetBalanceFunc: func(ctx context.Context, in *pb.BalanceRequest) (*pb.BalanceResponse, error) {
			return nil, errors.New("connection refused")
		},
	}

	balance := newTestClient(stub).GetBalance(context.Background(), "bad-hash")

	assert.True(t, balance.Unknown)
	assert.Zero(t, balance.Amount)
}

func TestClient_AddWallet_Degrades(t *testing.T) {
	stub := &stubBlockchainService{
		AddWalletFunc: func(ctx context.Context, in *pb.AddWalletRequest) (*pb.AddWalletResponse, error) {
			return nil, errors.New("unavailable")
		},
	}

	hash, ok := newTestClient(stub).AddWallet(context.Background(), "addr-1")

	assert.False(t, ok)
	assert.Empty(t, hash)
}

func TestClient_GenerateMintTx_MapsFailure(t *testing.T) {
	stub := &stubBlockchainService{
		GenerateMintTxFunc: func(ctx context.Context, in *pb.GenerateMintTxRequest) (*pb.RawTxResponse, error) {
			return nil, errors.New("boom")
		},
	}

	_, err := newTestClient(stub).GenerateMintTx(context.Background(), domain.MintSenderWallet, "0xto", 500)

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}

func TestClient_GenerateMintTx_PassesFields(t *testing.T) {
	stub := &stubBlockchainService{
		GenerateMintTxFunc: func(ctx context.Context, in *pb.GenerateMintTxRequest) (*pb.RawTxResponse, error) {
			assert.Equal(t, domain.MintSenderWallet, in.GetFromTxHash())
			assert.Equal(t, "0xto", in.GetToTxHash())
			assert.Equal(t, int64(500), in.GetAmount())
			return &pb.RawTxResponse{Data: "unsigned-tx"}, nil
		},
	}

	data, err := newTestClient(stub).GenerateMintTx(context.Background(), domain.MintSenderWallet, "0xto", 500)

	require.NoError(t, err)
	assert.Equal(t, "unsigned-tx", data.Data)
}

func TestClient_PostTransaction(t *testing.T) {
	stub := &stubBlockchainService{
		PostTransactionFunc: func(ctx context.Context, in *pb.PostTxRequest) (*pb.PostTxResponse, error) {
			assert.Equal(t, "signed-payload", in.GetData())
			return &pb.PostTxResponse{TxHash: "0xposted", TxType: "ISSUER_MINT"}, nil
		},
	}

	hash, err := newTestClient(stub).PostTransaction(context.Background(), "signed-payload", domain.TxTypeIssuerMint)

	require.NoError(t, err)
	assert.Equal(t, "0xposted", hash)
}

func TestClient_PostTransaction_Failure(t *testing.T) {
	stub := &stubBlockchainService{
		PostTransactionFunc: func(ctx context.Context, in *pb.PostTxRequest) (*pb.PostTxResponse, error) {
			return nil, errors.New("rejected")
		},
	}

	_, err := newTestClient(stub).PostTransaction(context.Background(), "signed-payload", domain.TxTypeIssuerMint)

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}
