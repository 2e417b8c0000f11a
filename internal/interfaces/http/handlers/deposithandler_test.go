package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/application/deposit/usecases"
	"crowdfund/internal/domain/deposit"
	"crowdfund/internal/domain/wallet"
	"crowdfund/internal/shared/constants"
	"crowdfund/internal/shared/logger"
	"crowdfund/internal/shared/utils"
)

type noopLogger struct{}

func (l *noopLogger) Debug(msg string, args ...any)                   {}
func (l *noopLogger) Info(msg string, args ...any)                    {}
func (l *noopLogger) Warn(msg string, args ...any)                    {}
func (l *noopLogger) Error(msg string, args ...any)                   {}
func (l *noopLogger) With(args ...any) logger.Interface               { return l }
func (l *noopLogger) Named(name string) logger.Interface              { return l }
func (l *noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type stubDepositRepository struct {
	deposit.Repository

	GetUnapprovedByUserUUIDFunc func(ctx context.Context, userUUID string) (*deposit.Deposit, error)
	CreateFunc                  func(ctx context.Context, d *deposit.Deposit) error
}

func (m *stubDepositRepository) GetUnapprovedByUserUUID(ctx context.Context, userUUID string) (*deposit.Deposit, error) {
	if m.GetUnapprovedByUserUUIDFunc != nil {
		return m.GetUnapprovedByUserUUIDFunc(ctx, userUUID)
	}
	return nil, nil
}

func (m *stubDepositRepository) Create(ctx context.Context, d *deposit.Deposit) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	return nil
}

type stubWalletRepository struct {
	wallet.Repository

	ExistsByOwnerUUIDFunc func(ctx context.Context, ownerUUID string) (bool, error)
}

func (m *stubWalletRepository) ExistsByOwnerUUID(ctx context.Context, ownerUUID string) (bool, error) {
	if m.ExistsByOwnerUUIDFunc != nil {
		return m.ExistsByOwnerUUIDFunc(ctx, ownerUUID)
	}
	return true, nil
}

type passthroughTxManager struct{}

func (m *passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newCreateDepositRouter(depositRepo deposit.Repository, walletRepo wallet.Repository, authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := &noopLogger{}
	createUC := usecases.NewCreateDepositUseCase(depositRepo, walletRepo, &passthroughTxManager{}, log)
	handler := NewDepositHandler(createUC, nil, nil, nil, nil, nil, nil, nil, log)

	engine := gin.New()
	engine.POST("/deposits", func(c *gin.Context) {
		if authenticated {
			c.Set(constants.ContextKeyUserUUID, "user-uuid-1")
		}
		handler.CreateDeposit(c)
	})
	return engine
}

func TestDepositHandler_CreateDeposit_Unauthenticated(t *testing.T) {
	engine := newCreateDepositRouter(&stubDepositRepository{}, &stubWalletRepository{}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/deposits", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDepositHandler_CreateDeposit_WalletMissing(t *testing.T) {
	walletRepo := &stubWalletRepository{
		ExistsByOwnerUUIDFunc: func(ctx context.Context, ownerUUID string) (bool, error) {
			return false, nil
		},
	}
	engine := newCreateDepositRouter(&stubDepositRepository{}, walletRepo, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/deposits", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "not_found", resp.Error.Type)
}

func TestDepositHandler_CreateDeposit_OutstandingDepositConflict(t *testing.T) {
	existing, err := deposit.NewDeposit("user-uuid-1")
	require.NoError(t, err)

	depositRepo := &stubDepositRepository{
		GetUnapprovedByUserUUIDFunc: func(ctx context.Context, userUUID string) (*deposit.Deposit, error) {
			return existing, nil
		},
	}
	engine := newCreateDepositRouter(depositRepo, &stubWalletRepository{}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/deposits", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "conflict", resp.Error.Type)
}

func TestDepositHandler_CreateDeposit_Success(t *testing.T) {
	engine := newCreateDepositRouter(&stubDepositRepository{}, &stubWalletRepository{}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/deposits", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			UserUUID  string `json:"user_uuid"`
			Reference string `json:"reference"`
			Approved  bool   `json:"approved"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "user-uuid-1", resp.Data.UserUUID)
	assert.Len(t, resp.Data.Reference, 8)
	assert.False(t, resp.Data.Approved)
}
