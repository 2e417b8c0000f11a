// Package blockchain implements the gateway port over the remote blockchain
// gRPC service.
package blockchain

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	domain "crowdfund/internal/domain/blockchain"
	"crowdfund/internal/infrastructure/blockchain/pb"
	"crowdfund/internal/shared/logger"
)

// Client is a stateless gRPC client for the blockchain service. Every call
// gets its own deadline; nothing is cached or retried here.
type Client struct {
	conn    *grpc.ClientConn
	stub    pb.BlockchainServiceClient
	timeout time.Duration
	logger  logger.Interface
}

func NewClient(addr string, timeout time.Duration, logger logger.Interface) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to create blockchain client for %s: %w", addr, err)
	}

	return &Client{
		conn:    conn,
		stub:    pb.NewBlockchainServiceClient(conn),
		timeout: timeout,
		logger:  logger,
	}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// GetBalance returns the wallet balance, or an unknown balance when the
// service cannot be reached. Unreachability is a normal outcome here.
func (c *Client) GetBalance(ctx context.Context, walletHash string) domain.Balance {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.stub.GetBalance(callCtx, &pb.BalanceRequest{WalletTxHash: walletHash})
	if err != nil {
		c.logger.Warnw("balance lookup failed, reporting unknown", "wallet_hash", walletHash, "error", err)
		return domain.Balance{Unknown: true}
	}

	return domain.Balance{Amount: resp.GetBalance()}
}

// AddWallet registers a wallet address on chain. Failure is reported through
// ok so callers can keep the wallet in a pending state.
func (c *Client) AddWallet(ctx context.Context, address string) (string, bool) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.stub.AddWallet(callCtx, &pb.AddWalletRequest{Wallet: address})
	if err != nil {
		c.logger.Warnw("wallet registration failed", "address", address, "error", err)
		return "", false
	}

	return resp.GetTxHash(), true
}

func (c *Client) GenerateAddOrganizationTx(ctx context.Context, fromWalletHash, name string) (domain.TransactionData, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.stub.GenerateAddOrganizationTx(callCtx, &pb.GenerateAddOrganizationTxRequest{
		FromTxHash: fromWalletHash,
		Name:       name,
	})
	if err != nil {
		c.logger.Errorw("failed to generate add organization tx", "name", name, "error", err)
		return domain.TransactionData{}, domain.NewTxGenerationFailedError(fmt.Sprintf("organization %s", name))
	}

	return domain.TransactionData{Data: resp.GetData()}, nil
}

func (c *Client) GenerateProjectWalletTx(ctx context.Context, req domain.ProjectWalletRequest) (domain.TransactionData, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.stub.GenerateAddProjectTx(callCtx, &pb.GenerateAddProjectTxRequest{
		FromTxHash:           req.UserWalletHash,
		OrganizationTxHash:   req.OrganizationHash,
		Name:                 req.Name,
		Description:          req.Description,
		MaxInvestmentPerUser: req.MaxInvestmentPerUser,
		MinInvestmentPerUser: req.MinInvestmentPerUser,
		InvestmentCap:        req.InvestmentCap,
	})
	if err != nil {
		c.logger.Errorw("failed to generate project wallet tx", "project", req.Name, "error", err)
		return domain.TransactionData{}, domain.NewTxGenerationFailedError(fmt.Sprintf("project %s", req.Name))
	}

	return domain.TransactionData{Data: resp.GetData()}, nil
}

func (c *Client) GenerateMintTx(ctx context.Context, fromWallet, toWallet string, amount int64) (domain.TransactionData, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.stub.GenerateMintTx(callCtx, &pb.GenerateMintTxRequest{
		FromTxHash: fromWallet,
		ToTxHash:   toWallet,
		Amount:     amount,
	})
	if err != nil {
		c.logger.Errorw("failed to generate mint tx", "to_wallet", toWallet, "amount", amount, "error", err)
		return domain.TransactionData{}, domain.NewTxGenerationFailedError(fmt.Sprintf("mint to %s", toWallet))
	}

	return domain.TransactionData{Data: resp.GetData()}, nil
}

func (c *Client) PostTransaction(ctx context.Context, signedPayload string, txType domain.TxType) (string, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.stub.PostTransaction(callCtx, &pb.PostTxRequest{Data: signedPayload})
	if err != nil {
		c.logger.Errorw("failed to post transaction", "tx_type", txType, "error", err)
		return "", domain.NewTxPostFailedError(string(txType))
	}

	if resp.GetTxType() != "" && resp.GetTxType() != string(txType) {
		c.logger.Warnw("posted transaction type differs from expected",
			"expected", txType, "actual", resp.GetTxType())
	}

	return resp.GetTxHash(), nil
}

func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

var _ domain.Gateway = (*Client)(nil)
