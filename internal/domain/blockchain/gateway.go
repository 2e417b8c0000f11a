// Package blockchain defines the gateway port for the remote blockchain
// service. The gateway is a pure protocol-translation layer: it holds no
// local state and performs no caching or retries.
package blockchain

import "context"

// MintSenderWallet is the sentinel sender for mint transactions: minting
// creates new balance, so no wallet is debited.
const MintSenderWallet = "not-needed"

// TxType identifies the kind of transaction being posted.
type TxType string

const (
	TxTypeIssuerMint    TxType = "ISSUER_MINT"
	TxTypeCreateOrg     TxType = "CREATE_ORG"
	TxTypeCreateProject TxType = "CREATE_PROJECT"
)

// TransactionData is an unsigned transaction payload generated by the
// blockchain service. The owning party must sign it before it can be posted.
type TransactionData struct {
	Data string `json:"data"`
}

// Balance is a wallet balance lookup result. Unknown is set when the
// blockchain service could not be reached; callers must treat that as a
// normal outcome, not a failure.
type Balance struct {
	Amount  int64
	Unknown bool
}

// ProjectWalletRequest carries the fields needed to generate a project
// wallet creation transaction.
type ProjectWalletRequest struct {
	UserWalletHash       string
	OrganizationHash     string
	Name                 string
	Description          string
	MaxInvestmentPerUser int64
	MinInvestmentPerUser int64
	InvestmentCap        int64
}

// Gateway is the client abstraction over the remote blockchain service.
//
// GetBalance and AddWallet degrade gracefully: a remote-call failure yields
// an "unavailable" result instead of an error. All other operations escalate
// remote failures into typed errors that abort the calling workflow step.
type Gateway interface {
	GetBalance(ctx context.Context, walletHash string) Balance
	AddWallet(ctx context.Context, address string) (txHash string, ok bool)
	GenerateAddOrganizationTx(ctx context.Context, fromWalletHash, name string) (TransactionData, error)
	GenerateProjectWalletTx(ctx context.Context, req ProjectWalletRequest) (TransactionData, error)
	GenerateMintTx(ctx context.Context, fromWallet, toWallet string, amount int64) (TransactionData, error)
	PostTransaction(ctx context.Context, signedPayload string, txType TxType) (txHash string, err error)
}
