package dto

import (
	"time"

	"crowdfund/internal/domain/blockchain"
	"crowdfund/internal/domain/transaction"
	"crowdfund/internal/domain/wallet"
)

type WalletDTO struct {
	ID        uint      `json:"id"`
	OwnerUUID string    `json:"owner_uuid"`
	Type      string    `json:"type"`
	Address   string    `json:"address"`
	Hash      *string   `json:"hash,omitempty"`
	Activated bool      `json:"activated"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`

	// Balance is nil when the blockchain service could not report it.
	Balance *int64 `json:"balance,omitempty"`
}

func WalletToDTO(w *wallet.Wallet) WalletDTO {
	return WalletDTO{
		ID:        w.ID(),
		OwnerUUID: w.OwnerUUID(),
		Type:      string(w.WalletType()),
		Address:   w.Address(),
		Hash:      w.Hash(),
		Activated: w.Activated(),
		Currency:  w.Currency(),
		CreatedAt: w.CreatedAt(),
	}
}

type TransactionInfoDTO struct {
	ID          uint   `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func TransactionInfoToDTO(i *transaction.Info) TransactionInfoDTO {
	return TransactionInfoDTO{
		ID:          i.ID(),
		Type:        string(i.Type()),
		Title:       i.Title(),
		Description: i.Description(),
	}
}

// WalletTransactionDTO bundles an unsigned wallet-creation transaction with
// its tracking info.
type WalletTransactionDTO struct {
	TxData blockchain.TransactionData `json:"tx"`
	Info   TransactionInfoDTO         `json:"tx_info"`
}
