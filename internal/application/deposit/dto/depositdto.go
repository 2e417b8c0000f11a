package dto

import (
	"time"

	"crowdfund/internal/domain/blockchain"
	"crowdfund/internal/domain/deposit"
	"crowdfund/internal/domain/transaction"
)

type DepositDTO struct {
	ID             uint       `json:"id"`
	UserUUID       string     `json:"user_uuid"`
	Reference      string     `json:"reference"`
	Approved       bool       `json:"approved"`
	ApprovedByUUID *string    `json:"approved_by_uuid,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	Amount         *int64     `json:"amount,omitempty"`
	DocumentID     *uint      `json:"document_id,omitempty"`
	TxHash         *string    `json:"tx_hash,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func DepositToDTO(d *deposit.Deposit) DepositDTO {
	return DepositDTO{
		ID:             d.ID(),
		UserUUID:       d.UserUUID(),
		Reference:      d.Reference(),
		Approved:       d.Approved(),
		ApprovedByUUID: d.ApprovedByUUID(),
		ApprovedAt:     d.ApprovedAt(),
		Amount:         d.Amount(),
		DocumentID:     d.DocumentID(),
		TxHash:         d.TxHash(),
		CreatedAt:      d.CreatedAt(),
	}
}

func DepositsToDTO(deposits []*deposit.Deposit) []DepositDTO {
	out := make([]DepositDTO, len(deposits))
	for i, d := range deposits {
		out[i] = DepositToDTO(d)
	}
	return out
}

// TransactionInfoDTO is the tracking record returned alongside an unsigned
// transaction.
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

// MintTransactionDTO bundles the unsigned transaction payload with its
// tracking info. The client signs the payload externally and posts it back.
type MintTransactionDTO struct {
	TxData blockchain.TransactionData `json:"tx"`
	Info   TransactionInfoDTO         `json:"tx_info"`
}
