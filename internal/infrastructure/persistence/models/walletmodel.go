package models

import (
	"time"

	"crowdfund/internal/shared/constants"
)

// WalletModel represents the database persistence model for wallets.
type WalletModel struct {
	ID        uint    `gorm:"primarykey"`
	OwnerUUID string  `gorm:"uniqueIndex;not null;size:64"`
	Type      string  `gorm:"not null;size:20"`
	Address   string  `gorm:"not null;size:255"`
	Hash      *string `gorm:"size:255"`
	Currency  string  `gorm:"not null;size:3"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (WalletModel) TableName() string {
	return constants.TableWallets
}
