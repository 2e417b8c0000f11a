package models

import (
	"time"

	"crowdfund/internal/shared/constants"
)

// TransactionInfoModel is the audit record for generated blockchain
// transactions.
type TransactionInfoModel struct {
	ID          uint   `gorm:"primarykey"`
	Type        string `gorm:"not null;size:40"`
	Title       string `gorm:"not null;size:255"`
	Description string `gorm:"type:text"`
	UserUUID    string `gorm:"not null;size:36;index"`
	CreatedAt   time.Time
}

func (TransactionInfoModel) TableName() string {
	return constants.TableTransactionInfos
}
