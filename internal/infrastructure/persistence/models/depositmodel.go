package models

import (
	"time"

	"crowdfund/internal/shared/constants"
)

// DepositModel represents the database persistence model for deposits. The
// partial unique index on (user_uuid) WHERE approved = false backs the
// one-unapproved-deposit-per-user rule; it is created in the SQL migration
// since gorm tags cannot express partial indexes.
type DepositModel struct {
	ID             uint    `gorm:"primarykey"`
	UserUUID       string  `gorm:"not null;size:36;index"`
	Reference      string  `gorm:"not null;size:8;index"`
	Approved       bool    `gorm:"not null;default:false"`
	ApprovedByUUID *string `gorm:"size:36"`
	ApprovedAt     *time.Time
	Amount         *int64
	DocumentID     *uint
	TxHash         *string `gorm:"size:255"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (DepositModel) TableName() string {
	return constants.TableDeposits
}
