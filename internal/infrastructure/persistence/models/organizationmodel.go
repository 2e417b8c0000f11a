package models

import (
	"time"

	"crowdfund/internal/shared/constants"
)

// OrganizationModel represents the database persistence model for
// organizations.
type OrganizationModel struct {
	ID            uint   `gorm:"primarykey"`
	Name          string `gorm:"uniqueIndex;not null;size:255"`
	CreatedByUUID string `gorm:"not null;size:36;index"`
	Approved      bool   `gorm:"not null;default:false"`
	LegalInfo     string `gorm:"type:text"`
	WalletID      *uint
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (OrganizationModel) TableName() string {
	return constants.TableOrganizations
}
