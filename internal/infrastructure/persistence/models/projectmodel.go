package models

import (
	"time"

	"gorm.io/datatypes"

	"crowdfund/internal/shared/constants"
)

// ProjectModel represents the database persistence model for projects.
// Gallery is a JSON list of document IDs.
type ProjectModel struct {
	ID              uint   `gorm:"primarykey"`
	OrganizationID  uint   `gorm:"not null;index"`
	Name            string `gorm:"not null;size:255"`
	Description     string `gorm:"type:text"`
	DescriptionHTML string `gorm:"type:text"`
	LocationText    string `gorm:"size:255"`
	Currency        string `gorm:"not null;size:3"`
	MinPerUser      int64  `gorm:"not null"`
	MaxPerUser      int64  `gorm:"not null"`
	InvestmentCap   int64  `gorm:"not null"`
	StartDate       time.Time
	EndDate         time.Time
	Active          bool `gorm:"not null;default:true"`
	MainImage       *uint
	Gallery         datatypes.JSONSlice[uint]
	CreatedByUUID   string `gorm:"not null;size:36;index"`
	WalletID        *uint
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (ProjectModel) TableName() string {
	return constants.TableProjects
}
