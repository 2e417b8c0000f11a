package models

import (
	"time"

	"crowdfund/internal/shared/constants"
)

// DocumentModel stores document content in the database so writes can share
// the transaction of the owning workflow.
type DocumentModel struct {
	ID            uint   `gorm:"primarykey"`
	Name          string `gorm:"not null;size:255"`
	ContentType   string `gorm:"not null;size:100"`
	Size          int    `gorm:"not null"`
	Data          []byte `gorm:"not null"`
	CreatedByUUID string `gorm:"size:36"`
	CreatedAt     time.Time
}

func (DocumentModel) TableName() string {
	return constants.TableDocuments
}
