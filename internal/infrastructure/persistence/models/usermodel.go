package models

import (
	"time"

	"crowdfund/internal/shared/constants"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	UUID         string `gorm:"uniqueIndex;not null;size:36"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null;size:255"`
	FirstName    string `gorm:"not null;size:100"`
	LastName     string `gorm:"not null;size:100"`
	PhoneNumber  string `gorm:"size:50"`
	Role         string `gorm:"not null;default:user;size:20"`
	Enabled      bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}

// MailTokenModel stores one-shot email confirmation tokens.
type MailTokenModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;index"`
	Token     string `gorm:"uniqueIndex;not null;size:36"`
	CreatedAt time.Time
}

func (MailTokenModel) TableName() string {
	return constants.TableMailTokens
}
