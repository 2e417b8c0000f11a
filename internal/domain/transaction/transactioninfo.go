// Package transaction records metadata about generated blockchain
// transactions for audit and client-side tracking.
package transaction

import (
	"fmt"
	"time"

	"crowdfund/internal/shared/biztime"
)

// InfoType identifies which workflow generated the transaction.
type InfoType string

const (
	TypeMint                InfoType = "mint"
	TypeCreateOrganization  InfoType = "create_organization"
	TypeCreateProjectWallet InfoType = "create_project_wallet"
)

type Info struct {
	id          uint
	infoType    InfoType
	title       string
	description string
	userUUID    string
	createdAt   time.Time
}

func NewInfo(infoType InfoType, title, description, userUUID string) (*Info, error) {
	if title == "" {
		return nil, fmt.Errorf("transaction title is required")
	}
	if userUUID == "" {
		return nil, fmt.Errorf("user UUID is required")
	}

	return &Info{
		infoType:    infoType,
		title:       title,
		description: description,
		userUUID:    userUUID,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func (i *Info) SetID(id uint) { i.id = id }

func (i *Info) ID() uint             { return i.id }
func (i *Info) Type() InfoType       { return i.infoType }
func (i *Info) Title() string        { return i.title }
func (i *Info) Description() string  { return i.description }
func (i *Info) UserUUID() string     { return i.userUUID }
func (i *Info) CreatedAt() time.Time { return i.createdAt }

// ReconstructInfo creates an Info from persistence.
func ReconstructInfo(id uint, infoType InfoType, title, description, userUUID string, createdAt time.Time) *Info {
	return &Info{
		id:          id,
		infoType:    infoType,
		title:       title,
		description: description,
		userUUID:    userUUID,
		createdAt:   createdAt,
	}
}
