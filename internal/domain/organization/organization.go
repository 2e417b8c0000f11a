// Package organization contains the organization aggregate.
package organization

import (
	"fmt"
	"time"

	"crowdfund/internal/shared/biztime"
)

type Organization struct {
	id            uint
	name          string
	createdByUUID string
	approved      bool
	legalInfo     string
	walletID      *uint
	createdAt     time.Time
}

// NewOrganization creates an organization pending platform approval.
func NewOrganization(name, createdByUUID, legalInfo string) (*Organization, error) {
	if name == "" {
		return nil, fmt.Errorf("organization name is required")
	}
	if createdByUUID == "" {
		return nil, fmt.Errorf("creator UUID is required")
	}

	return &Organization{
		name:          name,
		createdByUUID: createdByUUID,
		approved:      false,
		legalInfo:     legalInfo,
		createdAt:     biztime.NowUTC(),
	}, nil
}

// Approve marks the organization as vetted by an administrator.
func (o *Organization) Approve() {
	o.approved = true
}

// AttachWallet links the organization to its on-chain wallet.
func (o *Organization) AttachWallet(walletID uint) error {
	if o.walletID != nil {
		return fmt.Errorf("organization already has a wallet")
	}
	o.walletID = &walletID
	return nil
}

func (o *Organization) SetID(id uint) { o.id = id }

func (o *Organization) ID() uint              { return o.id }
func (o *Organization) Name() string          { return o.name }
func (o *Organization) CreatedByUUID() string { return o.createdByUUID }
func (o *Organization) Approved() bool        { return o.approved }
func (o *Organization) LegalInfo() string     { return o.legalInfo }
func (o *Organization) WalletID() *uint       { return o.walletID }
func (o *Organization) CreatedAt() time.Time  { return o.createdAt }

// ReconstructOrganization creates an Organization from persistence.
func ReconstructOrganization(
	id uint,
	name string,
	createdByUUID string,
	approved bool,
	legalInfo string,
	walletID *uint,
	createdAt time.Time,
) *Organization {
	return &Organization{
		id:            id,
		name:          name,
		createdByUUID: createdByUUID,
		approved:      approved,
		legalInfo:     legalInfo,
		walletID:      walletID,
		createdAt:     createdAt,
	}
}
