// Package wallet contains the wallet aggregate. A wallet links a platform
// owner (user, organization or project) to an on-chain address.
package wallet

import (
	"fmt"
	"time"

	"crowdfund/internal/shared/biztime"
)

// Type identifies what kind of owner holds the wallet.
type Type string

const (
	TypeUser         Type = "user"
	TypeOrganization Type = "organization"
	TypeProject      Type = "project"
)

func (t Type) IsValid() bool {
	return t == TypeUser || t == TypeOrganization || t == TypeProject
}

// OrganizationOwner builds the owner key for an organization wallet. User
// wallets use the user UUID directly; organization and project wallets are
// keyed by a prefixed numeric ID so the keys never collide.
func OrganizationOwner(organizationID uint) string {
	return fmt.Sprintf("organization-%d", organizationID)
}

// ProjectOwner builds the owner key for a project wallet.
func ProjectOwner(projectID uint) string {
	return fmt.Sprintf("project-%d", projectID)
}

type Wallet struct {
	id         uint
	ownerUUID  string
	walletType Type
	address    string
	// hash is the on-chain wallet transaction hash, set once the wallet
	// is registered with the blockchain service.
	hash      *string
	currency  string
	createdAt time.Time
}

// NewWallet creates a wallet awaiting on-chain activation.
func NewWallet(ownerUUID, address string, walletType Type) (*Wallet, error) {
	if ownerUUID == "" {
		return nil, fmt.Errorf("owner UUID is required")
	}
	if address == "" {
		return nil, fmt.Errorf("wallet address is required")
	}
	if !walletType.IsValid() {
		return nil, fmt.Errorf("invalid wallet type: %s", walletType)
	}

	return &Wallet{
		ownerUUID:  ownerUUID,
		walletType: walletType,
		address:    address,
		currency:   "EUR",
		createdAt:  biztime.NowUTC(),
	}, nil
}

// Activate records the on-chain registration hash.
func (w *Wallet) Activate(hash string) error {
	if hash == "" {
		return fmt.Errorf("wallet hash is required")
	}
	if w.hash != nil {
		return fmt.Errorf("wallet is already activated")
	}
	w.hash = &hash
	return nil
}

// Activated reports whether the wallet is registered on chain.
func (w *Wallet) Activated() bool {
	return w.hash != nil
}

func (w *Wallet) SetID(id uint) { w.id = id }

func (w *Wallet) ID() uint             { return w.id }
func (w *Wallet) OwnerUUID() string    { return w.ownerUUID }
func (w *Wallet) WalletType() Type     { return w.walletType }
func (w *Wallet) Address() string      { return w.address }
func (w *Wallet) Hash() *string        { return w.hash }
func (w *Wallet) Currency() string     { return w.currency }
func (w *Wallet) CreatedAt() time.Time { return w.createdAt }

// ReconstructWallet creates a Wallet from persistence.
func ReconstructWallet(
	id uint,
	ownerUUID string,
	walletType Type,
	address string,
	hash *string,
	currency string,
	createdAt time.Time,
) *Wallet {
	return &Wallet{
		id:         id,
		ownerUUID:  ownerUUID,
		walletType: walletType,
		address:    address,
		hash:       hash,
		currency:   currency,
		createdAt:  createdAt,
	}
}
