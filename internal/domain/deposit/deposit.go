// Package deposit contains the deposit aggregate: an off-chain cash deposit
// record pending conversion into on-chain minted tokens.
package deposit

import (
	"fmt"
	"time"

	"crowdfund/internal/shared/biztime"
	"crowdfund/internal/shared/ref"
)

// Deposit moves through a one-directional lifecycle: created (unapproved) →
// approved (amount and document attached) → minted (txHash recorded). Once
// the txHash is set the record is immutable through the normal workflow.
type Deposit struct {
	id             uint
	userUUID       string
	reference      string
	approved       bool
	approvedByUUID *string
	approvedAt     *time.Time
	amount         *int64
	documentID     *uint
	txHash         *string
	createdAt      time.Time
}

// NewDeposit creates an unapproved deposit with a fresh reference code.
func NewDeposit(userUUID string) (*Deposit, error) {
	if userUUID == "" {
		return nil, fmt.Errorf("user UUID is required")
	}

	return &Deposit{
		userUUID:  userUUID,
		reference: ref.Generate(ref.DepositLength),
		approved:  false,
		createdAt: biztime.NowUTC(),
	}, nil
}

// Approve attaches the amount and supporting document. Approval is a
// monotonic transition: approving an already-approved deposit fails instead
// of silently overwriting the recorded amount, document and approver.
func (d *Deposit) Approve(approverUUID string, amount int64, documentID uint) error {
	if d.txHash != nil {
		return NewAlreadyMintedError(*d.txHash)
	}
	if d.approved {
		return NewAlreadyApprovedError(d.id)
	}
	if approverUUID == "" {
		return fmt.Errorf("approver UUID is required")
	}
	if amount <= 0 {
		return fmt.Errorf("deposit amount must be positive")
	}

	now := biztime.NowUTC()
	d.approved = true
	d.approvedByUUID = &approverUUID
	d.approvedAt = &now
	d.amount = &amount
	d.documentID = &documentID
	return nil
}

// CanMint reports whether a mint transaction may be generated or confirmed
// for this deposit.
func (d *Deposit) CanMint() error {
	if d.txHash != nil {
		return NewAlreadyMintedError(*d.txHash)
	}
	if !d.approved {
		return NewNotApprovedError(d.id)
	}
	return nil
}

// ConfirmMint records the blockchain transaction hash. The hash can be set
// exactly once, and only on an approved deposit.
func (d *Deposit) ConfirmMint(txHash string) error {
	if err := d.CanMint(); err != nil {
		return err
	}
	if txHash == "" {
		return fmt.Errorf("transaction hash is required")
	}
	d.txHash = &txHash
	return nil
}

func (d *Deposit) SetID(id uint) {
	d.id = id
}

func (d *Deposit) ID() uint                { return d.id }
func (d *Deposit) UserUUID() string        { return d.userUUID }
func (d *Deposit) Reference() string       { return d.reference }
func (d *Deposit) Approved() bool          { return d.approved }
func (d *Deposit) ApprovedByUUID() *string { return d.approvedByUUID }
func (d *Deposit) ApprovedAt() *time.Time  { return d.approvedAt }
func (d *Deposit) Amount() *int64          { return d.amount }
func (d *Deposit) DocumentID() *uint       { return d.documentID }
func (d *Deposit) TxHash() *string         { return d.txHash }
func (d *Deposit) CreatedAt() time.Time    { return d.createdAt }

// Minted reports whether the mint transaction hash has been recorded.
func (d *Deposit) Minted() bool {
	return d.txHash != nil
}

// ReconstructDeposit creates a Deposit from persistence.
func ReconstructDeposit(
	id uint,
	userUUID string,
	reference string,
	approved bool,
	approvedByUUID *string,
	approvedAt *time.Time,
	amount *int64,
	documentID *uint,
	txHash *string,
	createdAt time.Time,
) *Deposit {
	return &Deposit{
		id:             id,
		userUUID:       userUUID,
		reference:      reference,
		approved:       approved,
		approvedByUUID: approvedByUUID,
		approvedAt:     approvedAt,
		amount:         amount,
		documentID:     documentID,
		txHash:         txHash,
		createdAt:      createdAt,
	}
}
