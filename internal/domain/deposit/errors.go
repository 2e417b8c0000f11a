package deposit

import (
	"fmt"

	"crowdfund/internal/shared/errors"
)

// NewMissingError is returned when a referenced deposit does not exist.
func NewMissingError(id uint) *errors.AppError {
	return errors.NewNotFoundError("deposit not found", fmt.Sprintf("missing deposit: %d", id))
}

// NewAlreadyExistsError is returned when a user already has an unapproved
// deposit outstanding. It carries the conflicting deposit id so the client
// can point the user at it.
func NewAlreadyExistsError(existingID uint) *errors.AppError {
	return errors.NewConflictError("unapproved deposit already exists",
		fmt.Sprintf("check your unapproved deposit: %d", existingID))
}

// NewAlreadyApprovedError is returned when approval is attempted twice.
func NewAlreadyApprovedError(id uint) *errors.AppError {
	return errors.NewConflictError("deposit is already approved", fmt.Sprintf("deposit: %d", id))
}

// NewAlreadyMintedError is returned when a mint is attempted on a deposit
// that already has a transaction hash.
func NewAlreadyMintedError(txHash string) *errors.AppError {
	return errors.NewConflictError("deposit is already minted", fmt.Sprintf("mint txHash: %s", txHash))
}

// NewNotApprovedError is returned when a mint is attempted before approval.
func NewNotApprovedError(id uint) *errors.AppError {
	return errors.NewBadRequestError("deposit is not approved", fmt.Sprintf("deposit: %d", id))
}
