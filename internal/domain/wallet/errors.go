package wallet

import (
	"fmt"

	"crowdfund/internal/shared/errors"
)

// NewMissingError is returned when an operation requires a wallet the owner
// does not have (e.g. creating a deposit before creating a wallet).
func NewMissingError(ownerUUID string) *errors.AppError {
	return errors.NewNotFoundError("wallet not found",
		fmt.Sprintf("owner %s must have a wallet for this operation", ownerUUID))
}

func NewAlreadyExistsError(ownerUUID string) *errors.AppError {
	return errors.NewConflictError("wallet already exists",
		fmt.Sprintf("owner %s already has a wallet", ownerUUID))
}
