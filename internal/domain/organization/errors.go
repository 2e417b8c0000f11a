package organization

import (
	"fmt"

	"crowdfund/internal/shared/errors"
)

func NewNotFoundError(id uint) *errors.AppError {
	return errors.NewNotFoundError("organization not found", fmt.Sprintf("missing organization: %d", id))
}

func NewNotApprovedError(id uint) *errors.AppError {
	return errors.NewBadRequestError("organization is not approved",
		fmt.Sprintf("organization: %d", id))
}
