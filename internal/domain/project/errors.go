package project

import (
	"fmt"

	"crowdfund/internal/shared/errors"
)

func NewNotFoundError(id uint) *errors.AppError {
	return errors.NewNotFoundError("project not found", fmt.Sprintf("missing project: %d", id))
}
