package user

import (
	"fmt"

	"crowdfund/internal/shared/errors"
)

func NewNotFoundError(details ...string) *errors.AppError {
	return errors.NewNotFoundError("user not found", details...)
}

func NewEmailExistsError(email string) *errors.AppError {
	return errors.NewConflictError("user already exists",
		fmt.Sprintf("user with email %s already exists", email))
}

func NewMailTokenExpiredError(token string) *errors.AppError {
	return errors.NewBadRequestError("confirmation token has expired",
		fmt.Sprintf("token: %s", token))
}
