package blockchain

import "crowdfund/internal/shared/errors"

// NewUnavailableError is returned when the blockchain service cannot be
// reached for an operation that must not degrade.
func NewUnavailableError(details ...string) *errors.AppError {
	return errors.NewInternalError("blockchain service unavailable", details...)
}

// NewTxGenerationFailedError is returned when the service rejects or fails
// an unsigned-transaction generation request.
func NewTxGenerationFailedError(details ...string) *errors.AppError {
	return errors.NewInternalError("failed to generate transaction", details...)
}

// NewTxPostFailedError is returned when posting a signed transaction fails.
func NewTxPostFailedError(details ...string) *errors.AppError {
	return errors.NewInternalError("failed to post transaction", details...)
}
