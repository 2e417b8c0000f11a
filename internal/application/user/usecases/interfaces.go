package usecases

import "crowdfund/internal/domain/user"

// PasswordHasher hides the hashing algorithm from the use cases.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashed, plain string) error
}

// TokenIssuer issues signed access tokens for authenticated users.
type TokenIssuer interface {
	Issue(u *user.User) (token string, expiresAt int64, err error)
}

// MailSender delivers account mails. Delivery is best effort.
type MailSender interface {
	SendConfirmationMail(to, token string) error
}
