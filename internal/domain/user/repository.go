package user

import "context"

// Repository defines persistence operations for users.
type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByUUID(ctx context.Context, userUUID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	DeleteByID(ctx context.Context, id uint) error
}

// MailTokenRepository defines persistence operations for confirmation
// tokens.
type MailTokenRepository interface {
	Create(ctx context.Context, t *MailToken) error
	GetByToken(ctx context.Context, token string) (*MailToken, error)
	GetByUserID(ctx context.Context, userID uint) (*MailToken, error)
	Delete(ctx context.Context, id uint) error
}
