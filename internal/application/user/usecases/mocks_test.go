package usecases

import (
	"context"

	"crowdfund/internal/domain/user"
	"crowdfund/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc     func(ctx context.Context, u *user.User) error
	UpdateFunc     func(ctx context.Context, u *user.User) error
	GetByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	GetByUUIDFunc  func(ctx context.Context, userUUID string) (*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	ListFunc       func(ctx context.Context) ([]*user.User, error)
	DeleteByIDFunc func(ctx context.Context, id uint) error
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUUID(ctx context.Context, userUUID string) (*user.User, error) {
	if m.GetByUUIDFunc != nil {
		return m.GetByUUIDFunc(ctx, userUUID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) DeleteByID(ctx context.Context, id uint) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil
}

type mockMailTokenRepository struct {
	CreateFunc      func(ctx context.Context, t *user.MailToken) error
	GetByTokenFunc  func(ctx context.Context, token string) (*user.MailToken, error)
	GetByUserIDFunc func(ctx context.Context, userID uint) (*user.MailToken, error)
	DeleteFunc      func(ctx context.Context, id uint) error
}

func (m *mockMailTokenRepository) Create(ctx context.Context, t *user.MailToken) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockMailTokenRepository) GetByToken(ctx context.Context, token string) (*user.MailToken, error) {
	if m.GetByTokenFunc != nil {
		return m.GetByTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockMailTokenRepository) GetByUserID(ctx context.Context, userID uint) (*user.MailToken, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockMailTokenRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockHasher struct {
	HashFunc    func(password string) (string, error)
	CompareFunc func(hashed, plain string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Compare(hashed, plain string) error {
	if m.CompareFunc != nil {
		return m.CompareFunc(hashed, plain)
	}
	if hashed == "hashed:"+plain {
		return nil
	}
	return errMismatch
}

var errMismatch = mismatchError{}

type mismatchError struct{}

func (mismatchError) Error() string { return "password mismatch" }

type mockTokenIssuer struct {
	IssueFunc func(u *user.User) (string, int64, error)
}

func (m *mockTokenIssuer) Issue(u *user.User) (string, int64, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(u)
	}
	return "token", 0, nil
}

type mockMailSender struct {
	SendConfirmationMailFunc func(to, token string) error
}

func (m *mockMailSender) SendConfirmationMail(to, token string) error {
	if m.SendConfirmationMailFunc != nil {
		return m.SendConfirmationMailFunc(to, token)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
