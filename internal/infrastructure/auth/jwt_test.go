package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/domain/user"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	u, err := user.NewUser("alice@example.com", "hash", "Alice", "Smith", "")
	require.NoError(t, err)

	token, expiresAt, err := svc.Issue(u)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, u.UUID(), claims.UserUUID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, string(user.RoleUser), claims.Role)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", 15)
	verifier := NewJWTService("secret-b", 15)

	u, err := user.NewUser("bob@example.com", "hash", "Bob", "Jones", "")
	require.NoError(t, err)

	token, _, err := issuer.Issue(u)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}

func TestBcryptPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.NoError(t, hasher.Compare(hash, "s3cret-password"))
	assert.Error(t, hasher.Compare(hash, "wrong-password"))
}
