// Package user contains the user aggregate and its authentication state.
package user

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/shared/biztime"
)

// Role determines what a user may do. The platform has exactly two roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	id           uint
	uuid         string
	email        string
	passwordHash string
	firstName    string
	lastName     string
	phoneNumber  string
	role         Role
	enabled      bool
	createdAt    time.Time
}

// NewUser creates a disabled user pending email confirmation.
func NewUser(email, passwordHash, firstName, lastName, phoneNumber string) (*User, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address: %s", email)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("first and last name are required")
	}

	return &User{
		uuid:         uuid.NewString(),
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		phoneNumber:  phoneNumber,
		role:         RoleUser,
		enabled:      false,
		createdAt:    biztime.NowUTC(),
	}, nil
}

// Enable activates the account after email confirmation.
func (u *User) Enable() {
	u.enabled = true
}

func (u *User) UpdateProfile(firstName, lastName, phoneNumber string) error {
	if firstName == "" || lastName == "" {
		return fmt.Errorf("first and last name are required")
	}
	u.firstName = firstName
	u.lastName = lastName
	u.phoneNumber = phoneNumber
	return nil
}

func (u *User) PromoteToAdmin() {
	u.role = RoleAdmin
}

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

func (u *User) FullName() string {
	return u.firstName + " " + u.lastName
}

func (u *User) SetID(id uint) { u.id = id }

func (u *User) ID() uint             { return u.id }
func (u *User) UUID() string         { return u.uuid }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) PhoneNumber() string  { return u.phoneNumber }
func (u *User) Role() Role           { return u.role }
func (u *User) Enabled() bool        { return u.enabled }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// ReconstructUser creates a User from persistence.
func ReconstructUser(
	id uint,
	userUUID string,
	email string,
	passwordHash string,
	firstName string,
	lastName string,
	phoneNumber string,
	role Role,
	enabled bool,
	createdAt time.Time,
) *User {
	return &User{
		id:           id,
		uuid:         userUUID,
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		phoneNumber:  phoneNumber,
		role:         role,
		enabled:      enabled,
		createdAt:    createdAt,
	}
}
