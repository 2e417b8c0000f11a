package user

import (
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/shared/biztime"
)

// MailTokenTTL is how long an email confirmation token stays valid.
const MailTokenTTL = 10 * time.Minute

// MailToken is a one-shot email confirmation token. It is deleted once the
// user confirms, or replaced when a new confirmation mail is sent.
type MailToken struct {
	id        uint
	userID    uint
	token     string
	createdAt time.Time
}

func NewMailToken(userID uint) *MailToken {
	return &MailToken{
		userID:    userID,
		token:     uuid.NewString(),
		createdAt: biztime.NowUTC(),
	}
}

func (t *MailToken) IsExpired() bool {
	return t.createdAt.Add(MailTokenTTL).Before(biztime.NowUTC())
}

func (t *MailToken) SetID(id uint) { t.id = id }

func (t *MailToken) ID() uint             { return t.id }
func (t *MailToken) UserID() uint         { return t.userID }
func (t *MailToken) Token() string        { return t.token }
func (t *MailToken) CreatedAt() time.Time { return t.createdAt }

// ReconstructMailToken creates a MailToken from persistence.
func ReconstructMailToken(id, userID uint, token string, createdAt time.Time) *MailToken {
	return &MailToken{id: id, userID: userID, token: token, createdAt: createdAt}
}
