package models

import (
	"time"

	"github.com/google/uuid"
)

const redacted = "[REDACTED]"

// Secret holds sensitive text such as a password or a password hash.
// Its string, Go-syntax and JSON forms are redacted, so a Secret can be
// passed to loggers and formatters without leaking the value.
type Secret string

// Expose returns the underlying value. Call it only at the point of use.
func (s Secret) Expose() string {
	return string(s)
}

func (s Secret) String() string {
	return redacted
}

func (s Secret) GoString() string {
	return redacted
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

// Credentials is a username/password pair decoded from a Basic
// Authorization header. It lives only for the duration of one request.
type Credentials struct {
	Username string `json:"username"`
	Password Secret `json:"password"`
}

// StoredCredentials is the persisted counterpart of [Credentials]: the user
// identifier and the PHC-encoded Argon2id hash of the password.
type StoredCredentials struct {
	UserID       uuid.UUID `db:"user_id"`
	PasswordHash Secret    `db:"password_hash"`
}

// User is an API account allowed to call protected write routes.
type User struct {
	UserID       uuid.UUID `db:"user_id" json:"user_id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash Secret    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
