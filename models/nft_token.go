package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NftToken is a minted token together with its metadata and game model.
type NftToken struct {
	ID          uuid.UUID    `db:"id" json:"id"`
	OwnerID     string       `db:"owner_id" json:"owner_id"`
	TokenID     string       `db:"token_id" json:"token_id"`
	Title       *string      `db:"title" json:"title"`
	Description *string      `db:"description" json:"description"`
	Media       string       `db:"media" json:"media"`
	MediaHash   *string      `db:"media_hash" json:"media_hash"`
	Copies      *string      `db:"copies" json:"copies"`
	IssuedAt    *string      `db:"issued_at" json:"issued_at"`
	ExpiresAt   *string      `db:"expires_at" json:"expires_at"`
	Model       JSONDocument `db:"model" json:"model"`
	DBCreatedAt time.Time    `db:"db_created_at" json:"db_created_at"`
}

// NftTokenForInsert is the payload accepted by POST /nft_tokens.
type NftTokenForInsert struct {
	OwnerID     string       `json:"owner_id"`
	TokenID     string       `json:"token_id"`
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Media       string       `json:"media"`
	MediaHash   *string      `json:"media_hash"`
	Copies      *string      `json:"copies"`
	IssuedAt    *string      `json:"issued_at"`
	ExpiresAt   *string      `json:"expires_at"`
	Model       JSONDocument `json:"model"`
}

// JSONDocument is an opaque JSON value kept in a jsonb column.
// It is written to and read from the database and the wire verbatim.
type JSONDocument []byte

func (d JSONDocument) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

func (d *JSONDocument) UnmarshalJSON(data []byte) error {
	if d == nil {
		return fmt.Errorf("models.JSONDocument: UnmarshalJSON on nil pointer")
	}
	*d = append((*d)[0:0], data...)
	return nil
}

// Scan implements [sql.Scanner].
func (d *JSONDocument) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = nil
	case []byte:
		*d = append((*d)[0:0], v...)
	case string:
		*d = JSONDocument(v)
	default:
		return fmt.Errorf("models.JSONDocument: cannot scan %T", src)
	}
	return nil
}

// Value implements [driver.Valuer].
func (d JSONDocument) Value() (driver.Value, error) {
	if len(d) == 0 {
		return nil, nil
	}
	return string(d), nil
}
