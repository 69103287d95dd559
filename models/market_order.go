package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ask is a standing offer to sell a token.
type Ask struct {
	ID         int64           `db:"id" json:"id"`
	ApprovalID int64           `db:"approval_id" json:"approval_id"`
	TokenID    string          `db:"token_id" json:"token_id"`
	AccountID  string          `db:"account_id" json:"account_id"`
	Price      decimal.Decimal `db:"price" json:"price"`
}

// AskForInsert is the payload accepted by POST /asks.
type AskForInsert struct {
	ApprovalID int64           `json:"approval_id"`
	TokenID    string          `json:"token_id"`
	AccountID  string          `json:"account_id"`
	Price      decimal.Decimal `json:"price"`
}

// Bid is a standing offer to buy a token until ExpireAt.
type Bid struct {
	ID        int64           `db:"id" json:"id"`
	TokenID   string          `db:"token_id" json:"token_id"`
	AccountID string          `db:"account_id" json:"account_id"`
	Price     decimal.Decimal `db:"price" json:"price"`
	ExpireAt  time.Time       `db:"expire_at" json:"expire_at"`
	CreateAt  time.Time       `db:"create_at" json:"create_at"`
}

// BidForInsert is the payload accepted by POST /bids.
type BidForInsert struct {
	TokenID   string          `json:"token_id"`
	AccountID string          `json:"account_id"`
	Price     decimal.Decimal `json:"price"`
	ExpireAt  time.Time       `json:"expire_at"`
}
