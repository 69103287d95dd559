package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a completed trade of a single token.
type Sale struct {
	ID        int64           `db:"id" json:"id"`
	PrevOwner string          `db:"prev_owner" json:"prev_owner"`
	CurrOwner string          `db:"curr_owner" json:"curr_owner"`
	TokenID   string          `db:"token_id" json:"token_id"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Date      time.Time       `db:"date" json:"date"`
}

// SaleForInsert is the payload accepted by POST /sales.
// ID and Date are assigned by the database.
type SaleForInsert struct {
	PrevOwner string          `json:"prev_owner"`
	CurrOwner string          `json:"curr_owner"`
	TokenID   string          `json:"token_id"`
	Price     decimal.Decimal `json:"price"`
}

// Paid summarises the sales made within a time window.
type Paid struct {
	History          []Sale          `json:"history"`
	TotalTradeVolume decimal.Decimal `json:"total_trade_volume"`
	TradesNumber     int             `json:"trades_number"`
	TopTrade         decimal.Decimal `json:"top_trade"`
}

// NewPaid computes the statistics of history: the number of trades, the sum
// of their prices and the highest price. An empty history yields zeroes.
func NewPaid(history []Sale) Paid {
	if history == nil {
		history = []Sale{}
	}

	paid := Paid{
		History:          history,
		TotalTradeVolume: decimal.Zero,
		TradesNumber:     len(history),
		TopTrade:         decimal.Zero,
	}

	for i, sale := range history {
		paid.TotalTradeVolume = paid.TotalTradeVolume.Add(sale.Price)
		if i == 0 || sale.Price.GreaterThan(paid.TopTrade) {
			paid.TopTrade = sale.Price
		}
	}

	return paid
}
