package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-nft-market/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores API users allowed to call protected routes.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindCredentialsByUsername returns ErrNoUserWasFound for an unknown username.
	FindCredentialsByUsername(ctx context.Context, username string) (models.StoredCredentials, error)
}

// SaleRepository reads and writes completed sales.
type SaleRepository interface {
	// ListSales returns up to filter.Limit+1 sales ordered by id.
	ListSales(ctx context.Context, filter models.SaleFilter) ([]models.Sale, error)
	// ListSalesSince returns up to page.Limit sales dated at or after since,
	// ordered by date and id.
	ListSalesSince(ctx context.Context, since time.Time, page models.Page) ([]models.Sale, error)
	InsertSale(ctx context.Context, sale models.SaleForInsert) error
}

// NftTokenRepository reads and writes minted tokens.
type NftTokenRepository interface {
	// ListNftTokens returns up to filter.Limit+1 tokens ordered by creation time.
	ListNftTokens(ctx context.Context, filter models.NftTokenFilter) ([]models.NftToken, error)
	// InsertNftToken ignores a token whose token_id is already stored.
	InsertNftToken(ctx context.Context, token models.NftTokenForInsert) error
	// CountOwnedTokens counts the distinct tokenIDs owned by ownerID.
	CountOwnedTokens(ctx context.Context, ownerID string, tokenIDs []string) (int64, error)
}

// AskRepository reads and writes sell orders.
type AskRepository interface {
	ListAsks(ctx context.Context, filter models.AskFilter) ([]models.Ask, error)
	InsertAsk(ctx context.Context, ask models.AskForInsert) error
	// DeleteAsk returns ErrNothingDeleted when no ask has the id.
	DeleteAsk(ctx context.Context, id int64) error
}

// BidRepository reads and writes buy orders.
type BidRepository interface {
	ListBids(ctx context.Context, filter models.BidFilter) ([]models.Bid, error)
	InsertBid(ctx context.Context, bid models.BidForInsert) error
	// DeleteBid returns ErrNothingDeleted when no bid has the id.
	DeleteBid(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
