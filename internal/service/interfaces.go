package service

import (
	"context"

	"github.com/MKhiriev/go-nft-market/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService verifies the Basic credentials of protected routes and
// registers API users.
type AuthService interface {
	// VerifyCredentials returns the id of the user owning creds.
	// An unknown username and a wrong password both yield ErrInvalidCredentials.
	VerifyCredentials(ctx context.Context, creds models.Credentials) (uuid.UUID, error)
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
}

type SaleService interface {
	ListSales(ctx context.Context, filter models.SaleFilter) (models.RowsReport[models.Sale], error)
	// Paid summarises the sales of the last filter.Days days.
	Paid(ctx context.Context, filter models.PaidFilter) (models.Paid, error)
	InsertSale(ctx context.Context, sale models.SaleForInsert) error
}

type NftTokenService interface {
	ListNftTokens(ctx context.Context, filter models.NftTokenFilter) (models.RowsReport[models.NftToken], error)
	InsertNftToken(ctx context.Context, token models.NftTokenForInsert) error
	// IsOwner reports whether ownerID owns every token in tokenIDs.
	IsOwner(ctx context.Context, ownerID string, tokenIDs []string) (bool, error)
}

type AskService interface {
	ListAsks(ctx context.Context, filter models.AskFilter) (models.RowsReport[models.Ask], error)
	InsertAsk(ctx context.Context, ask models.AskForInsert) error
	DeleteAsk(ctx context.Context, request models.DeleteRequest) error
}

type BidService interface {
	ListBids(ctx context.Context, filter models.BidFilter) (models.RowsReport[models.Bid], error)
	InsertBid(ctx context.Context, bid models.BidForInsert) error
	DeleteBid(ctx context.Context, request models.DeleteRequest) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
