package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-nft-market/internal/validators"
	"github.com/MKhiriev/go-nft-market/models"
)

// The validation services decorate the write methods of the market services:
// a request body is validated, and its identifiers trimmed, before it reaches
// the inner service. Reads pass through unchanged.

type SaleValidationService struct {
	inner     SaleService
	validator validators.Validator
}

func NewSaleValidationService() *SaleValidationService {
	return &SaleValidationService{validator: validators.NewPayloadValidator()}
}

func (v *SaleValidationService) Wrap(inner SaleService) SaleService {
	v.inner = inner
	return v
}

func (v *SaleValidationService) ListSales(ctx context.Context, filter models.SaleFilter) (models.RowsReport[models.Sale], error) {
	return v.inner.ListSales(ctx, filter)
}

func (v *SaleValidationService) Paid(ctx context.Context, filter models.PaidFilter) (models.Paid, error) {
	return v.inner.Paid(ctx, filter)
}

func (v *SaleValidationService) InsertSale(ctx context.Context, sale models.SaleForInsert) error {
	if err := v.validator.Validate(ctx, &sale); err != nil {
		return fmt.Errorf("error during sale validation before saving: %w", err)
	}

	return v.inner.InsertSale(ctx, sale)
}

type NftTokenValidationService struct {
	inner     NftTokenService
	validator validators.Validator
}

func NewNftTokenValidationService() *NftTokenValidationService {
	return &NftTokenValidationService{validator: validators.NewPayloadValidator()}
}

func (v *NftTokenValidationService) Wrap(inner NftTokenService) NftTokenService {
	v.inner = inner
	return v
}

func (v *NftTokenValidationService) ListNftTokens(ctx context.Context, filter models.NftTokenFilter) (models.RowsReport[models.NftToken], error) {
	return v.inner.ListNftTokens(ctx, filter)
}

func (v *NftTokenValidationService) InsertNftToken(ctx context.Context, token models.NftTokenForInsert) error {
	if err := v.validator.Validate(ctx, &token); err != nil {
		return fmt.Errorf("error during nft token validation before saving: %w", err)
	}

	return v.inner.InsertNftToken(ctx, token)
}

func (v *NftTokenValidationService) IsOwner(ctx context.Context, ownerID string, tokenIDs []string) (bool, error) {
	return v.inner.IsOwner(ctx, ownerID, tokenIDs)
}

type AskValidationService struct {
	inner     AskService
	validator validators.Validator
}

func NewAskValidationService() *AskValidationService {
	return &AskValidationService{validator: validators.NewPayloadValidator()}
}

func (v *AskValidationService) Wrap(inner AskService) AskService {
	v.inner = inner
	return v
}

func (v *AskValidationService) ListAsks(ctx context.Context, filter models.AskFilter) (models.RowsReport[models.Ask], error) {
	return v.inner.ListAsks(ctx, filter)
}

func (v *AskValidationService) InsertAsk(ctx context.Context, ask models.AskForInsert) error {
	if err := v.validator.Validate(ctx, &ask); err != nil {
		return fmt.Errorf("error during ask validation before saving: %w", err)
	}

	return v.inner.InsertAsk(ctx, ask)
}

func (v *AskValidationService) DeleteAsk(ctx context.Context, request models.DeleteRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("error during ask validation before deleting: %w", err)
	}

	return v.inner.DeleteAsk(ctx, request)
}

type BidValidationService struct {
	inner     BidService
	validator validators.Validator
}

func NewBidValidationService() *BidValidationService {
	return &BidValidationService{validator: validators.NewPayloadValidator()}
}

func (v *BidValidationService) Wrap(inner BidService) BidService {
	v.inner = inner
	return v
}

func (v *BidValidationService) ListBids(ctx context.Context, filter models.BidFilter) (models.RowsReport[models.Bid], error) {
	return v.inner.ListBids(ctx, filter)
}

func (v *BidValidationService) InsertBid(ctx context.Context, bid models.BidForInsert) error {
	if err := v.validator.Validate(ctx, &bid); err != nil {
		return fmt.Errorf("error during bid validation before saving: %w", err)
	}

	return v.inner.InsertBid(ctx, bid)
}

func (v *BidValidationService) DeleteBid(ctx context.Context, request models.DeleteRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("error during bid validation before deleting: %w", err)
	}

	return v.inner.DeleteBid(ctx, request)
}
