package service

import (
	"context"

	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/MKhiriev/go-nft-market/internal/store"
	"github.com/MKhiriev/go-nft-market/internal/validators"
	"github.com/MKhiriev/go-nft-market/models"
)

type nftTokenService struct {
	nftTokenRepository store.NftTokenRepository

	logger *logger.Logger
}

func NewNftTokenService(nftTokenRepository store.NftTokenRepository, logger *logger.Logger) NftTokenService {
	return &nftTokenService{
		nftTokenRepository: nftTokenRepository,
		logger:             logger,
	}
}

func (s *nftTokenService) ListNftTokens(ctx context.Context, filter models.NftTokenFilter) (models.RowsReport[models.NftToken], error) {
	tokens, err := s.nftTokenRepository.ListNftTokens(ctx, filter)
	if err != nil {
		return models.RowsReport[models.NftToken]{}, err
	}

	return models.NewRowsReport(tokens, filter.Limit), nil
}

func (s *nftTokenService) InsertNftToken(ctx context.Context, token models.NftTokenForInsert) error {
	return s.nftTokenRepository.InsertNftToken(ctx, token)
}

// IsOwner validates ownerID, the list length and every token id, then
// compares the number of distinct requested tokens with the number of them
// owned by ownerID. An empty token list is trivially owned.
func (s *nftTokenService) IsOwner(ctx context.Context, ownerID string, tokenIDs []string) (bool, error) {
	ownerID, err := validators.Required(ownerID, validators.OwnerIDPolicy)
	if err != nil {
		return false, err
	}
	if err = validators.TokenIDCount(tokenIDs); err != nil {
		return false, err
	}

	distinct := make([]string, 0, len(tokenIDs))
	seen := make(map[string]struct{}, len(tokenIDs))
	for _, raw := range tokenIDs {
		tokenID, err := validators.Required(raw, validators.TokenIDPolicy)
		if err != nil {
			return false, err
		}
		if _, ok := seen[tokenID]; ok {
			continue
		}
		seen[tokenID] = struct{}{}
		distinct = append(distinct, tokenID)
	}

	if len(distinct) == 0 {
		return true, nil
	}

	owned, err := s.nftTokenRepository.CountOwnedTokens(ctx, ownerID, distinct)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*nftTokenService.IsOwner").Str("owner_id", ownerID).Msg("failed to count owned tokens")
		return false, err
	}

	return owned == int64(len(distinct)), nil
}
