package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/MKhiriev/go-nft-market/internal/utils"
	"github.com/MKhiriev/go-nft-market/models"
)

// nftTokenRepository is the PostgreSQL-backed implementation of
// [NftTokenRepository]. Row ids are generated on insert.
type nftTokenRepository struct {
	db     *DB
	logger *logger.Logger
	ids    *utils.UUIDGenerator
	now    func() time.Time
}

func NewNftTokenRepository(db *DB, logger *logger.Logger) NftTokenRepository {
	logger.Debug().Msg("creating nft token repository")
	return &nftTokenRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
	}
}

func (r *nftTokenRepository) ListNftTokens(ctx context.Context, filter models.NftTokenFilter) ([]models.NftToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNftTokensQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*nftTokenRepository.ListNftTokens").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tokens, err := selectAll[models.NftToken](ctx, r.db, query, args)
	if err != nil {
		log.Err(err).
			Str("func", "*nftTokenRepository.ListNftTokens").
			Str("token_id", filter.TokenID).
			Str("owner_id", filter.OwnerID).
			Msg("failed to query nft tokens")
		return nil, err
	}

	return tokens, nil
}

func (r *nftTokenRepository) InsertNftToken(ctx context.Context, token models.NftTokenForInsert) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNftTokenQuery(r.ids.Generate(), token, r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*nftTokenRepository.InsertNftToken").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := execAffected(ctx, r.db, query, args)
	if err != nil {
		log.Err(err).Str("func", "*nftTokenRepository.InsertNftToken").Str("token_id", token.TokenID).Msg("failed to insert nft token")
		return err
	}
	if affected == 0 {
		log.Debug().Str("token_id", token.TokenID).Msg("nft token already stored")
	}

	return nil
}

func (r *nftTokenRepository) CountOwnedTokens(ctx context.Context, ownerID string, tokenIDs []string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountOwnedTokensQuery(ownerID, tokenIDs)
	if err != nil {
		log.Err(err).Str("func", "*nftTokenRepository.CountOwnedTokens").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.GetContext(ctx, &count, query, args...)
	})
	if err != nil {
		log.Err(err).Str("func", "*nftTokenRepository.CountOwnedTokens").Str("owner_id", ownerID).Msg("failed to count owned tokens")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
