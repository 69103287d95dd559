package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/MKhiriev/go-nft-market/models"
)

type askRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewAskRepository(db *DB, logger *logger.Logger) AskRepository {
	logger.Debug().Msg("creating ask repository")
	return &askRepository{db: db, logger: logger}
}

func (r *askRepository) ListAsks(ctx context.Context, filter models.AskFilter) ([]models.Ask, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAsksQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*askRepository.ListAsks").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	asks, err := selectAll[models.Ask](ctx, r.db, query, args)
	if err != nil {
		log.Err(err).Str("func", "*askRepository.ListAsks").Msg("failed to query asks")
		return nil, err
	}

	return asks, nil
}

func (r *askRepository) InsertAsk(ctx context.Context, ask models.AskForInsert) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAskQuery(ask)
	if err != nil {
		log.Err(err).Str("func", "*askRepository.InsertAsk").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = execAffected(ctx, r.db, query, args); err != nil {
		log.Err(err).Str("func", "*askRepository.InsertAsk").Str("token_id", ask.TokenID).Msg("failed to insert ask")
		return err
	}

	return nil
}

func (r *askRepository) DeleteAsk(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "asks", id)
}

type bidRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewBidRepository(db *DB, logger *logger.Logger) BidRepository {
	logger.Debug().Msg("creating bid repository")
	return &bidRepository{db: db, logger: logger, now: time.Now}
}

func (r *bidRepository) ListBids(ctx context.Context, filter models.BidFilter) ([]models.Bid, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBidsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*bidRepository.ListBids").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	bids, err := selectAll[models.Bid](ctx, r.db, query, args)
	if err != nil {
		log.Err(err).Str("func", "*bidRepository.ListBids").Msg("failed to query bids")
		return nil, err
	}

	return bids, nil
}

func (r *bidRepository) InsertBid(ctx context.Context, bid models.BidForInsert) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertBidQuery(bid, r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*bidRepository.InsertBid").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = execAffected(ctx, r.db, query, args); err != nil {
		log.Err(err).Str("func", "*bidRepository.InsertBid").Str("token_id", bid.TokenID).Msg("failed to insert bid")
		return err
	}

	return nil
}

func (r *bidRepository) DeleteBid(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "bids", id)
}

func deleteByID(ctx context.Context, db *DB, table string, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteByIDQuery(table, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := execAffected(ctx, db, query, args)
	if err != nil {
		log.Err(err).Str("table", table).Int64("id", id).Msg("failed to delete row")
		return err
	}
	if affected == 0 {
		return ErrNothingDeleted
	}

	return nil
}
