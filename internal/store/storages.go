package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-nft-market/internal/config"
	"github.com/MKhiriev/go-nft-market/internal/logger"
)

// Storages aggregates every repository over one PostgreSQL connection pool.
type Storages struct {
	UserRepository     UserRepository
	SaleRepository     SaleRepository
	NftTokenRepository NftTokenRepository
	AskRepository      AskRepository
	BidRepository      BidRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		SaleRepository:     NewSaleRepository(db, log),
		NftTokenRepository: NewNftTokenRepository(db, log),
		AskRepository:      NewAskRepository(db, log),
		BidRepository:      NewBidRepository(db, log),
		db:                 db,
	}
}

// Ping reports whether the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
