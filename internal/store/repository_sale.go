package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/MKhiriev/go-nft-market/models"
)

// saleRepository is the PostgreSQL-backed implementation of [SaleRepository].
type saleRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewSaleRepository(db *DB, logger *logger.Logger) SaleRepository {
	logger.Debug().Msg("creating sale repository")
	return &saleRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *saleRepository) ListSales(ctx context.Context, filter models.SaleFilter) ([]models.Sale, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSalesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*saleRepository.ListSales").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	sales, err := selectAll[models.Sale](ctx, r.db, query, args)
	if err != nil {
		log.Err(err).Str("func", "*saleRepository.ListSales").Str("token_id", filter.TokenID).Msg("failed to query sales")
		return nil, err
	}

	return sales, nil
}

func (r *saleRepository) ListSalesSince(ctx context.Context, since time.Time, page models.Page) ([]models.Sale, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSalesSinceQuery(since, page)
	if err != nil {
		log.Err(err).Str("func", "*saleRepository.ListSalesSince").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	sales, err := selectAll[models.Sale](ctx, r.db, query, args)
	if err != nil {
		log.Err(err).Str("func", "*saleRepository.ListSalesSince").Time("since", since).Msg("failed to query sales")
		return nil, err
	}

	return sales, nil
}

// InsertSale stores a sale dated now.
func (r *saleRepository) InsertSale(ctx context.Context, sale models.SaleForInsert) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSaleQuery(sale, r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*saleRepository.InsertSale").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = execAffected(ctx, r.db, query, args); err != nil {
		log.Err(err).Str("func", "*saleRepository.InsertSale").Str("token_id", sale.TokenID).Msg("failed to insert sale")
		return err
	}

	return nil
}
