package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/MKhiriev/go-nft-market/internal/store"
	"github.com/MKhiriev/go-nft-market/models"
)

type saleService struct {
	saleRepository store.SaleRepository
	now            func() time.Time

	logger *logger.Logger
}

func NewSaleService(saleRepository store.SaleRepository, logger *logger.Logger) SaleService {
	return &saleService{
		saleRepository: saleRepository,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *saleService) ListSales(ctx context.Context, filter models.SaleFilter) (models.RowsReport[models.Sale], error) {
	sales, err := s.saleRepository.ListSales(ctx, filter)
	if err != nil {
		return models.RowsReport[models.Sale]{}, err
	}

	return models.NewRowsReport(sales, filter.Limit), nil
}

// Paid reads the window [now - days, now] page by page in date order and
// summarises the page that was read.
func (s *saleService) Paid(ctx context.Context, filter models.PaidFilter) (models.Paid, error) {
	since := s.now().UTC().AddDate(0, 0, -int(filter.Days))

	history, err := s.saleRepository.ListSalesSince(ctx, since, filter.Page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*saleService.Paid").Int64("days", filter.Days).Msg("failed to read sales window")
		return models.Paid{}, err
	}

	return models.NewPaid(history), nil
}

func (s *saleService) InsertSale(ctx context.Context, sale models.SaleForInsert) error {
	return s.saleRepository.InsertSale(ctx, sale)
}
