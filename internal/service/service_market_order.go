package service

import (
	"context"

	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/MKhiriev/go-nft-market/internal/store"
	"github.com/MKhiriev/go-nft-market/models"
)

type askService struct {
	askRepository store.AskRepository

	logger *logger.Logger
}

func NewAskService(askRepository store.AskRepository, logger *logger.Logger) AskService {
	return &askService{askRepository: askRepository, logger: logger}
}

func (s *askService) ListAsks(ctx context.Context, filter models.AskFilter) (models.RowsReport[models.Ask], error) {
	asks, err := s.askRepository.ListAsks(ctx, filter)
	if err != nil {
		return models.RowsReport[models.Ask]{}, err
	}

	return models.NewRowsReport(asks, filter.Limit), nil
}

func (s *askService) InsertAsk(ctx context.Context, ask models.AskForInsert) error {
	return s.askRepository.InsertAsk(ctx, ask)
}

func (s *askService) DeleteAsk(ctx context.Context, request models.DeleteRequest) error {
	return s.askRepository.DeleteAsk(ctx, request.ID)
}

type bidService struct {
	bidRepository store.BidRepository

	logger *logger.Logger
}

func NewBidService(bidRepository store.BidRepository, logger *logger.Logger) BidService {
	return &bidService{bidRepository: bidRepository, logger: logger}
}

func (s *bidService) ListBids(ctx context.Context, filter models.BidFilter) (models.RowsReport[models.Bid], error) {
	bids, err := s.bidRepository.ListBids(ctx, filter)
	if err != nil {
		return models.RowsReport[models.Bid]{}, err
	}

	return models.NewRowsReport(bids, filter.Limit), nil
}

func (s *bidService) InsertBid(ctx context.Context, bid models.BidForInsert) error {
	return s.bidRepository.InsertBid(ctx, bid)
}

func (s *bidService) DeleteBid(ctx context.Context, request models.DeleteRequest) error {
	return s.bidRepository.DeleteBid(ctx, request.ID)
}
