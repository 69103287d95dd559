package service

import (
	"github.com/MKhiriev/go-nft-market/internal/config"
	"github.com/MKhiriev/go-nft-market/internal/crypto"
	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/MKhiriev/go-nft-market/internal/store"
	"github.com/MKhiriev/go-nft-market/internal/workers"
	"github.com/MKhiriev/go-nft-market/models"
)

type Services struct {
	AuthService     AuthService
	SaleService     SaleService
	NftTokenService NftTokenService
	AskService      AskService
	BidService      BidService
	AppInfoService  AppInfoService
}

// NewServices wires the services over storages. Write methods of the market
// services are validated before they reach the store.
func NewServices(storages *store.Storages, executor workers.Executor, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(crypto.DefaultParams), executor, logger),
		SaleService:     NewSaleValidationService().Wrap(NewSaleService(storages.SaleRepository, logger)),
		NftTokenService: NewNftTokenValidationService().Wrap(NewNftTokenService(storages.NftTokenRepository, logger)),
		AskService:      NewAskValidationService().Wrap(NewAskService(storages.AskRepository, logger)),
		BidService:      NewBidValidationService().Wrap(NewBidService(storages.BidRepository, logger)),
		AppInfoService:  appInfoService,
	}, nil
}
