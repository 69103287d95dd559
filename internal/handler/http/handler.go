package http

import (
	"time"

	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/MKhiriev/go-nft-market/internal/service"
	"github.com/MKhiriev/go-nft-market/internal/utils"
)

type Handler struct {
	services       *service.Services
	requestTimeout time.Duration
	maxBodyBytes   int64
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. A zero requestTimeout disables the
// per-request timeout and a zero maxBodyBytes disables the body limit.
func NewHandler(services *service.Services, requestTimeout time.Duration, maxBodyBytes int64, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		maxBodyBytes:   maxBodyBytes,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
