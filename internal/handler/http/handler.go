package http

import (
	"github.com/MKhiriev/go-borrower-search/internal/config"
	"github.com/MKhiriev/go-borrower-search/internal/logger"
	"github.com/MKhiriev/go-borrower-search/internal/service"
	"github.com/MKhiriev/go-borrower-search/internal/utils"
)

// traceIDGenerator produces trace ids for requests arriving without one.
type traceIDGenerator interface {
	Generate() string
}

type Handler struct {
	services *service.Services
	cfg      config.Server

	traceIDs traceIDGenerator
	logger   *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
