package service

import (
	"fmt"

	"github.com/MKhiriev/go-borrower-search/internal/config"
	"github.com/MKhiriev/go-borrower-search/internal/logger"
	"github.com/MKhiriev/go-borrower-search/internal/store"
	"github.com/MKhiriev/go-borrower-search/internal/validators"
)

// Services groups the server-side services used by the handlers.
type Services struct {
	BorrowerSearchService BorrowerSearchService
	AppInfoService        AppInfoService
}

// NewServices wires the server services. The borrower search is wrapped with
// input validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	searchService := NewBorrowerSearchValidationService(validators.NewSearchInputValidator()).
		Wrap(NewBorrowerSearchService(storages.BorrowerRepository, logger))

	return &Services{
		BorrowerSearchService: searchService,
		AppInfoService:        appInfoService,
	}, nil
}
