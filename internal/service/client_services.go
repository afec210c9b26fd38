package service

import (
	"github.com/MKhiriev/go-borrower-search/internal/adapter"
	"github.com/MKhiriev/go-borrower-search/internal/config"
	"github.com/MKhiriev/go-borrower-search/internal/logger"
	"github.com/MKhiriev/go-borrower-search/internal/state"
	"github.com/MKhiriev/go-borrower-search/internal/validators"
)

// Names of the search form variants.
const (
	VariantPG    = "PG"
	VariantMongo = "Mongo"
)

// ClientSearchVariant is one search form: its name, the state it publishes
// into and the controller that drives it.
type ClientSearchVariant struct {
	Name     string
	Endpoint string
	Store    state.SearchStore
	Service  ClientSearchService
}

// ClientServices groups the client-side services. Variants lists the
// configured search forms, the primary one first.
type ClientServices struct {
	Variants []ClientSearchVariant
}

// NewClientServices builds one variant per configured endpoint. The Mongo
// variant is skipped when cfg.AltSearchEndpoint is empty. Each variant owns
// its own store.
func NewClientServices(searchAdapter adapter.SearchAdapter, cfg config.ClientAdapter, log *logger.Logger) *ClientServices {
	validator := validators.NewSearchInputValidator()

	newVariant := func(name, endpoint string) ClientSearchVariant {
		store := state.NewSearchStore()
		variantLogger := &logger.Logger{Logger: log.With().Str("variant", name).Logger()}
		return ClientSearchVariant{
			Name:     name,
			Endpoint: endpoint,
			Store:    store,
			Service:  NewClientSearchService(searchAdapter, store, validator, endpoint, variantLogger),
		}
	}

	services := &ClientServices{
		Variants: []ClientSearchVariant{newVariant(VariantPG, cfg.SearchEndpoint)},
	}
	if cfg.AltSearchEndpoint != "" {
		services.Variants = append(services.Variants, newVariant(VariantMongo, cfg.AltSearchEndpoint))
	}

	return services
}
