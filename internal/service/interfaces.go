package service

import (
	"context"

	"github.com/MKhiriev/go-borrower-search/models"
)

// BorrowerSearchService answers borrower search requests on the server.
type BorrowerSearchService interface {
	// Search returns one of three response shapes: NoParams for an empty
	// input, a populated PersonalInfo for a match, or Error with an empty
	// PersonalInfo when nothing matches. A returned error means the search
	// itself could not be carried out.
	Search(ctx context.Context, input models.SearchInput) (models.SearchResponse, error)
}

// AppInfoService exposes application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// BorrowerSearchServiceWrapper defines middleware composition for
// BorrowerSearchService. Implementations wrap an existing service to add
// behavior such as validation.
type BorrowerSearchServiceWrapper interface {
	Wrap(BorrowerSearchService) BorrowerSearchService
}
