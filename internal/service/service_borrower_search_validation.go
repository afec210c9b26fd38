package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-borrower-search/internal/validators"
	"github.com/MKhiriev/go-borrower-search/models"
)

// BorrowerSearchValidationService rejects malformed search input before it
// reaches the wrapped service.
type BorrowerSearchValidationService struct {
	inner     BorrowerSearchService
	validator validators.Validator
}

func NewBorrowerSearchValidationService(validator validators.Validator) BorrowerSearchServiceWrapper {
	return &BorrowerSearchValidationService{validator: validator}
}

// Search returns a wrapped *validators.ValidationError when input breaks a
// field rule.
func (v *BorrowerSearchValidationService) Search(ctx context.Context, input models.SearchInput) (models.SearchResponse, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.SearchResponse{}, fmt.Errorf("error during search input validation: %w", err)
	}

	return v.inner.Search(ctx, input)
}

func (v *BorrowerSearchValidationService) Wrap(wrapped BorrowerSearchService) BorrowerSearchService {
	v.inner = wrapped
	return v
}
