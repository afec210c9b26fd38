package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-borrower-search/internal/app"
	"github.com/MKhiriev/go-borrower-search/internal/logger"
	"github.com/MKhiriev/go-borrower-search/internal/store"
	"github.com/MKhiriev/go-borrower-search/models"
)

type borrowerSearchService struct {
	borrowerRepository store.BorrowerRepository

	logger *logger.Logger
}

func NewBorrowerSearchService(borrowerRepository store.BorrowerRepository, logger *logger.Logger) BorrowerSearchService {
	return &borrowerSearchService{
		borrowerRepository: borrowerRepository,
		logger:             logger,
	}
}

func (s *borrowerSearchService) Search(ctx context.Context, input models.SearchInput) (models.SearchResponse, error) {
	log := logger.FromContext(ctx)

	if input.IsEmpty() {
		log.Debug().Msg("search without parameters")
		return models.SearchResponse{NoParams: true, Message: app.MsgNoSearchParameters}, nil
	}

	borrower, err := s.borrowerRepository.FindBorrower(ctx, input)
	switch {
	case errors.Is(err, store.ErrBorrowerNotFound):
		return models.SearchResponse{Error: true, Message: app.MsgBorrowerNotFound}, nil
	case err != nil:
		return models.SearchResponse{}, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}

	log.Debug().Str("application_no", borrower.ApplicationNo).Msg("borrower found")
	return borrower.ToSearchResponse(), nil
}
