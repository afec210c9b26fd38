package service

import (
	"context"

	"github.com/MKhiriev/go-borrower-search/internal/adapter"
	"github.com/MKhiriev/go-borrower-search/internal/logger"
	"github.com/MKhiriev/go-borrower-search/internal/state"
	"github.com/MKhiriev/go-borrower-search/internal/validators"
	"github.com/MKhiriev/go-borrower-search/models"
)

type clientSearchService struct {
	searchAdapter adapter.SearchAdapter
	store         state.SearchStore
	validator     validators.Validator
	endpoint      string

	logger *logger.Logger
}

// NewClientSearchService builds the controller of a form that queries
// endpoint and publishes into store.
func NewClientSearchService(
	searchAdapter adapter.SearchAdapter,
	store state.SearchStore,
	validator validators.Validator,
	endpoint string,
	logger *logger.Logger,
) ClientSearchService {
	return &clientSearchService{
		searchAdapter: searchAdapter,
		store:         store,
		validator:     validator,
		endpoint:      endpoint,
		logger:        logger,
	}
}

func (s *clientSearchService) Submit(ctx context.Context, input models.SearchInput) SubmitResult {
	s.store.SetSearchParameters(input.Parameters())

	err := s.validator.Validate(ctx, input)
	if err == nil {
		return SubmitResult{Valid: true, Input: input}
	}

	issues := validators.IssuesOf(err)
	if issues == nil {
		// not a field failure; surface it without a field so nothing is styled
		s.logger.Err(err).Msg("search input validation failed unexpectedly")
		issues = validators.Issues{{Message: err.Error()}}
	}

	s.logger.Debug().Strs("fields", issues.Fields()).Msg("search input rejected")
	return SubmitResult{Issues: issues}
}

func (s *clientSearchService) Search(ctx context.Context, input models.SearchInput) Outcome {
	s.store.SetSearching(state.True)

	resp, err := s.searchAdapter.Search(ctx, s.endpoint, input)
	if err != nil {
		message := requestFailureMessage(err)
		s.logger.Err(err).Str("endpoint", s.endpoint).Str("shown", message).Msg("search request failed")

		s.store.SetSearchParameters(models.EmptyParameters())
		s.store.SetSearchStatus(state.Unknown)
		s.store.SetSearching(state.Unknown)
		return Outcome{Kind: OutcomeRequestFailed, Err: err, Message: message}
	}

	var kind OutcomeKind
	switch {
	case resp.NoParams:
		kind = OutcomeNoParams
		s.store.SetSearchParameters([]models.ParameterEntry{rawPayload(resp)})
	case resp.HasMatch():
		kind = OutcomeFound
		s.store.SetResult(resp)
	default:
		kind = OutcomeNotFound
	}
	s.store.SetSearchStatus(state.TriOf(kind == OutcomeFound))
	s.store.SetSearching(state.False)

	s.logger.Info().Str("endpoint", s.endpoint).Stringer("outcome", kind).Msg("search finished")
	return Outcome{Kind: kind, Response: resp}
}

// rawPayload returns the payload as received, rebuilding it from the decoded
// fields when the adapter did not keep it.
func rawPayload(resp models.SearchResponse) models.ParameterEntry {
	if resp.Raw != nil {
		return models.ParameterEntry(resp.Raw)
	}

	entry := models.ParameterEntry{"noParams": resp.NoParams}
	if resp.Message != "" {
		entry["message"] = resp.Message
	}
	return entry
}
