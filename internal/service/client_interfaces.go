package service

import (
	"context"

	"github.com/MKhiriev/go-borrower-search/models"
)

// ClientSearchService is the controller behind one search form. It owns no
// view state; everything observable goes through its [state.SearchStore].
type ClientSearchService interface {
	// Submit runs the synchronous part of a form submission: it publishes the
	// non-empty fields of input as the current search parameters, valid or
	// not, then validates input. The network is never touched.
	Submit(ctx context.Context, input models.SearchInput) SubmitResult

	// Search sends input to the backend and reconciles the shared state from
	// the answer. It blocks until the request completes or ctx is done and
	// should run off the UI loop.
	Search(ctx context.Context, input models.SearchInput) Outcome
}
