package http

import (
	"context"

	"github.com/MKhiriev/go-borrower-search/internal/config"
	"github.com/MKhiriev/go-borrower-search/internal/logger"
	"github.com/MKhiriev/go-borrower-search/internal/service"
	"github.com/MKhiriev/go-borrower-search/models"
)

type fakeSearchService struct {
	searchFn func(ctx context.Context, input models.SearchInput) (models.SearchResponse, error)
	calls    []models.SearchInput
}

func (f *fakeSearchService) Search(ctx context.Context, input models.SearchInput) (models.SearchResponse, error) {
	f.calls = append(f.calls, input)
	if f.searchFn == nil {
		return models.SearchResponse{}, nil
	}
	return f.searchFn(ctx, input)
}

type fakeAppInfoService struct {
	version string
}

func (f fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

type fixedTraceID string

func (f fixedTraceID) Generate() string {
	return string(f)
}

func newTestHandler(search service.BorrowerSearchService) *Handler {
	if search == nil {
		search = &fakeSearchService{}
	}
	return &Handler{
		services: &service.Services{
			BorrowerSearchService: search,
			AppInfoService:        fakeAppInfoService{version: "1.2.3"},
		},
		cfg:      config.Server{},
		traceIDs: fixedTraceID("trace-1"),
		logger:   logger.Nop(),
	}
}
