package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-borrower-search/internal/app"
	"github.com/MKhiriev/go-borrower-search/internal/logger"
	"github.com/MKhiriev/go-borrower-search/internal/mock"
	"github.com/MKhiriev/go-borrower-search/internal/store"
	"github.com/MKhiriev/go-borrower-search/internal/validators"
	"github.com/MKhiriev/go-borrower-search/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestBorrowerSearchSvc(t *testing.T) (BorrowerSearchService, *mock.MockBorrowerRepository) {
	t.Helper()
	repo := mock.NewMockBorrowerRepository(gomock.NewController(t))

	svc := NewBorrowerSearchValidationService(validators.NewSearchInputValidator()).
		Wrap(NewBorrowerSearchService(repo, logger.Nop()))
	return svc, repo
}

func TestBorrowerSearchService_Found(t *testing.T) {
	svc, repo := newTestBorrowerSearchSvc(t)
	ctx := context.Background()
	input := models.SearchInput{NamaNasabah: "Siti"}
	borrower := models.Borrower{
		ApplicationNo: "2024020500002",
		AppID:         "100002",
		NamaNasabah:   "Siti Rahmawati",
		NoKTP:         "3273024506900002",
		Product:       "MULTIGUNA",
		Plafond:       50000000,
		Tenor:         36,
		Status:        "ACTIVE",
	}

	repo.EXPECT().FindBorrower(ctx, input).Return(borrower, nil)

	resp, err := svc.Search(ctx, input)

	require.NoError(t, err)
	assert.True(t, resp.HasMatch())
	assert.False(t, resp.NoParams)
	assert.Equal(t, "Siti Rahmawati", resp.PersonalInfo.NamaNasabah)
	require.NotNil(t, resp.LoanInfo)
	assert.Equal(t, 36, resp.LoanInfo.Tenor)
}

func TestBorrowerSearchService_NoParams(t *testing.T) {
	// no repository expectation: an empty input must not reach storage
	svc, _ := newTestBorrowerSearchSvc(t)

	resp, err := svc.Search(context.Background(), models.SearchInput{})

	require.NoError(t, err)
	assert.True(t, resp.NoParams)
	assert.Equal(t, app.MsgNoSearchParameters, resp.Message)
}

func TestBorrowerSearchService_BlankNameRejected(t *testing.T) {
	// no repository expectation: a blank name must not reach storage
	svc, _ := newTestBorrowerSearchSvc(t)

	resp, err := svc.Search(context.Background(), models.SearchInput{NamaNasabah: "   "})

	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrInvalidSearchInput)
	assert.True(t, validators.IssuesOf(err).Has(models.FieldNamaNasabah))
	assert.False(t, resp.HasMatch())
}

func TestBorrowerSearchService_NotFound(t *testing.T) {
	svc, repo := newTestBorrowerSearchSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindBorrower(ctx, gomock.Any()).Return(models.Borrower{}, store.ErrBorrowerNotFound)

	resp, err := svc.Search(ctx, models.SearchInput{AppID: "999"})

	require.NoError(t, err)
	assert.True(t, resp.Error)
	assert.True(t, resp.PersonalInfo.IsEmpty())
	assert.Nil(t, resp.LoanInfo)
	assert.Equal(t, app.MsgBorrowerNotFound, resp.Message)
}

func TestBorrowerSearchService_StorageFailure(t *testing.T) {
	svc, repo := newTestBorrowerSearchSvc(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	repo.EXPECT().FindBorrower(ctx, gomock.Any()).Return(models.Borrower{}, dbErr)

	_, err := svc.Search(ctx, models.SearchInput{AppID: "1"})

	assert.ErrorIs(t, err, ErrSearchFailed)
	assert.ErrorIs(t, err, dbErr)
}

func TestBorrowerSearchService_InvalidInput(t *testing.T) {
	svc, _ := newTestBorrowerSearchSvc(t)

	_, err := svc.Search(context.Background(), models.SearchInput{ApplicationNo: "ORD-1", NoKTP: "1"})

	require.ErrorIs(t, err, validators.ErrInvalidSearchInput)
	issues := validators.IssuesOf(err)
	assert.Equal(t, []string{models.FieldApplicationNo, models.FieldNoKTP}, issues.Fields())
}
