package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-borrower-search/internal/logger"
	"github.com/MKhiriev/go-borrower-search/models"
)

// borrowerRepository is the database/sql implementation of
// [BorrowerRepository] over the "borrowers" table.
type borrowerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBorrowerRepository constructs a [BorrowerRepository] on top of db.
func NewBorrowerRepository(db *DB, logger *logger.Logger) BorrowerRepository {
	logger.Debug().Msg("creating borrower repository")
	return &borrowerRepository{
		db:     db,
		logger: logger,
	}
}

// FindBorrower implements [BorrowerRepository].
//
// Error handling:
//   - no rows → [ErrBorrowerNotFound];
//   - a driver error classified as [Retryable] → [ErrStorageUnavailable];
//   - any other driver error → [ErrExecutingQuery].
func (r *borrowerRepository) FindBorrower(ctx context.Context, input models.SearchInput) (models.Borrower, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindBorrowerQuery(input, r.db.placeholder)
	if err != nil {
		log.Err(err).Msg("error building borrower search query")
		return models.Borrower{}, err
	}

	var b models.Borrower
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&b.ApplicationNo,
		&b.AppID,
		&b.NamaNasabah,
		&b.NoKTP,
		&b.BirthDate,
		&b.Address,
		&b.Phone,
		&b.Product,
		&b.Plafond,
		&b.Tenor,
		&b.Status,
		&b.CreatedAt,
	)

	switch {
	case err == nil:
		return b, nil
	case errors.Is(err, sql.ErrNoRows):
		log.Debug().Msg("no borrower matches search criteria")
		return models.Borrower{}, ErrBorrowerNotFound
	}

	class := r.db.classify(err)
	log.Err(err).Stringer("classification", class).Msg("error searching borrower")
	if class == Retryable {
		return models.Borrower{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return models.Borrower{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
