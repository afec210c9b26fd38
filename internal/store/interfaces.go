// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements borrower persistence for the search backend.
//
// A single [DB] wraps database/sql with either the pgx (PostgreSQL) or the
// go-sqlite3 driver. Queries are built with squirrel so the same code emits
// $N placeholders for PostgreSQL and ? placeholders for SQLite. Driver errors
// are classified per dialect into [Retryable] and [NonRetryable].
package store

import (
	"context"

	"github.com/MKhiriev/go-borrower-search/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/borrower_repository_mock.go -package=mock -exclude_interfaces=ErrorClassificator

// BorrowerRepository looks up borrowers by search criteria.
type BorrowerRepository interface {
	// FindBorrower returns the most recently created borrower matching every
	// non-empty field of input. Application number, app id and KTP match
	// exactly; the debtor name matches as a case-insensitive substring.
	//
	// Returns [ErrNoSearchCriteria] for an empty input and
	// [ErrBorrowerNotFound] when nothing matches.
	FindBorrower(ctx context.Context, input models.SearchInput) (models.Borrower, error)
}

// ErrorClassificator decides whether a failed database operation may succeed
// when attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
