package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBorrowerNotFound is returned when no borrower matches the supplied
	// search criteria.
	ErrBorrowerNotFound = errors.New("borrower was not found")

	// ErrNoSearchCriteria is returned when a search is attempted without a
	// single criterion. An unbounded scan of the borrowers table is refused.
	ErrNoSearchCriteria = errors.New("no search criteria provided")

	// ErrStorageUnavailable wraps driver errors classified as [Retryable]:
	// lost connections, deadlocks, a database that is starting up.
	ErrStorageUnavailable = errors.New("borrower storage is temporarily unavailable")

	// ErrUnsupportedDriver is returned by [NewConnect] for a driver name other
	// than pgx or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
