package store

import "github.com/MKhiriev/go-borrower-search/internal/logger"

// Storages groups the repositories used by the service layer.
type Storages struct {
	BorrowerRepository BorrowerRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		BorrowerRepository: NewBorrowerRepository(db, logger),
	}
}
