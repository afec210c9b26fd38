package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-borrower-search/models"
	sq "github.com/Masterminds/squirrel"
)

const borrowersTable = "borrowers"

var borrowerColumns = []string{
	"application_no",
	"app_id",
	"nama_nasabah",
	"no_ktp",
	"birth_date",
	"address",
	"phone",
	"product",
	"plafond",
	"tenor",
	"status",
	"created_at",
}

// buildFindBorrowerQuery builds a SELECT for the newest borrower matching every
// non-empty field of input. Ids and KTP are compared for equality, the name as
// a case-insensitive substring.
func buildFindBorrowerQuery(input models.SearchInput, placeholder sq.PlaceholderFormat) (string, []any, error) {
	where := sq.And{}
	if input.ApplicationNo != "" {
		where = append(where, sq.Eq{"application_no": input.ApplicationNo})
	}
	if input.AppID != "" {
		where = append(where, sq.Eq{"app_id": input.AppID})
	}
	// a blank name would match every row
	if name := strings.TrimSpace(input.NamaNasabah); name != "" {
		where = append(where, sq.Like{"LOWER(nama_nasabah)": "%" + strings.ToLower(name) + "%"})
	}
	if input.NoKTP != "" {
		where = append(where, sq.Eq{"no_ktp": input.NoKTP})
	}

	if len(where) == 0 {
		return "", nil, ErrNoSearchCriteria
	}

	query, args, err := sq.Select(borrowerColumns...).
		From(borrowersTable).
		Where(where).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(placeholder).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
