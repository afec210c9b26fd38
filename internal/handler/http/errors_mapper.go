package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-borrower-search/internal/app"
	"github.com/MKhiriev/go-borrower-search/internal/service"
	"github.com/MKhiriev/go-borrower-search/internal/store"
	"github.com/MKhiriev/go-borrower-search/internal/validators"
)

type errorStatus struct {
	target error
	status int
}

// errorStatusTable is checked in order; the first matching target wins, so
// specific errors come before the ones that wrap them.
var errorStatusTable = []errorStatus{
	{target: validators.ErrInvalidSearchInput, status: http.StatusBadRequest},
	{target: store.ErrNoSearchCriteria, status: http.StatusBadRequest},
	{target: store.ErrStorageUnavailable, status: http.StatusServiceUnavailable},
	{target: store.ErrBuildingSQLQuery, status: http.StatusInternalServerError},
	{target: store.ErrExecutingQuery, status: http.StatusInternalServerError},
	{target: service.ErrSearchFailed, status: http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.target) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text put into the "message" field of an error
// response. Validation failures list every field message; storage internals
// are never exposed.
func messageFromError(err error, status int) string {
	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}

	switch status {
	case http.StatusBadRequest:
		return app.MsgNoSearchParameters
	case http.StatusServiceUnavailable:
		return app.MsgStorageUnavailable
	default:
		return app.MsgInternalServerError
	}
}
