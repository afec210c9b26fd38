// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the terminal client to reach
// the borrower search backend.
//
// The abstraction is [SearchAdapter], which decouples the search form
// controller from HTTP. The package ships a resty-based implementation
// ([NewHTTPSearchAdapter]).
//
// Every failure is returned as a [*RequestError]. Non-2xx statuses are mapped
// by mapHTTPError to the sentinel values in errors.go, so callers can use
// [errors.Is] (e.g. [ErrBadRequest] for 400, [ErrTransport] when no response
// arrived) and [errors.As] to read the server's message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-borrower-search/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/search_adapter_mock.go -package=mock

// SearchAdapter sends borrower search requests to the backend.
type SearchAdapter interface {
	// Search POSTs input as JSON to endpoint (a path relative to the configured
	// base URL) and decodes the 2xx response body. The decoded payload is also
	// kept in [models.SearchResponse.Raw].
	//
	// Any failure, including transport errors, non-2xx statuses and
	// undecodable bodies, is returned as a [*RequestError].
	Search(ctx context.Context, endpoint string, input models.SearchInput) (models.SearchResponse, error)
}
