// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages shared by the borrower
// search server and the terminal client.
//
// Server-side Msg* constants are written into JSON response bodies under the
// "message" key. Client-side constants are shown in the form when a request
// fails without a message from the server.
package app

// Messages sent by the search backend.
const (
	// MsgInvalidJSON is returned when the request body is not a valid JSON
	// search input.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgNoSearchParameters accompanies a noParams response: the request
	// carried no search field at all.
	MsgNoSearchParameters = "No search parameters were given. Fill in at least one field."

	// MsgBorrowerNotFound accompanies an error response when no borrower
	// matches the search parameters.
	MsgBorrowerNotFound = "Borrower data was not found"

	// MsgInternalServerError is returned when the search fails for a reason
	// the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgStorageUnavailable is returned when the borrower database is
	// temporarily unreachable.
	MsgStorageUnavailable = "Borrower database is temporarily unavailable, please try again"
)

// Messages produced by the client when the server did not supply one.
const (
	// MsgServerUnavailable is shown when no response was received.
	MsgServerUnavailable = "Search server is unavailable. Check the network connection."

	// MsgRequestTimedOut is shown when the request deadline expired.
	MsgRequestTimedOut = "Search request timed out"

	// MsgUnexpectedResponse is shown when a 2xx response could not be decoded.
	MsgUnexpectedResponse = "Search server sent an unexpected response"

	// MsgSearchFailed prefixes the HTTP status text of a rejected request.
	MsgSearchFailed = "Search failed"
)
