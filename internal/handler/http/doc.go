// Package http implements the HTTP transport of the borrower search server.
//
// It exposes route wiring, the search and version handlers, and the
// middleware chain: panic recovery, request tracing, access logging, response
// compression and an optional per-request timeout. Requests are decoded here
// and delegated to the service layer; service errors are mapped to status
// codes through a single error table.
package http
