// Package server runs the borrower search HTTP server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown.
package server
