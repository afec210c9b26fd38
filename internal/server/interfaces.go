package server

// Server defines the lifecycle contract of the search server.
//
// [RunServer] blocks until shutdown is requested; [Shutdown] releases
// resources.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
