package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Route paths served by the search backend.
const (
	SearchPGPath    = "/api/search-data-pg"
	SearchMongoPath = "/api/search-data-mongo"
	VersionPath     = "/api/version/"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Post(SearchPGPath, h.search)
	// the alternate form variant is answered from the same borrower storage
	router.Post(SearchMongoPath, h.search)
	router.Get(VersionPath, h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
