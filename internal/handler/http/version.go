package http

import (
	"net/http"

	"github.com/MKhiriev/go-borrower-search/internal/logger"
)

// getServerVersion answers GET /api/version/ with the plain-text version.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte(serverVersion)); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version")
	}
}
