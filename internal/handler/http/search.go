// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-borrower-search/internal/app"
	"github.com/MKhiriev/go-borrower-search/internal/logger"
	"github.com/MKhiriev/go-borrower-search/internal/utils"
	"github.com/MKhiriev/go-borrower-search/models"
)

// search answers POST /api/search-data-pg.
//
// Every answered search is a 200 with one of three bodies (noParams, a
// borrower, or error:true). Non-2xx statuses carry {"message": ...}.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var input models.SearchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		h.writeError(w, r, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	resp, err := h.services.BorrowerSearchService.Search(r.Context(), input)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("borrower search failed")
		h.writeError(w, r, messageFromError(err, status), status)
		return
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing search response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, message string, status int) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Message: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}
