// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-borrower-search/internal/config"
	"github.com/MKhiriev/go-borrower-search/internal/logger"
	"github.com/MKhiriev/go-borrower-search/internal/utils"
	"github.com/MKhiriev/go-borrower-search/models"
)

type httpSearchAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPSearchAdapter constructs the resty implementation of [SearchAdapter].
// The base URL comes from cfg.HTTPAddress; a missing scheme defaults to http.
// A zero cfg.RequestTimeout leaves requests bounded only by their context.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a URL.
func NewHTTPSearchAdapter(cfg config.ClientAdapter, log *logger.Logger) (SearchAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &httpSearchAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Search implements [SearchAdapter].
func (h *httpSearchAdapter) Search(ctx context.Context, endpoint string, input models.SearchInput) (models.SearchResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Post(endpoint)
	if err != nil {
		h.logger.Err(err).Str("endpoint", endpoint).Msg("search request failed")
		return models.SearchResponse{}, &RequestError{Kind: ErrTransport, Cause: err}
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("search request rejected")
		return models.SearchResponse{}, err
	}

	result, err := decodeSearchResponse(resp.Body())
	if err != nil {
		h.logger.Err(err).Str("endpoint", endpoint).Msg("search response cannot be decoded")
		return models.SearchResponse{}, &RequestError{
			Kind:       ErrMalformedResponse,
			Cause:      err,
			StatusCode: resp.StatusCode(),
			Body:       resp.Body(),
		}
	}

	h.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode()).
		Bool("match", result.HasMatch()).
		Bool("no_params", result.NoParams).
		Msg("search request completed")

	return result, nil
}

// decodeSearchResponse decodes body into a SearchResponse and keeps the raw
// payload. The body must be a JSON object; the display fields are read
// leniently from it, so a value of an unexpected type never fails the decode.
func decodeSearchResponse(body []byte) (models.SearchResponse, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return models.SearchResponse{}, fmt.Errorf("empty body")
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.SearchResponse{}, fmt.Errorf("decode search payload: %w", err)
	}
	if raw == nil {
		return models.SearchResponse{}, fmt.Errorf("search payload is null")
	}

	return searchResponseFromPayload(raw), nil
}
