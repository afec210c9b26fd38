// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-borrower-search/internal/config"
	"github.com/MKhiriev/go-borrower-search/internal/logger"
	"github.com/MKhiriev/go-borrower-search/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEndpoint = "/api/search-data-pg"

// newTestAdapter builds an httpSearchAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) SearchAdapter {
	t.Helper()
	a, err := NewHTTPSearchAdapter(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPSearchAdapter_InvalidAddress(t *testing.T) {
	for _, addr := range []string{"", "   ", "http://"} {
		_, err := NewHTTPSearchAdapter(config.ClientAdapter{HTTPAddress: addr}, logger.Nop())
		assert.Error(t, err, "address %q", addr)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{raw: " https://search.internal ", want: "https://search.internal"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Search ──────────────────────────────────────────────────────────────────

func TestSearch_Found(t *testing.T) {
	input := models.SearchInput{ApplicationNo: "1234567", NamaNasabah: "Budi"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, testEndpoint, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, map[string]string{"application_no": "1234567", "nama_nasabah": "Budi"}, got)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"personalInfo": {"application_no": "1234567", "nama_nasabah": "Budi Santoso"},
			"loanInfo": {"product": "KTA", "plafond": 15000000, "tenor": 12, "status": "ACTIVE"}
		}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Search(context.Background(), testEndpoint, input)

	require.NoError(t, err)
	assert.True(t, got.HasMatch())
	assert.Equal(t, "Budi Santoso", got.PersonalInfo.NamaNasabah)
	require.NotNil(t, got.LoanInfo)
	assert.Equal(t, 12, got.LoanInfo.Tenor)
	assert.Contains(t, got.Raw, "personalInfo")
}

func TestSearch_NoParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"noParams": true, "message": "No search parameters were given"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Search(context.Background(), testEndpoint, models.SearchInput{})

	require.NoError(t, err)
	assert.True(t, got.NoParams)
	assert.False(t, got.HasMatch())
	assert.Equal(t, map[string]any{"noParams": true, "message": "No search parameters were given"}, got.Raw)
}

func TestSearch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"personalInfo": {}, "error": true, "message": "Borrower not found"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Search(context.Background(), testEndpoint, models.SearchInput{AppID: "42"})

	require.NoError(t, err)
	assert.True(t, got.Error)
	assert.False(t, got.HasMatch())
	assert.Equal(t, "Borrower not found", got.Message)
}

func TestSearch_FoundDecidedByPersonalSection(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantMatch bool
		check     func(t *testing.T, got models.SearchResponse)
	}{
		{
			name:      "unknown personal key",
			body:      `{"personalInfo":{"full_name":"Budi"}}`,
			wantMatch: true,
		},
		{
			name:      "known key with blank value",
			body:      `{"personalInfo":{"application_no":""}}`,
			wantMatch: true,
		},
		{
			name:      "numeric ids",
			body:      `{"personalInfo":{"app_id":100001,"application_no":2024010100001,"nama_nasabah":"Budi"},"loanInfo":{"plafond":"15000000","tenor":12.0}}`,
			wantMatch: true,
			check: func(t *testing.T, got models.SearchResponse) {
				assert.Equal(t, "100001", got.PersonalInfo.AppID)
				assert.Equal(t, "2024010100001", got.PersonalInfo.ApplicationNo)
				assert.Equal(t, "Budi", got.PersonalInfo.NamaNasabah)
				require.NotNil(t, got.LoanInfo)
				assert.Equal(t, float64(15000000), got.LoanInfo.Plafond)
				assert.Equal(t, 12, got.LoanInfo.Tenor)
			},
		},
		{
			name:      "personal section of wrong type",
			body:      `{"personalInfo":"Budi","error":1}`,
			wantMatch: false,
			check: func(t *testing.T, got models.SearchResponse) {
				assert.True(t, got.Error)
			},
		},
		{
			name:      "empty personal section",
			body:      `{"personalInfo":{}}`,
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := newTestAdapter(t, srv.URL).Search(context.Background(), testEndpoint, models.SearchInput{AppID: "1"})

			require.NoError(t, err)
			assert.Equal(t, tt.wantMatch, got.HasMatch())
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestSearch_StatusErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    error
		wantMessage string
	}{
		{name: "bad request with message", status: http.StatusBadRequest, body: `{"message":"No. KTP must be exactly 16 digits"}`, wantKind: ErrBadRequest, wantMessage: "No. KTP must be exactly 16 digits"},
		{name: "not found plain text", status: http.StatusNotFound, body: "404 page not found", wantKind: ErrNotFound},
		{name: "internal server error", status: http.StatusInternalServerError, body: `{"message":"search failed"}`, wantKind: ErrInternalServerError, wantMessage: "search failed"},
		{name: "bad gateway", status: http.StatusBadGateway, wantKind: ErrBadGateway},
		{name: "unmapped status", status: http.StatusTeapot, body: `{}`, wantKind: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Search(context.Background(), testEndpoint, models.SearchInput{AppID: "1"})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantKind)

			var reqErr *RequestError
			require.True(t, errors.As(err, &reqErr))
			assert.Equal(t, tt.status, reqErr.StatusCode)
			assert.Equal(t, tt.wantMessage, reqErr.Message)
			assert.Equal(t, tt.body, string(reqErr.Body))
		})
	}
}

func TestSearch_MalformedResponse(t *testing.T) {
	for name, body := range map[string]string{
		"empty":     "",
		"not json":  "<html>ok</html>",
		"null":      "null",
		"json list": `[{"personalInfo": {}}]`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Search(context.Background(), testEndpoint, models.SearchInput{AppID: "1"})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestSearch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Search(context.Background(), testEndpoint, models.SearchInput{AppID: "1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Zero(t, reqErr.StatusCode)
	assert.Empty(t, reqErr.Status())
}

func TestSearch_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	a, err := NewHTTPSearchAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 50 * time.Millisecond,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = a.Search(context.Background(), testEndpoint, models.SearchInput{AppID: "1"})

	assert.ErrorIs(t, err, ErrTransport)
}

func TestSearch_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).Search(ctx, testEndpoint, models.SearchInput{AppID: "1"})

	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── RequestError ────────────────────────────────────────────────────────────

func TestRequestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *RequestError
		want string
	}{
		{name: "message wins", err: &RequestError{Kind: ErrBadRequest, StatusCode: 400, Message: "bad KTP"}, want: "bad request (http 400): bad KTP"},
		{name: "cause", err: &RequestError{Kind: ErrTransport, Cause: errors.New("connection refused")}, want: "transport failure: connection refused"},
		{name: "bare", err: &RequestError{Kind: ErrNotFound, StatusCode: 404}, want: "not found (http 404)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
