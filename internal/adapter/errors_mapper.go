package adapter

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-borrower-search/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusNotFound:            ErrNotFound,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx responses and a *RequestError otherwise.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	kind, ok := statusErrors[code]
	if !ok {
		kind = ErrUnexpectedStatus
	}

	body := resp.Body()
	return &RequestError{
		Kind:       kind,
		StatusCode: code,
		Message:    errorMessage(body),
		Body:       body,
	}
}

// errorMessage extracts the "message" field of a JSON error body.
func errorMessage(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	return errResp.Message
}
