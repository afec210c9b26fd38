// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/MKhiriev/go-borrower-search/internal/adapter"
	"github.com/MKhiriev/go-borrower-search/internal/app"
)

// requestFailureMessage picks the text shown for a failed search: the
// server's own message when the error body carried one, otherwise a
// description derived from the kind of failure.
func requestFailureMessage(err error) string {
	var reqErr *adapter.RequestError
	if errors.As(err, &reqErr) && strings.TrimSpace(reqErr.Message) != "" {
		return reqErr.Message
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded) || isTimeout(err):
		return app.MsgRequestTimedOut
	case errors.Is(err, adapter.ErrTransport):
		return app.MsgServerUnavailable
	case errors.Is(err, adapter.ErrMalformedResponse):
		return app.MsgUnexpectedResponse
	case reqErr != nil && reqErr.Status() != "":
		return app.MsgSearchFailed + ": " + reqErr.Status()
	case err != nil:
		return app.MsgSearchFailed + ": " + err.Error()
	}

	return app.MsgSearchFailed
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
