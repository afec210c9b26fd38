// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidGzipBody is reported when a request declares gzip content
// encoding but its body is not a valid gzip stream.
var ErrInvalidGzipBody = errors.New("invalid gzip data")
