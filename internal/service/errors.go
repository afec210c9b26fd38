package service

import "errors"

var (
	// ErrVersionIsNotSpecified is returned by NewAppInfoService when the
	// application version is empty.
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrSearchFailed wraps storage failures surfaced by the borrower search.
	ErrSearchFailed = errors.New("borrower search failed")
)
