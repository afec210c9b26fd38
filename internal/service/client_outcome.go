// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-borrower-search/internal/validators"
	"github.com/MKhiriev/go-borrower-search/models"
)

// OutcomeKind tags the result of a form submission.
type OutcomeKind int

const (
	// OutcomeFound: the backend returned a borrower.
	OutcomeFound OutcomeKind = iota + 1
	// OutcomeNotFound: the backend answered but nothing matched.
	OutcomeNotFound
	// OutcomeNoParams: the backend reported that no parameter was supplied.
	OutcomeNoParams
	// OutcomeValidationFailed: the input was rejected locally.
	OutcomeValidationFailed
	// OutcomeRequestFailed: no usable answer was received.
	OutcomeRequestFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeNoParams:
		return "no_params"
	case OutcomeValidationFailed:
		return "validation_failed"
	case OutcomeRequestFailed:
		return "request_failed"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of a submission. Which fields are set depends
// on Kind:
//   - Found, NotFound, NoParams: Response;
//   - ValidationFailed: Issues;
//   - RequestFailed: Err and Message.
type Outcome struct {
	Kind     OutcomeKind
	Response models.SearchResponse
	Issues   validators.Issues
	Err      error
	// Message is the text to show for a failed request.
	Message string
}

// SubmitResult is the synchronous part of a submission.
type SubmitResult struct {
	Valid  bool
	Input  models.SearchInput
	Issues validators.Issues
}

// Outcome converts a rejected submission into an OutcomeValidationFailed.
// It must not be called when r.Valid is true.
func (r SubmitResult) Outcome() Outcome {
	return Outcome{Kind: OutcomeValidationFailed, Issues: r.Issues}
}
