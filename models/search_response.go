// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SearchResponse is the body returned by the borrower search endpoint.
//
// Exactly one of three shapes is expected:
//   - NoParams set when the request carried no search parameters;
//   - a populated PersonalInfo (optionally with LoanInfo) when a borrower matched;
//   - Error set with an empty PersonalInfo when nothing matched.
type SearchResponse struct {
	// NoParams signals that the request did not contain any search parameter.
	NoParams bool `json:"noParams,omitempty"`

	// Error marks a response that did not produce a match.
	Error bool `json:"error,omitempty"`

	// Message is a human-readable explanation accompanying NoParams or Error.
	Message string `json:"message,omitempty"`

	// PersonalInfo describes the matched borrower. Encoded as {} when empty.
	PersonalInfo PersonalInfo `json:"personalInfo"`

	// LoanInfo describes the loan attached to the matched application.
	LoanInfo *LoanInfo `json:"loanInfo,omitempty"`

	// Raw is the decoded response payload as received, kept for display.
	Raw map[string]any `json:"-"`
}

// PersonalInfo is the personal section of a search result.
type PersonalInfo struct {
	ApplicationNo string `json:"application_no,omitempty"`
	AppID         string `json:"app_id,omitempty"`
	NamaNasabah   string `json:"nama_nasabah,omitempty"`
	NoKTP         string `json:"no_ktp,omitempty"`
	BirthDate     string `json:"birth_date,omitempty"`
	Address       string `json:"address,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

// IsEmpty reports whether no personal field is populated.
func (p PersonalInfo) IsEmpty() bool {
	return p == PersonalInfo{}
}

// LoanInfo is the loan section of a search result.
type LoanInfo struct {
	Product string  `json:"product,omitempty"`
	Plafond float64 `json:"plafond,omitempty"`
	Tenor   int     `json:"tenor,omitempty"`
	Status  string  `json:"status,omitempty"`
}

// HasMatch reports whether r describes a found borrower: no error flag and a
// non-empty personal section. For a decoded payload the raw personalInfo
// object decides, so a key without a typed field still counts.
func (r SearchResponse) HasMatch() bool {
	if r.Error {
		return false
	}
	if r.Raw != nil {
		section, _ := r.Raw["personalInfo"].(map[string]any)
		return len(section) != 0
	}
	return !r.PersonalInfo.IsEmpty()
}

// ErrorResponse is the body the backend sends with non-2xx statuses.
type ErrorResponse struct {
	Message string `json:"message"`
}
