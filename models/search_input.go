// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Search field names as they travel on the wire and appear in parameter lists.
const (
	FieldApplicationNo = "application_no"
	FieldAppID         = "app_id"
	FieldNamaNasabah   = "nama_nasabah"
	FieldNoKTP         = "no_ktp"
)

// SearchFields lists the search fields in form order. Parameter lists and
// validation issues follow this order.
var SearchFields = []string{FieldApplicationNo, FieldAppID, FieldNamaNasabah, FieldNoKTP}

// SearchInput carries the borrower search criteria typed into the form.
// Every field is optional; an empty string means "not supplied".
type SearchInput struct {
	// ApplicationNo is the application number, also known as Order ID.
	ApplicationNo string `json:"application_no,omitempty" validate:"omitempty,digits,max=20"`

	// AppID is the internal application identifier.
	AppID string `json:"app_id,omitempty" validate:"omitempty,digits,max=20"`

	// NamaNasabah is the debtor (customer) name.
	NamaNasabah string `json:"nama_nasabah,omitempty" validate:"omitempty,namelen,max=100,debtorname"`

	// NoKTP is the 16-digit Indonesian national identity number.
	NoKTP string `json:"no_ktp,omitempty" validate:"omitempty,digits,len=16"`
}

// Value returns the value of the named search field, or an empty string for
// unknown names.
func (s SearchInput) Value(field string) string {
	switch field {
	case FieldApplicationNo:
		return s.ApplicationNo
	case FieldAppID:
		return s.AppID
	case FieldNamaNasabah:
		return s.NamaNasabah
	case FieldNoKTP:
		return s.NoKTP
	default:
		return ""
	}
}

// IsEmpty reports whether no search field was supplied.
func (s SearchInput) IsEmpty() bool {
	for _, field := range SearchFields {
		if s.Value(field) != "" {
			return false
		}
	}
	return true
}

// Parameters builds the sparse parameter list for s: one single-key entry per
// non-empty field, in form order. The result is never nil.
func (s SearchInput) Parameters() []ParameterEntry {
	params := make([]ParameterEntry, 0, len(SearchFields))
	for _, field := range SearchFields {
		if v := s.Value(field); v != "" {
			params = append(params, ParameterEntry{field: v})
		}
	}
	return params
}
