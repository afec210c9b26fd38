package tui

import "github.com/MKhiriev/go-borrower-search/internal/service"

// searchDoneMsg reports a finished search request of one variant.
type searchDoneMsg struct {
	variant string
	outcome service.Outcome
}

// SwitchVariant asks RootModel to show another search form. An empty Target
// selects the variant after From.
type SwitchVariant struct {
	From   string
	Target string
}

// copiedMsg reports the result of copying the search result.
type copiedMsg struct {
	err error
}
