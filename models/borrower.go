package models

import "time"

// Borrower is a persisted borrower record together with its loan data.
type Borrower struct {
	ApplicationNo string
	AppID         string
	NamaNasabah   string
	NoKTP         string
	BirthDate     string
	Address       string
	Phone         string

	Product string
	Plafond float64
	Tenor   int
	Status  string

	CreatedAt time.Time
}

// ToSearchResponse converts b into a successful search response.
func (b Borrower) ToSearchResponse() SearchResponse {
	return SearchResponse{
		PersonalInfo: PersonalInfo{
			ApplicationNo: b.ApplicationNo,
			AppID:         b.AppID,
			NamaNasabah:   b.NamaNasabah,
			NoKTP:         b.NoKTP,
			BirthDate:     b.BirthDate,
			Address:       b.Address,
			Phone:         b.Phone,
		},
		LoanInfo: &LoanInfo{
			Product: b.Product,
			Plafond: b.Plafond,
			Tenor:   b.Tenor,
			Status:  b.Status,
		},
	}
}
