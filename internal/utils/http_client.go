package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every request made through an HTTPClient.
const UserAgent = "borrower-search-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent resty client that asks for JSON and
// identifies itself with [UserAgent].
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetBody(input).Post("/api/search-data-pg")
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)

	return &HTTPClient{Client: client}
}
