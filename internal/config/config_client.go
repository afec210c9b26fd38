package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	Version string
}

// ClientAdapter holds the network settings of the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the search backend.
	HTTPAddress string
	// RequestTimeout bounds outbound requests; zero disables it.
	RequestTimeout time.Duration
	// SearchEndpoint is the path of the primary form's search request.
	SearchEndpoint string
	// AltSearchEndpoint is the path of the alternate form variant.
	AltSearchEndpoint string
}

// ClientConfig is the client's view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	LogFile string
}

// GetClientConfig loads the merged configuration, maps the fields the client
// needs and validates them. Server-only settings such as the DSN are not
// required here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{Version: cfg.App.Version},
		Adapter: ClientAdapter{
			HTTPAddress:       cfg.Adapter.HTTPAddress,
			RequestTimeout:    cfg.Adapter.RequestTimeout,
			SearchEndpoint:    cfg.Adapter.SearchEndpoint,
			AltSearchEndpoint: cfg.Adapter.AltSearchEndpoint,
		},
		LogFile: cfg.Client.LogFile,
	}
}
