package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-borrower-search/internal/client"
	"github.com/MKhiriev/go-borrower-search/internal/config"
	"github.com/MKhiriev/go-borrower-search/internal/logger"
	"github.com/MKhiriev/go-borrower-search/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("borrower-search-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("borrower-search-client", cfg.LogFile)

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
