package main

import (
	"fmt"

	"github.com/rudism/pushover-to-gotify/internal/bridge"
	"github.com/rudism/pushover-to-gotify/internal/config"
	"github.com/rudism/pushover-to-gotify/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pushover-to-gotify")
	cfg, err := config.GetBridgeConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app, err := bridge.NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init bridge app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("bridge run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
