package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/busnetwork/pkg/api"
	"github.com/travigo/busnetwork/pkg/dataimporter"
	"github.com/travigo/busnetwork/pkg/indexer"
	"github.com/travigo/busnetwork/pkg/journeygraph"
	"github.com/urfave/cli/v2"
)

func main() {
	if os.Getenv("BUSNETWORK_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("BUSNETWORK_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "busnetwork",
		Description: "Builds a bus network from GTFS and answers stop, journey and timetable queries",

		Commands: []*cli.Command{
			networkCommand(),
			dataimporter.RegisterCLI(),
			api.RegisterCLI(),
			indexer.RegisterCLI(),
			journeygraph.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
