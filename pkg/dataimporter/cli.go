package dataimporter

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/busnetwork/pkg/config"
	"github.com/urfave/cli/v2"
)

// DatasetFlags are shared by every command that builds a network before running.
func DatasetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "data",
			Usage:   "GTFS zip or directory to build the network from",
			EnvVars: []string{"BUSNETWORK_DATA"},
		},
		&cli.StringFlag{
			Name:    "config",
			Usage:   "YAML configuration file",
			EnvVars: []string{"BUSNETWORK_CONFIG"},
		},
	}
}

// ImportFromCLI loads the configuration named by DatasetFlags and imports the feed.
func ImportFromCLI(c *cli.Context) (*Dataset, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.String("data") != "" {
		cfg.Data = c.String("data")
	}

	return Import(cfg.Data, cfg)
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Parse GTFS feeds into a bus network",
		Subcommands: []*cli.Command{
			{
				Name:  "check",
				Usage: "Import a feed and report any problems found in it",
				Flags: append(DatasetFlags(),
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "Fail when the feed produced any warnings",
					},
				),
				Action: func(c *cli.Context) error {
					dataset, err := ImportFromCLI(c)
					if err != nil {
						return err
					}

					summary := dataset.Summary()
					for kind, count := range summary.Warnings {
						log.Info().Str("kind", string(kind)).Int("count", count).Msg("Warnings")
					}

					if c.Bool("strict") && len(dataset.Warnings) > 0 {
						return fmt.Errorf("feed produced %d warnings", len(dataset.Warnings))
					}

					return nil
				},
			},
		},
	}
}
