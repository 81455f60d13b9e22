package indexer

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/busnetwork/pkg/dataimporter"
	"github.com/travigo/busnetwork/pkg/elastic_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "indexer",
		Usage: "Indexes the bus network into Elasticsearch",
		Subcommands: []*cli.Command{
			{
				Name:  "stops",
				Usage: "do an index of the Stops",
				Flags: dataimporter.DatasetFlags(),
				Action: func(c *cli.Context) error {
					if err := elastic_client.Connect(true); err != nil {
						return err
					}

					dataset, err := dataimporter.ImportFromCLI(c)
					if err != nil {
						return err
					}

					if err := IndexStops(c.Context, dataset.Network); err != nil {
						return err
					}

					log.Info().Msg("Index queue emptied")

					return nil
				},
			},
		},
	}
}
