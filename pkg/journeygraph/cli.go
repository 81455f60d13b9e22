package journeygraph

import (
	"github.com/travigo/busnetwork/pkg/dataimporter"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "journeygraph",
		Usage: "Exports the bus network into Neo4j",
		Subcommands: []*cli.Command{
			{
				Name:  "export",
				Usage: "replace the graph database contents with the network",
				Flags: append(dataimporter.DatasetFlags(),
					&cli.IntFlag{
						Name:  "batch-size",
						Value: defaultBatchSize,
						Usage: "number of nodes or relationships written per transaction",
					},
				),
				Action: func(c *cli.Context) error {
					dataset, err := dataimporter.ImportFromCLI(c)
					if err != nil {
						return err
					}

					settings := SettingsFromEnvironment()
					settings.BatchSize = c.Int("batch-size")

					return Export(c.Context, settings, dataset.Network)
				},
			},
		},
	}
}
