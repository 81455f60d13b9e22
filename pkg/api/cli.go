package api

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/busnetwork/pkg/dataaggregator/global"
	"github.com/travigo/busnetwork/pkg/dataimporter"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the read only web API over a bus network",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: append(dataimporter.DatasetFlags(),
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				),
				Action: func(c *cli.Context) error {
					dataset, err := dataimporter.ImportFromCLI(c)
					if err != nil {
						return err
					}

					log.Info().Str("listen", c.String("listen")).Msg("Starting web api")

					return SetupServer(c.String("listen"), global.Setup(dataset))
				},
			},
		},
	}
}
