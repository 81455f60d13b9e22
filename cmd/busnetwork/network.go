package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/kr/pretty"
	"github.com/travigo/busnetwork/pkg/dataaggregator"
	"github.com/travigo/busnetwork/pkg/dataaggregator/global"
	"github.com/travigo/busnetwork/pkg/dataaggregator/query"
	"github.com/travigo/busnetwork/pkg/dataimporter"
	"github.com/travigo/busnetwork/pkg/journeyplanner"
	"github.com/travigo/busnetwork/pkg/network"
	"github.com/travigo/busnetwork/pkg/timetable"
	"github.com/travigo/busnetwork/pkg/util"
	"github.com/urfave/cli/v2"
)

func networkCommand() *cli.Command {
	flags := append(dataimporter.DatasetFlags(),
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "dump the full result structures",
		},
	)

	return &cli.Command{
		Name:  "network",
		Usage: "Query a bus network built from a GTFS feed",
		Subcommands: []*cli.Command{
			{
				Name:  "summary",
				Usage: "print stop, connection and trip counts",
				Flags: flags,
				Action: withAggregator(func(c *cli.Context, aggregator *dataaggregator.Aggregator) error {
					summary, err := dataaggregator.Lookup[dataimporter.Summary](aggregator, query.NetworkSummary{})
					if err != nil {
						return err
					}

					fmt.Fprintf(c.App.Writer, "Stops: %d\nConnections: %d\nTrips: %d\nSearch keys: %d\n",
						summary.Stops, summary.Connections, summary.Trips, summary.SearchKeys)
					for kind, count := range summary.Warnings {
						fmt.Fprintf(c.App.Writer, "%s warnings: %d\n", kind, count)
					}

					return nil
				}),
			},
			{
				Name:      "stop",
				Usage:     "look up a stop by external id, or by index with --index",
				ArgsUsage: "<identifier>",
				Flags: append(flags, &cli.BoolFlag{
					Name:  "index",
					Usage: "treat the argument as a network index",
				}),
				Action: withAggregator(func(c *cli.Context, aggregator *dataaggregator.Aggregator) error {
					var q any = query.Stop{ExternalID: c.Args().First()}
					if c.Bool("index") {
						index, err := strconv.Atoi(c.Args().First())
						if err != nil {
							return fmt.Errorf("index should be an integer: %w", err)
						}
						q = query.StopByIndex{Index: index}
					}

					stop, err := dataaggregator.Lookup[*network.Stop](aggregator, q)
					if err != nil {
						return err
					}

					if c.Bool("debug") {
						pretty.Fprintf(c.App.Writer, "%# v\n", stop)
						return nil
					}

					fmt.Fprintf(c.App.Writer, "%d\t%s\t%s\t%s\n", stop.Index, stop.ExternalID, stop.Name, stop.SearchKey)
					for _, connection := range stop.Connections() {
						fmt.Fprintf(c.App.Writer, "  -> %s (%s, %g)\n", connection.To, connection.Kind, connection.Cost)
					}

					return nil
				}),
			},
			{
				Name:      "search",
				Usage:     "find stops whose search key starts with a term",
				ArgsUsage: "<term>",
				Flags:     flags,
				Action: withAggregator(func(c *cli.Context, aggregator *dataaggregator.Aggregator) error {
					stops, err := dataaggregator.Lookup[[]*network.Stop](aggregator, query.StopSearch{Term: c.Args().First()})
					if err != nil {
						return err
					}

					for _, stop := range stops {
						fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\n", stop.ExternalID, stop.Name, stop.SearchKey)
					}

					return nil
				}),
			},
			{
				Name:      "plan",
				Usage:     "find the cheapest path between two stops",
				ArgsUsage: "<origin> <destination>",
				Flags:     flags,
				Action: withAggregator(func(c *cli.Context, aggregator *dataaggregator.Aggregator) error {
					if c.NArg() != 2 {
						return errors.New("an origin and a destination stop are required")
					}

					origin, err := dataaggregator.Lookup[*network.Stop](aggregator, query.Stop{ExternalID: c.Args().Get(0)})
					if err != nil {
						return err
					}
					destination, err := dataaggregator.Lookup[*network.Stop](aggregator, query.Stop{ExternalID: c.Args().Get(1)})
					if err != nil {
						return err
					}

					path, err := dataaggregator.Lookup[*journeyplanner.Path](aggregator, query.JourneyPlan{
						OriginStop:      origin,
						DestinationStop: destination,
					})
					if errors.Is(err, journeyplanner.ErrUnreachable) {
						fmt.Fprintf(c.App.Writer, "No path from %s to %s\n", origin, destination)
						return nil
					} else if err != nil {
						return err
					}

					if c.Bool("debug") {
						pretty.Fprintf(c.App.Writer, "%# v\n", path)
					}
					fmt.Fprintln(c.App.Writer, path)

					return nil
				}),
			},
			{
				Name:      "arrivals",
				Usage:     "list trips whose last arrival is at a time",
				ArgsUsage: "<HH:MM:SS>",
				Flags:     flags,
				Action: withAggregator(func(c *cli.Context, aggregator *dataaggregator.Aggregator) error {
					arrivalTime, err := util.ParseServiceTime(c.Args().First())
					if err != nil {
						return err
					}

					trips, err := dataaggregator.Lookup[[]*timetable.Trip](aggregator, query.TripsArrivingAt{Time: arrivalTime})
					if err != nil {
						return err
					}

					for _, trip := range trips {
						fmt.Fprintf(c.App.Writer, "%s\t%s -> %s\t%s\n",
							trip.ID, trip.FirstStop(), trip.LastStop(), util.FormatServiceTime(trip.LastTime))
					}

					return nil
				}),
			},
		},
	}
}

func withAggregator(action func(*cli.Context, *dataaggregator.Aggregator) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		dataset, err := dataimporter.ImportFromCLI(c)
		if err != nil {
			return err
		}

		return action(c, global.Setup(dataset))
	}
}
