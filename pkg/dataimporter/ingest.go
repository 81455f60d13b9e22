package dataimporter

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/travigo/busnetwork/pkg/config"
	"github.com/travigo/busnetwork/pkg/network"
	"github.com/travigo/busnetwork/pkg/stopsearch"
	"github.com/travigo/busnetwork/pkg/timetable"
	"github.com/travigo/busnetwork/pkg/util"
)

const (
	TransferKindDirect = 0
	TransferKindTimed  = 1
)

// Dataset is everything built from one feed. All of it is read-only and safe for
// concurrent readers.
type Dataset struct {
	Network     *network.Network
	Timetable   *timetable.Timetable
	SearchIndex *stopsearch.Index

	Warnings network.Warnings
}

type Summary struct {
	Stops       int
	Connections int
	Trips       int
	SearchKeys  int
	Warnings    map[network.WarningKind]int
}

func (d *Dataset) Summary() Summary {
	summary := Summary{
		Stops:       d.Network.Len(),
		Connections: d.Network.ConnectionCount(),
		Trips:       d.Timetable.Len(),
		SearchKeys:  len(d.SearchIndex.Keys()),
		Warnings:    map[network.WarningKind]int{},
	}

	for _, warning := range d.Warnings {
		summary.Warnings[warning.Kind]++
	}

	return summary
}

type ingestion struct {
	costs config.Costs

	network   *network.Builder
	timetable *timetable.Builder
	warnings  network.Warnings

	previous *network.Stop
}

// Ingest builds a Dataset from the three record streams. Stops are created first,
// then every arrival is added to the timetable and linked to the previous arrival
// of the same trip, then transfers are linked. Problems in the records are
// collected as warnings and never stop ingestion.
func Ingest(records Records, cfg config.Config) (*Dataset, error) {
	i := &ingestion{
		costs:     cfg.Costs,
		network:   network.NewBuilder(cfg.SearchKeyMarkers),
		timetable: timetable.NewBuilder(),
	}

	log.Info().Int("length", len(records.Stops)).Msg("Creating stops")
	for _, record := range records.Stops {
		if err := i.addStop(record); err != nil {
			return nil, err
		}
	}

	log.Info().Int("length", len(records.Arrivals)).Msg("Connecting direct routes")
	for _, record := range records.Arrivals {
		if err := i.addArrival(record); err != nil {
			return nil, err
		}
	}

	log.Info().Int("length", len(records.Transfers)).Msg("Connecting transfers")
	for _, record := range records.Transfers {
		if err := i.addTransfer(record); err != nil {
			return nil, err
		}
	}

	dataset := &Dataset{
		Network:   i.network.Build(),
		Timetable: i.timetable.Build(),
	}
	dataset.SearchIndex = stopsearch.New(dataset.Network)

	dataset.Warnings = append(dataset.Warnings, i.network.Warnings...)
	dataset.Warnings = append(dataset.Warnings, i.warnings...)
	dataset.Warnings = append(dataset.Warnings, i.timetable.Warnings...)

	log.Info().
		Int("stops", dataset.Network.Len()).
		Int("connections", dataset.Network.ConnectionCount()).
		Int("trips", dataset.Timetable.Len()).
		Int("warnings", len(dataset.Warnings)).
		Msg("Network created")

	return dataset, nil
}

func (i *ingestion) addStop(record StopRecord) error {
	details := network.StopDetails{}
	if err := copier.Copy(&details, &record); err != nil {
		return fmt.Errorf("copy stop %s: %w", record.ExternalID, err)
	}

	_, err := i.network.AddStop(record.ExternalID, details)
	return err
}

func (i *ingestion) addArrival(record ArrivalRecord) error {
	stop, err := i.network.StopByExternalID(record.StopID)
	if err != nil {
		i.warnings.Add(network.Warning{
			Kind:    network.WarningKindUnknownReference,
			Message: "Arrival references an unknown stop",
			TripID:  record.TripID,
			StopID:  record.StopID,
		})
		return nil
	}

	arrival, err := util.ParseServiceTime(record.ArrivalTime)
	if err != nil {
		i.warnings.Add(network.Warning{
			Kind:    network.WarningKindMalformedInput,
			Message: fmt.Sprintf("Unparsable arrival time %q", record.ArrivalTime),
			TripID:  record.TripID,
			StopID:  record.StopID,
		})
		arrival = util.MaxServiceTime
	}

	if startedTrip := i.timetable.AddArrival(record.TripID, stop, arrival); !startedTrip {
		if err := i.network.AddConnection(i.previous, stop, i.costs.DirectRouteCost, network.ConnectionKindDirectRoute); err != nil {
			return err
		}
	}
	i.previous = stop

	return nil
}

func (i *ingestion) addTransfer(record TransferRecord) error {
	from, fromErr := i.network.StopByExternalID(record.FromStopID)
	to, toErr := i.network.StopByExternalID(record.ToStopID)
	if fromErr != nil || toErr != nil {
		i.warnings.Add(network.Warning{
			Kind:    network.WarningKindUnknownReference,
			Message: fmt.Sprintf("Transfer %s -> %s references an unknown stop", record.FromStopID, record.ToStopID),
		})
		return nil
	}

	var cost float64
	switch record.Kind {
	case TransferKindDirect:
		cost = i.costs.DirectTransferCost
	case TransferKindTimed:
		cost = record.MinTransferTime * i.costs.TransferTimeWeight
	default:
		i.warnings.Add(network.Warning{
			Kind:    network.WarningKindMalformedInput,
			Message: fmt.Sprintf("Unsupported transfer kind %d from %s to %s", record.Kind, record.FromStopID, record.ToStopID),
			StopID:  record.FromStopID,
		})
		return nil
	}

	if cost < 0 {
		i.warnings.Add(network.Warning{
			Kind:    network.WarningKindMalformedInput,
			Message: fmt.Sprintf("Negative transfer time %f from %s to %s", record.MinTransferTime, record.FromStopID, record.ToStopID),
			StopID:  record.FromStopID,
		})
		return nil
	}

	return i.network.AddConnection(from, to, cost, network.ConnectionKindTransfer)
}
