package dataimporter

import (
	"github.com/jinzhu/copier"
	"github.com/travigo/busnetwork/pkg/dataimporter/formats/gtfs"
)

// StopRecord is one parsed stop row.
type StopRecord struct {
	ExternalID  string
	Code        string
	Name        string
	Description string
	Latitude    float64
	Longitude   float64
	ZoneID      string
}

// ArrivalRecord is one parsed stop time row. ArrivalTime is left as text so
// ingestion can report malformed values.
type ArrivalRecord struct {
	TripID      string
	ArrivalTime string
	StopID      string
}

// TransferRecord is one parsed transfer row. MinTransferTime only applies to
// kind 1 transfers.
type TransferRecord struct {
	FromStopID      string
	ToStopID        string
	Kind            int
	MinTransferTime float64
}

// Records are the three record streams in file order.
type Records struct {
	Stops     []StopRecord
	Arrivals  []ArrivalRecord
	Transfers []TransferRecord
}

// RecordsFromSchedule converts gtfs rows into record streams, keeping file order.
func RecordsFromSchedule(schedule *gtfs.Schedule) (Records, error) {
	records := Records{
		Stops:     make([]StopRecord, 0, len(schedule.Stops)),
		Arrivals:  make([]ArrivalRecord, 0, len(schedule.StopTimes)),
		Transfers: make([]TransferRecord, 0, len(schedule.Transfers)),
	}

	for _, gtfsStop := range schedule.Stops {
		record := StopRecord{}
		if err := copier.Copy(&record, &gtfsStop); err != nil {
			return records, err
		}
		record.ExternalID = gtfsStop.ID

		records.Stops = append(records.Stops, record)
	}

	for _, stopTime := range schedule.StopTimes {
		records.Arrivals = append(records.Arrivals, ArrivalRecord{
			TripID:      stopTime.TripID,
			ArrivalTime: stopTime.ArrivalTime,
			StopID:      stopTime.StopID,
		})
	}

	for _, transfer := range schedule.Transfers {
		records.Transfers = append(records.Transfers, TransferRecord{
			FromStopID:      transfer.FromStopID,
			ToStopID:        transfer.ToStopID,
			Kind:            transfer.Type,
			MinTransferTime: transfer.MinTransferTime,
		})
	}

	return records, nil
}
