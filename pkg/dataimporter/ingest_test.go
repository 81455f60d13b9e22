package dataimporter

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/busnetwork/pkg/config"
	"github.com/travigo/busnetwork/pkg/journeyplanner"
	"github.com/travigo/busnetwork/pkg/network"
	"github.com/travigo/busnetwork/pkg/util"
)

// Four stops on one trip with a timed transfer short cutting the first two hops.
var fixtureFiles = map[string]string{
	"stops.txt": "stop_id,stop_code,stop_name,stop_desc,stop_lat,stop_lon,zone_id\n" +
		"10,,NB MAIN ST FS 1ST AVE,,49.20,-123.10,ZN 1\n" +
		"11,,NB MAIN ST FS 2ND AVE,,49.21,-123.10,ZN 1\n" +
		"12,,BROADWAY,,49.22,-123.10,ZN 1\n" +
		"13,,EB KING ST,,49.23,-123.10,ZN 2\n",
	"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
		"500,08:00:00,08:00:00,10,1\n" +
		"500,08:05:00,08:05:00,11,2\n" +
		"500,08:10:00,08:10:00,12,3\n" +
		"500,08:15:00,08:15:00,13,4\n",
	"transfers.txt": "from_stop_id,to_stop_id,transfer_type,min_transfer_time\n" +
		"10,12,1,50\n",
}

func writeFixture(t *testing.T, files map[string]string) string {
	t.Helper()

	directory := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(directory, name), []byte(content), 0o644))
	}

	return directory
}

func TestImportFixtureRoundTrip(t *testing.T) {
	dataset, err := Import(writeFixture(t, fixtureFiles), config.Default())
	require.NoError(t, err)

	assert.Equal(t, 4, dataset.Network.Len())
	assert.Equal(t, 4, dataset.Network.ConnectionCount())
	assert.Equal(t, 1, dataset.Timetable.Len())
	assert.Empty(t, dataset.Warnings)

	from, err := dataset.Network.StopByExternalID("10")
	require.NoError(t, err)
	to, err := dataset.Network.StopByExternalID("13")
	require.NoError(t, err)

	path, err := journeyplanner.ShortestPath(dataset.Network, from, to)
	require.NoError(t, err)

	require.Len(t, path.Stops, 3)
	assert.Equal(t, []string{"10", "12", "13"}, []string{path.Stops[0].ExternalID, path.Stops[1].ExternalID, path.Stops[2].ExternalID})
	assert.InDelta(t, 1.5, path.Cost, 1e-9)

	assert.Len(t, dataset.SearchIndex.Search("MAIN"), 2)
	assert.Len(t, dataset.Timetable.TripsArrivingAt(mustTime(t, "08:15:00")), 1)

	summary := dataset.Summary()
	assert.Equal(t, 4, summary.Stops)
	assert.Equal(t, 4, summary.Connections)
	assert.Equal(t, 1, summary.Trips)
	assert.Equal(t, 4, summary.SearchKeys)
}

func TestImportZipBundle(t *testing.T) {
	bundle := filepath.Join(t.TempDir(), "feed.zip")
	file, err := os.Create(bundle)
	require.NoError(t, err)

	writer := zip.NewWriter(file)
	for name, content := range fixtureFiles {
		entry, err := writer.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	require.NoError(t, file.Close())

	dataset, err := Import(bundle, config.Default())
	require.NoError(t, err)
	assert.Equal(t, 4, dataset.Network.Len())
	assert.Equal(t, 4, dataset.Network.ConnectionCount())
}

func TestImportMissingSource(t *testing.T) {
	_, err := Import(filepath.Join(t.TempDir(), "missing.zip"), config.Default())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func mustTime(t *testing.T, text string) time.Duration {
	t.Helper()

	d, err := util.ParseServiceTime(text)
	require.NoError(t, err)
	return d
}

func testRecords() Records {
	return Records{
		Stops: []StopRecord{
			{ExternalID: "A", Name: "NB MAIN ST", Code: "1001", Latitude: 49.1},
			{ExternalID: "B", Name: "BROADWAY"},
			{ExternalID: "C", Name: "BROADWAY"},
		},
	}
}

func TestIngestCopiesStopDetails(t *testing.T) {
	dataset, err := Ingest(testRecords(), config.Default())
	require.NoError(t, err)

	stop, err := dataset.Network.StopByIndex(0)
	require.NoError(t, err)
	assert.Equal(t, "A", stop.ExternalID)
	assert.Equal(t, "1001", stop.Code)
	assert.Equal(t, 49.1, stop.Latitude)
	assert.Equal(t, "MAIN ST NB", stop.SearchKey)

	assert.Len(t, dataset.SearchIndex.Search("BROAD"), 2)
}

func TestIngestDirectRoutesFollowTrips(t *testing.T) {
	records := testRecords()
	records.Arrivals = []ArrivalRecord{
		{TripID: "1", ArrivalTime: "08:00:00", StopID: "A"},
		{TripID: "1", ArrivalTime: "08:05:00", StopID: "B"},
		{TripID: "2", ArrivalTime: "09:00:00", StopID: "C"},
		{TripID: "2", ArrivalTime: "09:05:00", StopID: "A"},
	}

	dataset, err := Ingest(records, config.Default())
	require.NoError(t, err)

	stops := dataset.Network.Stops()
	assert.Equal(t, 1.0, stops[0].CostTo(stops[1]))
	assert.Equal(t, 1.0, stops[2].CostTo(stops[0]))
	assert.Equal(t, network.InfiniteCost, stops[1].CostTo(stops[2]))
	assert.Equal(t, 2, dataset.Network.ConnectionCount())
	assert.Equal(t, 2, dataset.Timetable.Len())
}

func TestIngestUsesConfiguredCosts(t *testing.T) {
	cfg := config.Default()
	cfg.Costs = config.Costs{DirectRouteCost: 3, DirectTransferCost: 7, TransferTimeWeight: 0.5}

	records := testRecords()
	records.Arrivals = []ArrivalRecord{
		{TripID: "1", ArrivalTime: "08:00:00", StopID: "A"},
		{TripID: "1", ArrivalTime: "08:05:00", StopID: "B"},
	}
	records.Transfers = []TransferRecord{
		{FromStopID: "B", ToStopID: "C", Kind: TransferKindDirect},
		{FromStopID: "C", ToStopID: "A", Kind: TransferKindTimed, MinTransferTime: 120},
	}

	dataset, err := Ingest(records, cfg)
	require.NoError(t, err)

	stops := dataset.Network.Stops()
	assert.Equal(t, 3.0, stops[0].CostTo(stops[1]))
	assert.Equal(t, 7.0, stops[1].CostTo(stops[2]))
	assert.Equal(t, 60.0, stops[2].CostTo(stops[0]))

	connections := stops[1].ConnectionsTo(stops[2])
	require.Len(t, connections, 1)
	assert.Equal(t, network.ConnectionKindTransfer, connections[0].Kind)
}

func TestIngestWarnings(t *testing.T) {
	records := testRecords()
	records.Arrivals = []ArrivalRecord{
		{TripID: "1", ArrivalTime: "08:00:00", StopID: "A"},
		{TripID: "1", ArrivalTime: "bad", StopID: "B"},
		{TripID: "1", ArrivalTime: "08:10:00", StopID: "Z"},
		{TripID: "2", ArrivalTime: "09:00:00", StopID: "B"},
		{TripID: "2", ArrivalTime: "08:30:00", StopID: "C"},
	}
	records.Transfers = []TransferRecord{
		{FromStopID: "A", ToStopID: "Z", Kind: TransferKindDirect},
		{FromStopID: "A", ToStopID: "B", Kind: 2},
		{FromStopID: "A", ToStopID: "C", Kind: TransferKindTimed, MinTransferTime: -5},
	}

	dataset, err := Ingest(records, config.Default())
	require.NoError(t, err)

	assert.Equal(t, 2, dataset.Warnings.Count(network.WarningKindUnknownReference))
	assert.Equal(t, 3, dataset.Warnings.Count(network.WarningKindMalformedInput))
	assert.Equal(t, 1, dataset.Warnings.Count(network.WarningKindInvariantViolation))

	trips := dataset.Timetable.TripsArrivingAt(util.MaxServiceTime)
	require.Len(t, trips, 1)
	assert.Equal(t, "1", trips[0].ID)

	// The hop from A still exists even though its arrival time was malformed
	stops := dataset.Network.Stops()
	assert.Equal(t, 1.0, stops[0].CostTo(stops[1]))
	assert.Equal(t, 2, dataset.Network.ConnectionCount())
}

func TestImportWithoutSource(t *testing.T) {
	_, err := Import("", config.Default())
	assert.ErrorIs(t, err, ErrNoSource)
}
