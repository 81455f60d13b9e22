package gtfs

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFiles = map[string]string{
	"stops.txt": "stop_id,stop_code,stop_name,stop_desc,stop_lat,stop_lon,zone_id\n" +
		"1, 50001, NB MAIN ST FS 1ST AVE,MAIN ST @ 1ST AVE,49.2,-123.1,ZN 1\n" +
		"2,,BROADWAY,,49.3,-123.2,ZN 1\n",
	"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
		"100, 8:00:00,08:00:00,1,1\n" +
		"100,08:05:00,08:05:00,2,2\n",
	"transfers.txt": "from_stop_id,to_stop_id,transfer_type,min_transfer_time\n" +
		"1,2,1,180\n" +
		"2,1,0,\n",
}

func writeDirectory(t *testing.T, files map[string]string) string {
	t.Helper()

	directory := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(directory, name), []byte(content), 0o644))
	}

	return directory
}

func zipFiles(t *testing.T, files map[string]string) *bytes.Buffer {
	t.Helper()

	buffer := &bytes.Buffer{}
	writer := zip.NewWriter(buffer)
	for name, content := range files {
		file, err := writer.Create(name)
		require.NoError(t, err)
		_, err = file.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return buffer
}

func assertSchedule(t *testing.T, schedule *Schedule) {
	t.Helper()

	require.Len(t, schedule.Stops, 2)
	assert.Equal(t, "1", schedule.Stops[0].ID)
	assert.Equal(t, "50001", schedule.Stops[0].Code)
	assert.Equal(t, "NB MAIN ST FS 1ST AVE", schedule.Stops[0].Name)
	assert.Equal(t, 49.2, schedule.Stops[0].Latitude)
	assert.Equal(t, -123.1, schedule.Stops[0].Longitude)
	assert.Equal(t, "ZN 1", schedule.Stops[0].ZoneID)
	assert.Equal(t, "BROADWAY", schedule.Stops[1].Name)

	require.Len(t, schedule.StopTimes, 2)
	assert.Equal(t, "100", schedule.StopTimes[0].TripID)
	assert.Equal(t, "8:00:00", schedule.StopTimes[0].ArrivalTime)
	assert.Equal(t, "2", schedule.StopTimes[1].StopID)

	require.Len(t, schedule.Transfers, 2)
	assert.Equal(t, Transfer{FromStopID: "1", ToStopID: "2", Type: 1, MinTransferTime: 180}, schedule.Transfers[0])
	assert.Equal(t, Transfer{FromStopID: "2", ToStopID: "1", Type: 0}, schedule.Transfers[1])
}

func TestParseDirectory(t *testing.T) {
	schedule := &Schedule{}
	require.NoError(t, schedule.ParseDirectory(writeDirectory(t, testFiles)))

	assertSchedule(t, schedule)
}

func TestParseFile(t *testing.T) {
	schedule := &Schedule{}
	require.NoError(t, schedule.ParseFile(zipFiles(t, testFiles)))

	assertSchedule(t, schedule)
}

func TestParseWithoutTransfers(t *testing.T) {
	files := map[string]string{
		"stops.txt":      testFiles["stops.txt"],
		"stop_times.txt": testFiles["stop_times.txt"],
	}

	schedule := &Schedule{}
	require.NoError(t, schedule.ParseDirectory(writeDirectory(t, files)))
	assert.Empty(t, schedule.Transfers)
	assert.Len(t, schedule.Stops, 2)
}

func TestParseMissingStops(t *testing.T) {
	files := map[string]string{
		"stop_times.txt": testFiles["stop_times.txt"],
	}

	err := (&Schedule{}).ParseDirectory(writeDirectory(t, files))
	assert.ErrorIs(t, err, ErrMissingFile)

	err = (&Schedule{}).ParseFile(zipFiles(t, files))
	assert.ErrorIs(t, err, ErrMissingFile)
}

func TestParseFileRejectsNonZip(t *testing.T) {
	err := (&Schedule{}).ParseFile(bytes.NewBufferString("not a zip"))
	assert.Error(t, err)
}
