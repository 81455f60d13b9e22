package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func writeFeed(t *testing.T) string {
	t.Helper()

	files := map[string]string{
		"stops.txt": "stop_id,stop_code,stop_name,stop_desc,stop_lat,stop_lon,zone_id\n" +
			"1,,NB MAIN ST,,49.20,-123.10,ZN 1\n" +
			"2,,BROADWAY,,49.21,-123.10,ZN 1\n" +
			"3,,ISLAND,,49.22,-123.10,ZN 1\n",
		"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
			"7,08:00:00,08:00:00,1,1\n" +
			"7,08:05:00,08:05:00,2,2\n",
	}

	directory := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(directory, name), []byte(content), 0o644))
	}

	return directory
}

func run(t *testing.T, args ...string) string {
	t.Helper()

	output := &bytes.Buffer{}
	app := &cli.App{
		Name:     "busnetwork",
		Writer:   output,
		Commands: []*cli.Command{networkCommand()},
	}

	require.NoError(t, app.Run(append([]string{"busnetwork", "network"}, args...)))

	return output.String()
}

func TestNetworkCommands(t *testing.T) {
	feed := writeFeed(t)

	assert.Contains(t, run(t, "summary", "--data", feed), "Stops: 3\nConnections: 1\nTrips: 1\n")
	assert.Contains(t, run(t, "search", "--data", feed, "main"), "1\tNB MAIN ST\tMAIN ST NB\n")
	assert.Contains(t, run(t, "stop", "--data", feed, "--index", "1"), "1\t2\tBROADWAY\tBROADWAY\n")
	assert.Equal(t, "Total cost: 1\nNB MAIN ST -> BROADWAY\n", run(t, "plan", "--data", feed, "1", "2"))
	assert.Equal(t, "No path from BROADWAY to ISLAND\n", run(t, "plan", "--data", feed, "2", "3"))
	assert.Equal(t, "7\tNB MAIN ST -> BROADWAY\t08:05:00\n", run(t, "arrivals", "--data", feed, "08:05:00"))
}
