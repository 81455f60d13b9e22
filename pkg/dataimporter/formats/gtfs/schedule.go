package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

var ErrMissingFile = errors.New("required gtfs file missing")

// Schedule holds the rows of the three files a bus network is built from, in
// file order.
type Schedule struct {
	Stops     []Stop
	StopTimes []StopTime
	Transfers []Transfer
}

func init() {
	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		r.TrimLeadingSpace = true
		return r
	})
}

func (gtfs *Schedule) fileMap() map[string]interface{} {
	return map[string]interface{}{
		"stops.txt":      &gtfs.Stops,
		"stop_times.txt": &gtfs.StopTimes,
		"transfers.txt":  &gtfs.Transfers,
	}
}

// ParseFile reads a zipped GTFS bundle.
func (gtfs *Schedule) ParseFile(reader io.Reader) error {
	fileMap := gtfs.fileMap()
	found := map[string]bool{}

	// TODO stream the archive from disk instead of holding the whole body in memory
	body, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	archive, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return err
	}

	for _, zipFile := range archive.File {
		fileName := path.Base(zipFile.Name)
		destination, exists := fileMap[fileName]
		if !exists {
			log.Debug().Str("file", zipFile.Name).Msg("Ignoring gtfs file")
			continue
		}

		log.Info().Str("file", fileName).Msg("Loading file")

		fileReader, err := zipFile.Open()
		if err != nil {
			return err
		}

		err = gocsv.Unmarshal(fileReader, destination)
		fileReader.Close()
		if err != nil {
			log.Error().Str("file", fileName).Err(err).Msg("Failed to parse csv file")
			return fmt.Errorf("parse %s: %w", fileName, err)
		}

		found[fileName] = true
	}

	return gtfs.finish(found)
}

// ParseDirectory reads an extracted GTFS feed, parsing each file concurrently.
func (gtfs *Schedule) ParseDirectory(directory string) error {
	fileMap := gtfs.fileMap()
	found := map[string]bool{}

	for fileName := range fileMap {
		if _, err := os.Stat(filepath.Join(directory, fileName)); err == nil {
			found[fileName] = true
		}
	}

	p := pool.New().WithErrors()

	for fileName, destination := range fileMap {
		if !found[fileName] {
			continue
		}

		p.Go(func() error {
			log.Info().Str("file", fileName).Msg("Loading file")

			file, err := os.Open(filepath.Join(directory, fileName))
			if err != nil {
				return err
			}
			defer file.Close()

			if err := gocsv.Unmarshal(file, destination); err != nil {
				log.Error().Str("file", fileName).Err(err).Msg("Failed to parse csv file")
				return fmt.Errorf("parse %s: %w", fileName, err)
			}

			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return err
	}

	return gtfs.finish(found)
}

func (gtfs *Schedule) finish(found map[string]bool) error {
	for _, required := range []string{"stops.txt", "stop_times.txt"} {
		if !found[required] {
			return fmt.Errorf("%w: %s", ErrMissingFile, required)
		}
	}
	if !found["transfers.txt"] {
		log.Info().Msg("No transfers.txt in feed, continuing without transfers")
	}

	gtfs.trim()

	log.Info().
		Int("stops", len(gtfs.Stops)).
		Int("stoptimes", len(gtfs.StopTimes)).
		Int("transfers", len(gtfs.Transfers)).
		Msg("Parsed gtfs schedule")

	return nil
}

// trim strips the padding some feeds put around identifiers and names.
func (gtfs *Schedule) trim() {
	for i := range gtfs.Stops {
		stop := &gtfs.Stops[i]
		stop.ID = strings.TrimSpace(stop.ID)
		stop.Code = strings.TrimSpace(stop.Code)
		stop.Name = strings.TrimSpace(stop.Name)
		stop.Description = strings.TrimSpace(stop.Description)
		stop.ZoneID = strings.TrimSpace(stop.ZoneID)
	}

	for i := range gtfs.StopTimes {
		stopTime := &gtfs.StopTimes[i]
		stopTime.TripID = strings.TrimSpace(stopTime.TripID)
		stopTime.StopID = strings.TrimSpace(stopTime.StopID)
		stopTime.ArrivalTime = strings.TrimSpace(stopTime.ArrivalTime)
	}

	for i := range gtfs.Transfers {
		transfer := &gtfs.Transfers[i]
		transfer.FromStopID = strings.TrimSpace(transfer.FromStopID)
		transfer.ToStopID = strings.TrimSpace(transfer.ToStopID)
	}
}
