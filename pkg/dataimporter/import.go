package dataimporter

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/busnetwork/pkg/config"
	"github.com/travigo/busnetwork/pkg/dataimporter/formats"
	"github.com/travigo/busnetwork/pkg/dataimporter/formats/gtfs"
)

var ErrNoSource = errors.New("no gtfs source given")

// Import parses the gtfs feed at source, either a zip bundle or an extracted
// directory, and builds a Dataset from it.
func Import(source string, cfg config.Config) (*Dataset, error) {
	if source == "" {
		return nil, ErrNoSource
	}

	startTime := time.Now()

	info, err := os.Stat(source)
	if err != nil {
		return nil, err
	}

	schedule := &gtfs.Schedule{}
	if err := parse(schedule, source, info.IsDir()); err != nil {
		return nil, err
	}

	records, err := RecordsFromSchedule(schedule)
	if err != nil {
		return nil, err
	}

	dataset, err := Ingest(records, cfg)
	if err != nil {
		return nil, err
	}

	log.Info().Str("source", source).Msgf("Import took %s", time.Since(startTime).String())

	return dataset, nil
}

func parse(format formats.Format, source string, directory bool) error {
	if directory {
		return format.ParseDirectory(source)
	}

	file, err := os.Open(source)
	if err != nil {
		return err
	}
	defer file.Close()

	return format.ParseFile(file)
}
