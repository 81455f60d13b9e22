package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/busnetwork/pkg/elastic_client"
	"github.com/travigo/busnetwork/pkg/network"
)

const stopIndexPrefix = "busnetwork-stops-"

const stopIndexMapping = `{
	"settings": {
		"number_of_shards": 1,
		"number_of_replicas": 1
	},
	"mappings": {
		"properties": {
			"Index": {
				"type": "integer"
			},
			"ExternalID": {
				"type": "keyword"
			},
			"Code": {
				"type": "keyword"
			},
			"ZoneID": {
				"type": "keyword"
			},
			"Name": {
				"type": "text",
				"fields": {
					"keyword": {
						"type": "keyword",
						"ignore_above": 256
					}
				}
			},
			"SearchKey": {
				"type": "text",
				"fields": {
					"keyword": {
						"type": "keyword",
						"ignore_above": 256
					},
					"search_as_you_type": {
						"type": "search_as_you_type"
					}
				}
			},
			"Location": {
				"type": "geo_point"
			}
		}
	}
}`

type stopLocation struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type stopDocument struct {
	Index       int
	ExternalID  string
	Name        string
	SearchKey   string
	Code        string `json:",omitempty"`
	Description string `json:",omitempty"`
	ZoneID      string `json:",omitempty"`

	Location   stopLocation
	Departures int
}

func newStopDocument(stop *network.Stop) stopDocument {
	return stopDocument{
		Index:       stop.Index,
		ExternalID:  stop.ExternalID,
		Name:        stop.Name,
		SearchKey:   stop.SearchKey,
		Code:        stop.Code,
		Description: stop.Description,
		ZoneID:      stop.ZoneID,
		Location: stopLocation{
			Lat: stop.Latitude,
			Lon: stop.Longitude,
		},
		Departures: len(stop.Connections()),
	}
}

// IndexStops writes every stop into a fresh timestamped index and then removes
// the previous ones.
func IndexStops(ctx context.Context, net *network.Network) error {
	indexName := fmt.Sprintf("%s%d", stopIndexPrefix, time.Now().Unix())

	if err := createStopIndex(ctx, indexName); err != nil {
		return err
	}
	if err := indexStops(ctx, indexName, net); err != nil {
		return err
	}
	if err := elastic_client.WaitUntilQueueEmpty(ctx); err != nil {
		return err
	}

	return deleteOldIndexes(ctx, stopIndexPrefix+"*", indexName)
}

func createStopIndex(ctx context.Context, indexName string) error {
	indexReq := esapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(stopIndexMapping),
	}

	resp, err := indexReq.Do(ctx, elastic_client.Client)
	if err != nil {
		return fmt.Errorf("create index %s: %w", indexName, err)
	}
	defer resp.Body.Close()

	responseBytes, _ := io.ReadAll(resp.Body)
	if resp.IsError() {
		return fmt.Errorf("create index %s: %s", indexName, resp.Status())
	}

	log.Debug().Msg(pretty.Sprint(string(responseBytes)))

	return nil
}

func indexStops(ctx context.Context, indexName string, net *network.Network) error {
	for _, stop := range net.Stops() {
		stopDocumentJSON, err := json.Marshal(newStopDocument(stop))
		if err != nil {
			return err
		}

		elastic_client.IndexRequest(ctx, indexName, bytes.NewReader(stopDocumentJSON))
	}

	log.Info().Int("stops", net.Len()).Str("index", indexName).Msg("Queued stops for indexing")

	return nil
}
