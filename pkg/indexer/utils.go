package indexer

import (
	"context"
	"encoding/json"
	"io"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/rs/zerolog/log"
	"github.com/travigo/busnetwork/pkg/elastic_client"
)

type catIndex struct {
	Index string `json:"index"`
}

func deleteOldIndexes(ctx context.Context, indexWildcard string, indexName string) error {
	catReq := esapi.CatIndicesRequest{
		Index:  []string{indexWildcard},
		Format: "json",
	}

	resp, err := catReq.Do(ctx, elastic_client.Client)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	responseBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var indexes []catIndex
	if err := json.Unmarshal(responseBytes, &indexes); err != nil {
		return err
	}

	for _, index := range staleIndexes(indexes, indexName) {
		deleteReq := esapi.IndicesDeleteRequest{
			Index: []string{index},
		}

		deleteResp, err := deleteReq.Do(ctx, elastic_client.Client)
		if err != nil {
			return err
		}
		deleteResp.Body.Close()

		log.Info().Str("index", index).Msg("Delete old index")
	}

	return nil
}

func staleIndexes(indexes []catIndex, current string) []string {
	var stale []string
	for _, index := range indexes {
		if index.Index != current {
			stale = append(stale, index.Index)
		}
	}

	return stale
}
