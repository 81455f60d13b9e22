package journeygraph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog/log"
	"github.com/travigo/busnetwork/pkg/network"
	"github.com/travigo/busnetwork/pkg/util"
)

const defaultBatchSize = 1000

const (
	clearQuery = "MATCH (n) DETACH DELETE n"

	createStopsQuery = `
		UNWIND $stops AS stop
		CREATE (:Stop {index: stop.index, externalid: stop.externalid, name: stop.name, searchkey: stop.searchkey})
	`

	createConnectionsQuery = `
		UNWIND $connections AS connection
		MATCH (from:Stop {index: connection.from})
		MATCH (to:Stop {index: connection.to})
		CREATE (from)-[:CONNECTS {cost: connection.cost, kind: connection.kind}]->(to)
	`

	createIndexQuery = "CREATE INDEX stop_index IF NOT EXISTS FOR (s:Stop) ON (s.index)"
)

type Settings struct {
	URI       string
	Username  string
	Password  string
	Database  string
	BatchSize int
}

func SettingsFromEnvironment() Settings {
	env := util.GetEnvironmentVariables()

	settings := Settings{
		URI:       env["BUSNETWORK_NEO4J_URI"],
		Username:  env["BUSNETWORK_NEO4J_USERNAME"],
		Password:  env["BUSNETWORK_NEO4J_PASSWORD"],
		Database:  env["BUSNETWORK_NEO4J_DATABASE"],
		BatchSize: defaultBatchSize,
	}

	if settings.URI == "" {
		settings.URI = "neo4j://localhost"
	}
	if settings.Username == "" {
		settings.Username = "neo4j"
	}
	if settings.Database == "" {
		settings.Database = "neo4j"
	}

	return settings
}

// Export replaces the contents of the target database with the stops and
// connections of net.
func Export(ctx context.Context, settings Settings, net *network.Network) error {
	if settings.BatchSize <= 0 {
		settings.BatchSize = defaultBatchSize
	}

	driver, err := neo4j.NewDriverWithContext(
		settings.URI,
		neo4j.BasicAuth(settings.Username, settings.Password, ""))
	if err != nil {
		return err
	}
	defer driver.Close(ctx)

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return err
	}

	session := driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: settings.Database})
	defer session.Close(ctx)

	if _, err := session.Run(ctx, clearQuery, map[string]any{}); err != nil {
		return err
	}
	if _, err := session.Run(ctx, createIndexQuery, map[string]any{}); err != nil {
		return err
	}

	for _, batch := range batchStops(net, settings.BatchSize) {
		if err := writeBatch(ctx, session, createStopsQuery, map[string]any{"stops": batch}); err != nil {
			return err
		}
	}
	log.Info().Int("stops", net.Len()).Msg("Exported stops")

	for _, batch := range batchConnections(net, settings.BatchSize) {
		if err := writeBatch(ctx, session, createConnectionsQuery, map[string]any{"connections": batch}); err != nil {
			return err
		}
	}
	log.Info().Int("connections", net.ConnectionCount()).Msg("Exported connections")

	return nil
}

func writeBatch(ctx context.Context, session neo4j.SessionWithContext, query string, parameters map[string]any) error {
	_, err := session.ExecuteWrite(ctx,
		func(tx neo4j.ManagedTransaction) (any, error) {
			result, err := tx.Run(ctx, query, parameters)
			if err != nil {
				return nil, err
			}

			return result.Consume(ctx)
		})

	return err
}

func batchStops(net *network.Network, size int) [][]map[string]any {
	var batches [][]map[string]any
	var batch []map[string]any

	for _, stop := range net.Stops() {
		batch = append(batch, map[string]any{
			"index":      stop.Index,
			"externalid": stop.ExternalID,
			"name":       stop.Name,
			"searchkey":  stop.SearchKey,
		})

		if len(batch) >= size {
			batches = append(batches, batch)
			batch = nil
		}
	}
	if len(batch) > 0 {
		batches = append(batches, batch)
	}

	return batches
}

func batchConnections(net *network.Network, size int) [][]map[string]any {
	var batches [][]map[string]any
	var batch []map[string]any

	for _, stop := range net.Stops() {
		for _, connection := range stop.Connections() {
			batch = append(batch, map[string]any{
				"from": connection.From.Index,
				"to":   connection.To.Index,
				"cost": connection.Cost,
				"kind": string(connection.Kind),
			})

			if len(batch) >= size {
				batches = append(batches, batch)
				batch = nil
			}
		}
	}
	if len(batch) > 0 {
		batches = append(batches, batch)
	}

	return batches
}
