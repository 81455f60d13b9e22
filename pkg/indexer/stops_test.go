package indexer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/busnetwork/pkg/network"
	"github.com/travigo/busnetwork/pkg/util"
)

func TestStopIndexMappingIsValid(t *testing.T) {
	var mapping map[string]any
	require.NoError(t, json.Unmarshal([]byte(stopIndexMapping), &mapping))

	properties := mapping["mappings"].(map[string]any)["properties"].(map[string]any)
	searchKey := properties["SearchKey"].(map[string]any)["fields"].(map[string]any)
	assert.Contains(t, searchKey, "search_as_you_type")
	assert.Equal(t, "geo_point", properties["Location"].(map[string]any)["type"])
}

func TestNewStopDocument(t *testing.T) {
	builder := network.NewBuilder(util.DefaultSearchKeyMarkers)
	from, err := builder.AddStop("50001", network.StopDetails{Name: "NB MAIN ST", Code: "1", Latitude: 49.2, Longitude: -123.1})
	require.NoError(t, err)
	to, err := builder.AddStop("50002", network.StopDetails{Name: "BROADWAY"})
	require.NoError(t, err)
	require.NoError(t, builder.AddConnection(from, to, 1, network.ConnectionKindDirectRoute))
	builder.Build()

	document := newStopDocument(from)
	assert.Equal(t, "MAIN ST NB", document.SearchKey)
	assert.Equal(t, 49.2, document.Location.Lat)
	assert.Equal(t, -123.1, document.Location.Lon)
	assert.Equal(t, 1, document.Departures)

	encoded, err := json.Marshal(newStopDocument(to))
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "Code")
	assert.Contains(t, string(encoded), `"Location":{"lat":0,"lon":0}`)
}

func TestStaleIndexes(t *testing.T) {
	indexes := []catIndex{
		{Index: "busnetwork-stops-100"},
		{Index: "busnetwork-stops-200"},
		{Index: "busnetwork-stops-300"},
	}

	assert.Equal(t, []string{"busnetwork-stops-100", "busnetwork-stops-300"}, staleIndexes(indexes, "busnetwork-stops-200"))
	assert.Empty(t, staleIndexes(indexes[:1], "busnetwork-stops-100"))
}
