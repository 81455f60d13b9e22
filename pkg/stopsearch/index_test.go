package stopsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/busnetwork/pkg/network"
	"github.com/travigo/busnetwork/pkg/util"
)

func buildIndex(t *testing.T, names ...string) (*Index, []*network.Stop) {
	t.Helper()

	builder := network.NewBuilder(util.DefaultSearchKeyMarkers)
	stops := make([]*network.Stop, 0, len(names))
	for i, name := range names {
		stop, err := builder.AddStop(string(rune('a'+i)), network.StopDetails{Name: name})
		require.NoError(t, err)
		stops = append(stops, stop)
	}

	return New(builder.Build()), stops
}

func TestSearchGroupsDirectionalPrefixes(t *testing.T) {
	index, stops := buildIndex(t, "NB MAIN ST", "KING ST", "SB MAIN ST")

	results := index.Search("MAIN")
	assert.Equal(t, []*network.Stop{stops[0], stops[2]}, results)
	assert.Equal(t, "MAIN ST NB", results[0].SearchKey)
	assert.Equal(t, "MAIN ST SB", results[1].SearchKey)
}

func TestSearchReturnsEveryStopSharingAKey(t *testing.T) {
	index, stops := buildIndex(t, "BROADWAY", "HASTINGS ST", "BROADWAY")

	assert.Equal(t, []*network.Stop{stops[0], stops[2]}, index.Search("BROAD"))
	assert.Equal(t, []*network.Stop{stops[0], stops[2]}, index.Search("broadway"))
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	index, stops := buildIndex(t, "Main St", "Maple Ave")

	assert.Equal(t, []*network.Stop{stops[0], stops[1]}, index.Search("ma"))
	assert.Equal(t, []*network.Stop{stops[0]}, index.Search("  main   st "))
}

func TestSearchEmptyResults(t *testing.T) {
	index, _ := buildIndex(t, "MAIN ST", "KING ST")

	for _, term := range []string{"", "   ", "QUEEN", "ZZZ", "A"} {
		results := index.Search(term)
		assert.NotNil(t, results, term)
		assert.Empty(t, results, term)
	}
}

func TestSearchEmptyIndex(t *testing.T) {
	index, _ := buildIndex(t)

	assert.Equal(t, 0, index.Len())
	assert.Empty(t, index.Search("MAIN"))
	assert.Empty(t, index.Keys())
}

func TestSearchMarkerOnlyMatchesAtEnd(t *testing.T) {
	index, stops := buildIndex(t, "WB HASTINGS ST", "NBA ARENA")

	assert.Empty(t, index.Search("WB"))
	assert.Equal(t, []*network.Stop{stops[1]}, index.Search("NB"))
	assert.Equal(t, []*network.Stop{stops[0]}, index.Search("HASTINGS ST WB"))
}

func TestKeys(t *testing.T) {
	index, _ := buildIndex(t, "NB MAIN ST", "BROADWAY", "BROADWAY")

	assert.Equal(t, []string{"BROADWAY", "MAIN ST NB"}, index.Keys())
	assert.Equal(t, 3, index.Len())
}

func TestSearchIsIdempotent(t *testing.T) {
	index, _ := buildIndex(t, "NB MAIN ST", "MAIN ST", "MAINLAND")

	first := index.Search("MAIN")
	assert.Len(t, first, 3)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, index.Search("MAIN"))
	}
}
