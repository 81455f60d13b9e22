// Package stopsearch is a prefix index over stop search keys.
//
// Keys are held in one sorted slice of (key, stop) entries, so every stop sharing a
// key is kept and a prefix query is a binary search for the first candidate followed
// by a scan while the prefix still matches.
package stopsearch

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/busnetwork/pkg/network"
	"github.com/travigo/busnetwork/pkg/util"
	"golang.org/x/exp/slices"
)

type entry struct {
	key  string
	stop *network.Stop
}

// Index is immutable once built and safe for concurrent readers.
type Index struct {
	entries []entry
}

func New(net *network.Network) *Index {
	entries := make([]entry, 0, net.Len())
	for _, stop := range net.Stops() {
		entries = append(entries, entry{key: stop.SearchKey, stop: stop})
	}

	slices.SortFunc(entries, func(a, b entry) int {
		if c := strings.Compare(a.key, b.key); c != 0 {
			return c
		}
		return a.stop.Index - b.stop.Index
	})

	log.Debug().Int("entries", len(entries)).Msg("Built stop search index")

	return &Index{entries: entries}
}

// Search returns every stop whose search key starts with term, in key order.
// Blank terms and terms with no matches give an empty slice.
func (i *Index) Search(term string) []*network.Stop {
	prefix := util.NormaliseSearchTerm(term)
	results := []*network.Stop{}

	if prefix == "" {
		return results
	}

	start := sort.Search(len(i.entries), func(n int) bool {
		return i.entries[n].key >= prefix
	})

	for n := start; n < len(i.entries) && strings.HasPrefix(i.entries[n].key, prefix); n++ {
		results = append(results, i.entries[n].stop)
	}

	return results
}

// Keys returns the distinct search keys in order.
func (i *Index) Keys() []string {
	var keys []string
	for _, e := range i.entries {
		if len(keys) == 0 || keys[len(keys)-1] != e.key {
			keys = append(keys, e.key)
		}
	}

	return keys
}

func (i *Index) Len() int {
	return len(i.entries)
}
