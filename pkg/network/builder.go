package network

import (
	"fmt"
	"math"

	"github.com/jinzhu/copier"
	"github.com/travigo/busnetwork/pkg/util"
)

// StopDetails carries the descriptive fields of a stop record. They are copied onto
// the Stop for display and play no part in routing.
type StopDetails struct {
	Code        string
	Name        string
	Description string
	Latitude    float64
	Longitude   float64
	ZoneID      string
}

// Builder assembles a Network. Stops and connections can only be added until Build
// is called.
type Builder struct {
	stops      []*Stop
	externalID map[string]*Stop

	searchKeyMarkers []string
	connectionCount  int
	built            bool

	Warnings Warnings
}

func NewBuilder(searchKeyMarkers []string) *Builder {
	return &Builder{
		externalID:       map[string]*Stop{},
		searchKeyMarkers: searchKeyMarkers,
	}
}

// AddStop creates the next dense stop. A repeated external id is reported and the
// first stop with that id is returned.
func (b *Builder) AddStop(externalID string, details StopDetails) (*Stop, error) {
	if b.built {
		return nil, ErrNetworkFrozen
	}

	if existing, exists := b.externalID[externalID]; exists {
		b.Warnings.Add(Warning{
			Kind:    WarningKindMalformedInput,
			Message: "Duplicate stop identifier ignored",
			StopID:  externalID,
		})
		return existing, nil
	}

	stop := &Stop{}
	if err := copier.Copy(stop, &details); err != nil {
		return nil, fmt.Errorf("copy stop %s: %w", externalID, err)
	}

	stop.Index = len(b.stops)
	stop.ExternalID = externalID
	stop.SearchKey = util.StopSearchKey(details.Name, b.searchKeyMarkers)

	b.stops = append(b.stops, stop)
	b.externalID[externalID] = stop

	return stop, nil
}

// StopByExternalID looks up a stop that has already been added.
func (b *Builder) StopByExternalID(id string) (*Stop, error) {
	stop, exists := b.externalID[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrStopNotFound, id)
	}

	return stop, nil
}

// AddConnection appends a connection to the adjacency list of from.
func (b *Builder) AddConnection(from *Stop, to *Stop, cost float64, kind ConnectionKind) error {
	if b.built {
		return ErrNetworkFrozen
	}
	if cost < 0 || math.IsNaN(cost) {
		return fmt.Errorf("%w: %s -> %s costs %f", ErrNegativeCost, from.ExternalID, to.ExternalID, cost)
	}

	from.connections = append(from.connections, &Connection{
		From: from,
		To:   to,
		Cost: cost,
		Kind: kind,
	})
	b.connectionCount++

	return nil
}

// Build freezes the builder and returns the finished Network.
func (b *Builder) Build() *Network {
	b.built = true

	return &Network{
		stops:           b.stops,
		externalID:      b.externalID,
		connectionCount: b.connectionCount,
	}
}
