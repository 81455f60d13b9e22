package network

import "math"

// InfiniteCost is returned by CostTo when no direct connection exists.
var InfiniteCost = math.Inf(1)

type ConnectionKind string

const (
	ConnectionKindDirectRoute ConnectionKind = "DirectRoute"
	ConnectionKindTransfer    ConnectionKind = "Transfer"
)

// Stop is a vertex of the network.
//
// Index is the dense position of the stop in the network and is what the planner
// works with. ExternalID is the identifier from the source data and is only used
// to cross reference records during ingestion and by callers.
type Stop struct {
	Index      int    `groups:"basic,detailed"`
	ExternalID string `groups:"basic,detailed"`

	Name      string `groups:"basic,detailed"`
	SearchKey string `groups:"basic,detailed"`

	Code        string  `groups:"detailed" json:",omitempty"`
	Description string  `groups:"detailed" json:",omitempty"`
	Latitude    float64 `groups:"detailed"`
	Longitude   float64 `groups:"detailed"`
	ZoneID      string  `groups:"detailed" json:",omitempty"`

	connections []*Connection
}

// Connection is a directed edge owned by the adjacency list of From.
type Connection struct {
	From *Stop
	To   *Stop
	Cost float64
	Kind ConnectionKind
}

func (s *Stop) String() string {
	return s.Name
}

// Connections returns the outgoing edges of the stop in the order they were added.
// The slice must not be modified.
func (s *Stop) Connections() []*Connection {
	return s.connections
}

// ConnectionsTo returns every outgoing edge towards target, parallel edges included.
func (s *Stop) ConnectionsTo(target *Stop) []*Connection {
	var matches []*Connection

	for _, connection := range s.connections {
		if connection.To == target {
			matches = append(matches, connection)
		}
	}

	return matches
}

// CostTo returns the cost of the first recorded connection towards target, 0 when
// target is the stop itself and InfiniteCost when there is no direct connection.
// With parallel edges this is the first one added, not the cheapest.
func (s *Stop) CostTo(target *Stop) float64 {
	if target == s {
		return 0
	}

	for _, connection := range s.connections {
		if connection.To == target {
			return connection.Cost
		}
	}

	return InfiniteCost
}
