package journeyplanner

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/busnetwork/pkg/network"
	"golang.org/x/exp/slices"
)

// ErrUnreachable is returned when both stops exist but no sequence of connections
// joins them.
var ErrUnreachable = errors.New("no path between stops")

// Path is the cheapest sequence of stops found between two stops. Cost is the sum
// of the connection costs between consecutive stops.
type Path struct {
	Stops []*network.Stop `groups:"basic"`
	Cost  float64         `groups:"basic"`
}

func (p *Path) String() string {
	var builder strings.Builder

	builder.WriteString("Total cost: ")
	builder.WriteString(strconv.FormatFloat(p.Cost, 'f', -1, 64))
	builder.WriteString("\n")

	for i, stop := range p.Stops {
		if i > 0 {
			builder.WriteString(" -> ")
		}
		builder.WriteString(stop.Name)
	}

	return builder.String()
}

// Planner answers cheapest path queries over a built network. It holds no per-query
// state so one Planner can serve concurrent callers.
type Planner struct {
	Network *network.Network
}

func NewPlanner(net *network.Network) *Planner {
	return &Planner{Network: net}
}

func (p *Planner) ShortestPath(from *network.Stop, to *network.Stop) (*Path, error) {
	return ShortestPath(p.Network, from, to)
}

// ShortestPath runs Dijkstra from `from`, stopping as soon as `to` is settled.
func ShortestPath(net *network.Network, from *network.Stop, to *network.Stop) (*Path, error) {
	if from == nil || to == nil {
		return nil, network.ErrStopNotFound
	}

	stopCount := net.Len()
	if !belongsTo(net, from) || !belongsTo(net, to) {
		return nil, fmt.Errorf("%w: stop does not belong to this network", network.ErrOutOfRange)
	}

	bestCost := make([]float64, stopCount)
	cameFrom := make([]int, stopCount)
	for i := range bestCost {
		bestCost[i] = math.Inf(1)
		cameFrom[i] = -1
	}
	bestCost[from.Index] = 0

	queue := newStopQueue(stopCount)
	queue.upsert(from, 0)

	scanned := 0
	found := false

	for queue.Len() > 0 {
		entry := queue.popMin()
		current := entry.stop

		// Superseded entries are removed on upsert, this only guards the invariant
		if entry.cost > bestCost[current.Index] {
			continue
		}

		if current == to {
			found = true
			break
		}

		scanned++
		if scanned%1000 == 0 {
			log.Debug().Int("scanned", scanned).Msg("Journey planner progress")
		}

		for _, connection := range current.Connections() {
			candidate := entry.cost + connection.Cost
			if candidate >= bestCost[connection.To.Index] {
				continue
			}

			bestCost[connection.To.Index] = candidate
			cameFrom[connection.To.Index] = current.Index
			queue.upsert(connection.To, candidate)
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: %s -> %s", ErrUnreachable, from.ExternalID, to.ExternalID)
	}

	stops := []*network.Stop{to}
	for index := cameFrom[to.Index]; index != -1; index = cameFrom[index] {
		stops = append(stops, net.Stops()[index])
	}
	slices.Reverse(stops)

	log.Debug().
		Str("from", from.ExternalID).
		Str("to", to.ExternalID).
		Int("scanned", scanned).
		Float64("cost", bestCost[to.Index]).
		Msg("Found path")

	return &Path{
		Stops: stops,
		Cost:  bestCost[to.Index],
	}, nil
}

func belongsTo(net *network.Network, stop *network.Stop) bool {
	found, err := net.StopByIndex(stop.Index)

	return err == nil && found == stop
}
