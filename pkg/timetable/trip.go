package timetable

import (
	"time"

	"github.com/travigo/busnetwork/pkg/network"
)

// Call is a single scheduled arrival of a trip at a stop.
type Call struct {
	Stop    *network.Stop `groups:"basic"`
	Arrival time.Duration `groups:"basic"`
}

// Trip is one scheduled vehicle run. LastTime is the latest arrival seen across
// its calls and is the key the timetable is ordered and queried by.
type Trip struct {
	ID       string        `groups:"basic"`
	Calls    []Call        `groups:"detailed"`
	LastTime time.Duration `groups:"basic"`
}

func (t *Trip) Stops() []*network.Stop {
	stops := make([]*network.Stop, 0, len(t.Calls))
	for _, call := range t.Calls {
		stops = append(stops, call.Stop)
	}

	return stops
}

func (t *Trip) FirstStop() *network.Stop {
	if len(t.Calls) == 0 {
		return nil
	}
	return t.Calls[0].Stop
}

func (t *Trip) LastStop() *network.Stop {
	if len(t.Calls) == 0 {
		return nil
	}
	return t.Calls[len(t.Calls)-1].Stop
}
