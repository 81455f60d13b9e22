package network

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange    = errors.New("stop index out of range")
	ErrStopNotFound  = errors.New("could not find a matching Stop")
	ErrNegativeCost  = errors.New("connection cost must not be negative")
	ErrNetworkFrozen = errors.New("network has already been built")
)

// Network owns every Stop in a dense array indexed by Stop.Index.
//
// A Network is only ever handed out by Builder.Build and is read-only from then on,
// so it is safe for concurrent readers.
type Network struct {
	stops      []*Stop
	externalID map[string]*Stop

	connectionCount int
}

func (n *Network) StopByIndex(index int) (*Stop, error) {
	if index < 0 || index >= len(n.stops) {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}

	return n.stops[index], nil
}

func (n *Network) StopByExternalID(id string) (*Stop, error) {
	stop, exists := n.externalID[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrStopNotFound, id)
	}

	return stop, nil
}

// Stops returns all stops in index order. The slice must not be modified.
func (n *Network) Stops() []*Stop {
	return n.stops
}

func (n *Network) Len() int {
	return len(n.stops)
}

func (n *Network) ConnectionCount() int {
	return n.connectionCount
}
