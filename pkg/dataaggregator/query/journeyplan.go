package query

import "github.com/travigo/busnetwork/pkg/network"

type JourneyPlan struct {
	OriginStop      *network.Stop
	DestinationStop *network.Stop
}
