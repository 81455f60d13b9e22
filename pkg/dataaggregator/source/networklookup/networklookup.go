package networklookup

import (
	"reflect"

	"github.com/travigo/busnetwork/pkg/dataaggregator/query"
	"github.com/travigo/busnetwork/pkg/dataaggregator/source"
	"github.com/travigo/busnetwork/pkg/dataimporter"
	"github.com/travigo/busnetwork/pkg/journeyplanner"
	"github.com/travigo/busnetwork/pkg/network"
	"github.com/travigo/busnetwork/pkg/timetable"
)

// Source answers every read query from an imported Dataset.
type Source struct {
	Dataset *dataimporter.Dataset
}

func (s Source) GetName() string {
	return "Network Lookup"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(network.Stop{}),
		reflect.TypeOf([]*network.Stop{}),
		reflect.TypeOf(journeyplanner.Path{}),
		reflect.TypeOf([]*timetable.Trip{}),
		reflect.TypeOf(dataimporter.Summary{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q := q.(type) {
	case query.StopByIndex:
		return s.Dataset.Network.StopByIndex(q.Index)
	case query.Stop:
		return s.Dataset.Network.StopByExternalID(q.ExternalID)
	case query.StopSearch:
		return s.Dataset.SearchIndex.Search(q.Term), nil
	case query.JourneyPlan:
		return s.JourneyPlanQuery(q)
	case query.TripsArrivingAt:
		return s.Dataset.Timetable.TripsArrivingAt(q.Time), nil
	case query.NetworkSummary:
		return s.Dataset.Summary(), nil
	default:
		return nil, source.UnsupportedSourceError
	}
}

func (s Source) JourneyPlanQuery(q query.JourneyPlan) (*journeyplanner.Path, error) {
	return journeyplanner.ShortestPath(s.Dataset.Network, q.OriginStop, q.DestinationStop)
}
