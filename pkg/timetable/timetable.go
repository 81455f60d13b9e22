package timetable

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/busnetwork/pkg/network"
	"github.com/travigo/busnetwork/pkg/util"
	"golang.org/x/exp/slices"
)

// Builder groups arrivals into trips during ingestion. Arrivals must be added in
// file order: consecutive arrivals with the same trip id belong to one trip.
type Builder struct {
	trips   []*Trip
	current *Trip
	seen    map[string]bool

	Warnings network.Warnings
}

func NewBuilder() *Builder {
	return &Builder{
		seen: map[string]bool{},
	}
}

// AddArrival appends a call to the current trip, or starts a new trip when tripID
// differs from the previous arrival's. It reports whether a new trip was started.
func (b *Builder) AddArrival(tripID string, stop *network.Stop, arrival time.Duration) bool {
	started := false

	if b.current == nil || b.current.ID != tripID {
		if b.seen[tripID] {
			b.Warnings.Add(network.Warning{
				Kind:    network.WarningKindInvariantViolation,
				Message: "Trip arrivals are not contiguous, starting a separate trip",
				TripID:  tripID,
				StopID:  stop.ExternalID,
			})
		}

		b.current = &Trip{ID: tripID, LastTime: arrival}
		b.trips = append(b.trips, b.current)
		b.seen[tripID] = true
		started = true
	} else {
		previous := b.current.Calls[len(b.current.Calls)-1]
		if arrival < previous.Arrival {
			b.Warnings.Add(network.Warning{
				Kind: network.WarningKindInvariantViolation,
				Message: "Arrival time goes backwards from " + util.FormatServiceTime(previous.Arrival) +
					" to " + util.FormatServiceTime(arrival),
				TripID: tripID,
				StopID: stop.ExternalID,
			})
		}
	}

	b.current.Calls = append(b.current.Calls, Call{Stop: stop, Arrival: arrival})
	if arrival > b.current.LastTime {
		b.current.LastTime = arrival
	}

	return started
}

// Build sorts the trips once by last time then trip id and returns the finished
// timetable. The builder must not be used afterwards.
func (b *Builder) Build() *Timetable {
	trips := b.trips
	b.trips = nil
	b.current = nil

	slices.SortFunc(trips, compareTrips)

	log.Debug().Int("trips", len(trips)).Msg("Built timetable")

	return &Timetable{trips: trips}
}

func compareTrips(a, b *Trip) int {
	if a.LastTime != b.LastTime {
		if a.LastTime < b.LastTime {
			return -1
		}
		return 1
	}

	return strings.Compare(a.ID, b.ID)
}

// Timetable holds every trip sorted by (LastTime, ID). It is read-only and safe for
// concurrent readers.
type Timetable struct {
	trips []*Trip
}

// TripsArrivingAt returns every trip whose last arrival is exactly t, in trip id
// order. No match gives an empty slice.
func (tt *Timetable) TripsArrivingAt(t time.Duration) []*Trip {
	hit := tt.search(t)
	if hit < 0 {
		return []*Trip{}
	}

	start := hit
	for start > 0 && tt.trips[start-1].LastTime == t {
		start--
	}

	end := hit + 1
	for end < len(tt.trips) && tt.trips[end].LastTime == t {
		end++
	}

	result := make([]*Trip, end-start)
	copy(result, tt.trips[start:end])

	return result
}

// search is a plain binary search returning the position of any trip ending at t,
// or -1.
func (tt *Timetable) search(t time.Duration) int {
	low, high := 0, len(tt.trips)-1

	for low <= high {
		middle := low + (high-low)/2

		switch lastTime := tt.trips[middle].LastTime; {
		case lastTime == t:
			return middle
		case lastTime < t:
			low = middle + 1
		default:
			high = middle - 1
		}
	}

	return -1
}

// Trips returns the sorted trips. The slice must not be modified.
func (tt *Timetable) Trips() []*Trip {
	return tt.trips
}

func (tt *Timetable) Len() int {
	return len(tt.trips)
}
