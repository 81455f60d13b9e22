package query

import "time"

// TripsArrivingAt finds trips whose last arrival is exactly Time, as an offset from
// service day midnight.
type TripsArrivingAt struct {
	Time time.Duration
}

type NetworkSummary struct{}
