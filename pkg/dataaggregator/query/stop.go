package query

// StopByIndex finds a stop by its dense network index.
type StopByIndex struct {
	Index int
}

// Stop finds a stop by the identifier used in the source data.
type Stop struct {
	ExternalID string
}

// StopSearch finds every stop whose search key starts with Term.
type StopSearch struct {
	Term string
}
