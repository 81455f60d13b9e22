package network

import "github.com/rs/zerolog/log"

type WarningKind string

const (
	// Input that could not be parsed and was replaced or skipped
	WarningKindMalformedInput WarningKind = "MalformedInput"
	// Input that parsed but breaks an expectation, eg. arrival times going backwards
	WarningKindInvariantViolation WarningKind = "InvariantViolation"
	// Records referencing identifiers that do not exist
	WarningKindUnknownReference WarningKind = "UnknownReference"
)

// Warning is a non-fatal problem found while ingesting records.
type Warning struct {
	Kind    WarningKind
	Message string

	TripID string `json:",omitempty"`
	StopID string `json:",omitempty"`
}

// Warnings collects ingestion diagnostics, logging each one as it is added.
type Warnings []Warning

func (w *Warnings) Add(warning Warning) {
	log.Warn().
		Str("kind", string(warning.Kind)).
		Str("trip", warning.TripID).
		Str("stop", warning.StopID).
		Msg(warning.Message)

	*w = append(*w, warning)
}

func (w Warnings) Count(kind WarningKind) int {
	count := 0
	for _, warning := range w {
		if warning.Kind == kind {
			count++
		}
	}

	return count
}
