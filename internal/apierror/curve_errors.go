package apierror

const (

	// ErrInvalidTimeValue is generated when a time range bound does not
	// resolve to a usable instant.
	ErrInvalidTimeValue = "invalid time value"

	// ErrStartNotBeforeEnd is generated when a time range is empty or reversed.
	ErrStartNotBeforeEnd = "start must be strictly before end"

	// ErrEventOutsideFlight is generated when a scheduled event is not fully
	// contained by the flight range.
	ErrEventOutsideFlight = "event outside flight range"

	// ErrEventsOutOfOrder is generated when the event list is not sorted
	// ascending by start time.
	ErrEventsOutOfOrder = "events must be ordered by date"

	// ErrEventsOverlap is generated when two scheduled events share interior
	// time. Back-to-back events are allowed.
	ErrEventsOverlap = "event ranges must never overlap"

	// ErrPercentOver100 is generated when scheduled percentages alone exceed
	// the whole flight goal.
	ErrPercentOver100 = "total goal percent is greater than 100"

	// ErrZeroPercentRemainder is generated when scheduled events exhaust the
	// goal while flight time remains afterward.
	ErrZeroPercentRemainder = "curve cannot end with a 0 percent goal"

	// ErrGoalTooLarge is generated when a day-relative goal exhausts the
	// remaining impression budget.
	ErrGoalTooLarge = "goal is too large"

	// ErrPercentSumMismatch is generated when resolved percentages deviate
	// from 100 beyond tolerance. Signals an internal invariant violation.
	ErrPercentSumMismatch = "total goal percent must equal 100"
)

// CurveError is a non-retryable domain error raised while building a delivery
// curve. The message is surfaced verbatim to the caller.
type CurveError struct {
	UserMsg string
}

func (e *CurveError) Error() string {
	return e.UserMsg
}
