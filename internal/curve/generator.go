package curve

import (
	"fmt"
	"math"
	"time"

	"github.com/google-marketing-solutions/curvesmith/internal/apierror"
	"github.com/google-marketing-solutions/curvesmith/internal/model"
	"github.com/google-marketing-solutions/curvesmith/internal/storage"
)

// PostEventsLabel is the description of the filler segment covering flight
// time after the last scheduled event.
const PostEventsLabel = "Post-Events"

// sumTolerance is how far the resolved percentages may drift from 100 before
// the deviation is treated as an invariant violation instead of a
// floating-point artifact.
const sumTolerance = 0.001

// GenerateCurveSegments partitions the flight into an ordered sequence of
// scheduled and filler segments whose goal percentages sum to exactly 100.
//
// Events must be pre-sorted ascending by start time and pairwise
// non-overlapping; order is validated, never imposed. The first violation
// found aborts the whole call with no partial result. The call owns all of
// its state, so concurrent callers never contend.
func GenerateCurveSegments(flight *model.Flight, events []*model.ScheduledEvent, goalType model.GoalType) ([]model.CurveSegment, error) {
	if err := validatePlacement(flight, events); err != nil {
		return nil, err
	}

	ctx := model.NewGoalContext(goalType, flight)
	segments := storage.NewInMemoryList[model.CurveSegment](nil)

	var err error
	switch goalType {
	case model.GoalTypeDay:
		err = processEventsByDay(flight, events, ctx, segments)
	default:
		err = processEventsByTotal(flight, events, ctx, segments)
	}

	if err != nil {
		return nil, err
	}

	if err = resolveGoals(ctx, segments); err != nil {
		return nil, err
	}

	return segments.Items(), nil
}

// validatePlacement walks events in the given order and rejects the first
// one that falls outside the flight, precedes its predecessor, or overlaps
// it. Runs before any allocation math.
func validatePlacement(flight *model.Flight, events []*model.ScheduledEvent) error {
	var prev *model.ScheduledEvent
	for _, event := range events {
		if !flight.Contains(event.TimeRange) {
			return &apierror.CurveError{UserMsg: apierror.ErrEventOutsideFlight}
		}

		if prev != nil {
			if event.Start.Before(prev.Start) {
				return &apierror.CurveError{UserMsg: apierror.ErrEventsOutOfOrder}
			}

			if event.Overlaps(prev.TimeRange) {
				return &apierror.CurveError{UserMsg: apierror.ErrEventsOverlap}
			}
		}

		prev = event
	}

	return nil
}

// processEventsByTotal partitions the flight treating each event's raw
// percent as a share of the whole flight goal, used unchanged.
func processEventsByTotal(
	flight *model.Flight,
	events []*model.ScheduledEvent,
	ctx *model.GoalContext,
	segments storage.List[model.CurveSegment],
) error {
	cursor := flight.Start
	for _, event := range events {
		appendFillerGap(segments, ctx, cursor, event.Start, preEventLabel(event))
		segments.Append(model.NewScheduledSegment(event, event.GoalPercent))

		ctx.UnscheduledPercent -= event.GoalPercent
		if ctx.UnscheduledPercent < 0 {
			return &apierror.CurveError{UserMsg: apierror.ErrPercentOver100}
		}

		// A fully spent budget is only acceptable on the very last instant
		// of the flight; any time after it would be unfunded.
		if ctx.UnscheduledPercent == 0 && event.End.Before(flight.End) {
			return &apierror.CurveError{UserMsg: apierror.ErrZeroPercentRemainder}
		}

		cursor = event.End
	}

	appendFillerGap(segments, ctx, cursor, flight.End, PostEventsLabel)
	return nil
}

// processEventsByDay partitions the flight treating each event's raw percent
// as a share of the even daily rate: the impressions one 24-hour period would
// receive if the goal were spread uniformly. An event may therefore claim
// more than its proportional share of the whole flight.
func processEventsByDay(
	flight *model.Flight,
	events []*model.ScheduledEvent,
	ctx *model.GoalContext,
	segments storage.List[model.CurveSegment],
) error {
	evenDailyGoal := flight.ImpressionGoal / flight.Hours() * 24

	cursor := flight.Start
	for _, event := range events {
		appendFillerGap(segments, ctx, cursor, event.Start, preEventLabel(event))

		relativeGoal := event.GoalPercent / 100 * evenDailyGoal
		normalizedPercent := relativeGoal / flight.ImpressionGoal * 100
		segments.Append(model.NewScheduledSegment(event, normalizedPercent))

		ctx.UnscheduledImpressions -= relativeGoal
		if ctx.UnscheduledImpressions <= 0 {
			return &apierror.CurveError{UserMsg: apierror.ErrGoalTooLarge}
		}

		// Bookkeeping only; over-allocation in this mode is caught through
		// the impression budget above.
		ctx.UnscheduledPercent -= normalizedPercent

		cursor = event.End
	}

	if flight.End.After(cursor) {
		// Trailing filler time cannot be funded from an empty budget.
		if ctx.UnscheduledImpressions <= 0 {
			return &apierror.CurveError{UserMsg: apierror.ErrGoalTooLarge}
		}

		appendFillerGap(segments, ctx, cursor, flight.End, PostEventsLabel)
	}

	return nil
}

// appendFillerGap emits an unscheduled segment for the gap between cursor and
// until, if there is one, and accrues its duration on the context.
func appendFillerGap(
	segments storage.List[model.CurveSegment],
	ctx *model.GoalContext,
	cursor, until time.Time,
	label string,
) {
	if !until.After(cursor) {
		return
	}

	span := model.TimeRange{Start: cursor, End: until}
	segments.Append(model.NewUnscheduledSegment(label, span))
	ctx.UnscheduledHours += span.Hours()
}

// resolveGoals finalizes every segment's percentage in order and reconciles
// the total to exactly 100 by nudging the last segment in emission order.
func resolveGoals(ctx *model.GoalContext, segments storage.List[model.CurveSegment]) error {
	var total float64
	for _, segment := range segments.Items() {
		total += segment.CalculateGoal(ctx)
	}

	diff := 100 - total
	if math.Abs(diff) > sumTolerance {
		return &apierror.CurveError{UserMsg: apierror.ErrPercentSumMismatch}
	}

	last, err := segments.Last()
	if err != nil {
		return &apierror.CurveError{UserMsg: apierror.ErrPercentSumMismatch}
	}

	last.AdjustGoal(diff)
	return nil
}

func preEventLabel(event *model.ScheduledEvent) string {
	return fmt.Sprintf("Pre-Event [%s]", event.Title())
}
