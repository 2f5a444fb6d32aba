package model

import (
	"fmt"
	"time"
)

// CurveSegment is one contiguous piece of the generated delivery curve.
//
// Exactly two implementations exist: scheduled segments carry a percentage
// fixed at partition time, unscheduled (filler) segments compute theirs from
// elapsed-hours proportion once the whole segment list is known. Both record
// their final percentage when CalculateGoal is invoked.
type CurveSegment interface {
	Description() string
	Start() time.Time

	// GoalPercent returns the segment's share of the flight goal.
	// Meaningful only after CalculateGoal has run.
	GoalPercent() float64

	// CalculateGoal resolves, records and returns the final percentage.
	CalculateGoal(ctx *GoalContext) float64

	// Scheduled reports whether the segment stems from a scheduled event.
	Scheduled() bool

	// AdjustGoal shifts the recorded percentage by delta. Used once, to
	// reconcile the curve total to exactly 100.
	AdjustGoal(delta float64)

	// String renders the segment with the given time layout.
	String(timeFormat string) string
}

type scheduledSegment struct {
	description string
	start       time.Time
	goalPercent float64
}

// NewScheduledSegment builds the segment for a scheduled event. goalPercent
// is the event's share already converted per the active goal type.
func NewScheduledSegment(event *ScheduledEvent, goalPercent float64) CurveSegment {
	return &scheduledSegment{
		description: event.Title(),
		start:       event.Start,
		goalPercent: goalPercent,
	}
}

func (s *scheduledSegment) Description() string {
	return s.description
}

func (s *scheduledSegment) Start() time.Time {
	return s.start
}

func (s *scheduledSegment) GoalPercent() float64 {
	return s.goalPercent
}

func (s *scheduledSegment) CalculateGoal(_ *GoalContext) float64 {
	return s.goalPercent
}

func (s *scheduledSegment) Scheduled() bool {
	return true
}

func (s *scheduledSegment) AdjustGoal(delta float64) {
	s.goalPercent += delta
}

func (s *scheduledSegment) String(timeFormat string) string {
	return formatSegment(s.start, s.goalPercent, s.description, timeFormat)
}

type unscheduledSegment struct {
	description string
	span        TimeRange
	goalPercent float64
}

// NewUnscheduledSegment builds a filler segment covering the given gap.
// Its percentage stays zero until CalculateGoal resolves it.
func NewUnscheduledSegment(description string, span TimeRange) CurveSegment {
	return &unscheduledSegment{
		description: description,
		span:        span,
	}
}

func (u *unscheduledSegment) Description() string {
	return u.description
}

func (u *unscheduledSegment) Start() time.Time {
	return u.span.Start
}

func (u *unscheduledSegment) GoalPercent() float64 {
	return u.goalPercent
}

func (u *unscheduledSegment) CalculateGoal(ctx *GoalContext) float64 {
	timeProportion := u.span.Hours() / ctx.UnscheduledHours

	switch ctx.GoalType {
	case GoalTypeDay:
		u.goalPercent = timeProportion * ctx.UnscheduledImpressions / ctx.ImpressionGoal * 100
	default:
		u.goalPercent = timeProportion * ctx.UnscheduledPercent
	}

	return u.goalPercent
}

func (u *unscheduledSegment) Scheduled() bool {
	return false
}

func (u *unscheduledSegment) AdjustGoal(delta float64) {
	u.goalPercent += delta
}

func (u *unscheduledSegment) String(timeFormat string) string {
	return formatSegment(u.span.Start, u.goalPercent, u.description, timeFormat)
}

func formatSegment(start time.Time, goalPercent float64, description, timeFormat string) string {
	return fmt.Sprintf("%s %.3f%% %s", start.Format(timeFormat), goalPercent, description)
}
