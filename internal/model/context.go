package model

// GoalContext is the transient accumulator for a single curve generation
// pass. It is created at the start of the pass, mutated while walking events
// in order, and discarded with the call; nothing is shared across calls.
type GoalContext struct {
	GoalType       GoalType
	ImpressionGoal float64

	// UnscheduledHours is the summed duration of filler segments, in hours.
	UnscheduledHours float64

	// UnscheduledImpressions is the impression budget still available to
	// filler segments. Only the day goal type spends it.
	UnscheduledImpressions float64

	// UnscheduledPercent is the percent budget still available to filler
	// segments. The day goal type decrements it for bookkeeping only.
	UnscheduledPercent float64
}

func NewGoalContext(goalType GoalType, flight *Flight) *GoalContext {
	return &GoalContext{
		GoalType:               goalType,
		ImpressionGoal:         flight.ImpressionGoal,
		UnscheduledImpressions: flight.ImpressionGoal,
		UnscheduledPercent:     100,
	}
}
